// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hostkeys/models"
)

var (
	dumpRunColumns   = []string{"id", "identity", "backend", "host_count", "created_at"}
	dumpEntryColumns = []string{
		"run_id", "host_index", "nickname", "mac", "field",
		"status", "provenance", "length", "fingerprint",
	}
)

func buildInsertRunQuery(run models.DumpRun) (string, []any, error) {
	return sq.Insert("dump_runs").
		Columns(dumpRunColumns...).
		Values(run.ID, run.Identity, run.Backend, run.HostCount, run.CreatedAt).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildInsertEntriesQuery(runID string, entries []models.HistoryEntry) (string, []any, error) {
	builder := sq.Insert("dump_entries").
		Columns(dumpEntryColumns...).
		PlaceholderFormat(sq.Question)

	for _, e := range entries {
		builder = builder.Values(
			runID, e.HostIndex, e.Nickname, e.MAC, e.Field,
			string(e.Status), e.Provenance, e.Length, e.Fingerprint,
		)
	}

	return builder.ToSql()
}

func buildSelectRunsQuery(limit uint64) (string, []any, error) {
	builder := sq.Select(dumpRunColumns...).
		From("dump_runs").
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(sq.Question)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

func buildSelectEntriesQuery(runID string) (string, []any, error) {
	return sq.Select(dumpEntryColumns...).
		From("dump_entries").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("host_index", "id").
		PlaceholderFormat(sq.Question).
		ToSql()
}
