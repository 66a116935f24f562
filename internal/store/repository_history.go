// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository returns a HistoryRepository backed by db.
func NewHistoryRepository(db *DB, log *logger.Logger) HistoryRepository {
	return &historyRepository{
		db:     db,
		logger: log,
	}
}

func (h *historyRepository) SaveRun(ctx context.Context, run models.DumpRun, entries []models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	runQuery, runArgs, err := buildInsertRunQuery(run)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.SaveRun").Msg("failed to build run insert")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.SaveRun").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, runQuery, runArgs...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveRun").
			Str("run_id", run.ID).
			Msg("failed to insert dump run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(entries) > 0 {
		entriesQuery, entriesArgs, err := buildInsertEntriesQuery(run.ID, entries)
		if err != nil {
			log.Err(err).Str("func", "historyRepository.SaveRun").Msg("failed to build entries insert")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, entriesQuery, entriesArgs...); err != nil {
			log.Err(err).
				Str("func", "historyRepository.SaveRun").
				Str("run_id", run.ID).
				Int("entries", len(entries)).
				Msg("failed to insert dump entries")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "historyRepository.SaveRun").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (h *historyRepository) ListRuns(ctx context.Context, limit uint64) ([]models.DumpRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.ListRuns").Msg("failed to query dump runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.DumpRun
	for rows.Next() {
		var run models.DumpRun
		if err = rows.Scan(&run.ID, &run.Identity, &run.Backend, &run.HostCount, &run.CreatedAt); err != nil {
			log.Err(err).Str("func", "historyRepository.ListRuns").Msg("failed to scan dump run row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

func (h *historyRepository) ListEntries(ctx context.Context, runID string) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.ListEntries").Str("run_id", runID).Msg("failed to query dump entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var (
			e      models.HistoryEntry
			status string
		)
		err = rows.Scan(&e.RunID, &e.HostIndex, &e.Nickname, &e.MAC, &e.Field,
			&status, &e.Provenance, &e.Length, &e.Fingerprint)
		if err != nil {
			log.Err(err).Str("func", "historyRepository.ListEntries").Msg("failed to scan dump entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.Status = models.SecretStatus(status)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
