// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hostkeys/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsReader is the read-only view of a settings backend.
//
// Implementations never fail: an unreadable store or a missing section
// yields an array length of 0 and empty values. Problems are logged through
// the context logger instead of being returned.
type SettingsReader interface {
	// ReadArrayLength returns the number of entries in an array section.
	ReadArrayLength(ctx context.Context, section string) int
	// ReadField returns one field of the array entry at the 0-based index.
	ReadField(ctx context.Context, section string, index int, field string) models.RawValue
	// Backend names the backend for reports and history.
	Backend() string
}

// HistoryRepository persists dump runs and per-secret outcomes.
type HistoryRepository interface {
	SaveRun(ctx context.Context, run models.DumpRun, entries []models.HistoryEntry) error
	ListRuns(ctx context.Context, limit uint64) ([]models.DumpRun, error)
	ListEntries(ctx context.Context, runID string) ([]models.HistoryEntry, error)
}
