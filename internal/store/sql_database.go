// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/migrations"
)

// DB wraps the history database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the history schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
