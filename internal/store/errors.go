// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Settings backend errors. Readers never return them to callers of
// [SettingsReader]; they are returned by constructors and [Open] and logged
// by readers when a lookup degrades to an empty result.
var (
	// ErrStoreUnavailable is returned when the backend cannot be opened or
	// read, e.g. the settings file does not exist.
	ErrStoreUnavailable = errors.New("settings store unavailable")

	// ErrUnsupportedBackend is returned when the requested backend does not
	// exist on the running platform.
	ErrUnsupportedBackend = errors.New("settings backend not supported on this platform")

	// ErrSectionNotFound is logged when an array section has no size entry.
	ErrSectionNotFound = errors.New("settings section not found")

	// ErrInvalidArrayLength is logged when an array size is not a number
	// in [0, MaxArrayLength].
	ErrInvalidArrayLength = errors.New("invalid settings array size")
)

// History database errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan history rows")
)
