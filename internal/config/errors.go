// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a setting
// is outside its allowed values.
var (
	// ErrInvalidStoreConfigs indicates an unknown store backend.
	ErrInvalidStoreConfigs = errors.New("invalid store configuration")
	// ErrInvalidReportConfigs indicates an unknown report format or style.
	ErrInvalidReportConfigs = errors.New("invalid report configuration")
	// ErrInvalidWorkerConfigs indicates a concurrency below one.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidHistoryConfigs indicates a fingerprint key longer than 64 bytes.
	ErrInvalidHistoryConfigs = errors.New("invalid history configuration")
	// ErrInvalidCopyConfigs indicates a negative host index.
	ErrInvalidCopyConfigs = errors.New("invalid copy configuration")
)
