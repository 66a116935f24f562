// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrHistoryDisabled is returned by history operations when no history
	// database is configured.
	ErrHistoryDisabled = errors.New("dump history is not configured")
	// ErrRecordingHistory wraps repository failures while saving a run.
	ErrRecordingHistory = errors.New("error recording dump history")
)
