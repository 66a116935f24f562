// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators classifies decoded values against the rules the
// downstream consumers impose on them.
//
// Validators report problems as sentinel errors rather than booleans, so
// callers can match them with errors.Is and keep the wrapped detail
// (decoded length, field name) for diagnostics.
package validators

import "context"

// Validator validates an arbitrary value. Optional field names scope or
// label the check.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
