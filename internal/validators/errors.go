// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrSecretMissing means nothing was recovered for a secret field.
	ErrSecretMissing = errors.New("secret is missing")
	// ErrSecretLengthMismatch means a secret was recovered with the wrong length.
	ErrSecretLengthMismatch = errors.New("secret has unexpected length")
)
