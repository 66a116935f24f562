// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/hostkeys/models"
)

// SecretValidator checks decoded secrets against the expected key length.
type SecretValidator struct {
	length int
}

// NewSecretValidator returns a Validator for models.DecodedSecret values
// that must be exactly length bytes long.
func NewSecretValidator(length int) Validator {
	return &SecretValidator{length: length}
}

// Validate accepts models.DecodedSecret or *models.DecodedSecret. The
// optional field name only labels the returned error.
func (v *SecretValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var secret models.DecodedSecret
	switch value := obj.(type) {
	case models.DecodedSecret:
		secret = value
	case *models.DecodedSecret:
		if value == nil {
			return v.wrap(ErrSecretMissing, fields)
		}
		secret = *value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	switch n := secret.Len(); {
	case n == 0:
		return v.wrap(ErrSecretMissing, fields)
	case n != v.length:
		return v.wrap(fmt.Errorf("%w: decoded len=%d, want %d", ErrSecretLengthMismatch, n, v.length), fields)
	}

	return nil
}

func (v *SecretValidator) wrap(err error, fields []string) error {
	if len(fields) == 0 {
		return err
	}
	return fmt.Errorf("%s: %w", fields[0], err)
}

// SecretStatus maps a SecretValidator result to the report status.
func SecretStatus(err error) models.SecretStatus {
	switch {
	case err == nil:
		return models.SecretValid
	case errors.Is(err, ErrSecretLengthMismatch):
		return models.SecretLengthMismatch
	default:
		return models.SecretMissing
	}
}
