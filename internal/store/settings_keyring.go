// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

// KeyringReader reads settings mirrored into the OS keyring. The service is
// the application name; users are slash paths such as
// "registered_hosts/size" and "registered_hosts/1/rp_key".
type KeyringReader struct {
	service string
}

// NewKeyringReader returns a reader for the given keyring service.
func NewKeyringReader(service string) *KeyringReader {
	return &KeyringReader{service: service}
}

// Backend implements SettingsReader.
func (k *KeyringReader) Backend() string {
	return "keyring"
}

// ReadArrayLength implements SettingsReader.
func (k *KeyringReader) ReadArrayLength(ctx context.Context, section string) int {
	raw, err := k.get(section + "/size")
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "KeyringReader.ReadArrayLength").
			Str("service", k.service).
			Str("section", section).
			Msg("array size not readable")
		return 0
	}

	n, ok := parseArraySize(raw)
	return checkArrayLength(ctx, "KeyringReader.ReadArrayLength", section, n, ok)
}

// ReadField implements SettingsReader.
func (k *KeyringReader) ReadField(ctx context.Context, section string, index int, field string) models.RawValue {
	user := fmt.Sprintf("%s/%d/%s", section, index+1, field)
	raw, err := k.get(user)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "KeyringReader.ReadField").
			Str("key", user).
			Msg("field not readable")
		return models.RawValue{}
	}

	return models.NewTextValue(raw)
}

func (k *KeyringReader) get(user string) (string, error) {
	v, err := keyring.Get(k.service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", ErrSectionNotFound, user)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return v, nil
}
