//go:build !windows

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hostkeys/models"
)

// RegistryReader is only functional on Windows.
type RegistryReader struct{}

// NewRegistryReader always fails outside Windows.
func NewRegistryReader(organization, application string) (*RegistryReader, error) {
	return nil, fmt.Errorf("%w: registry (%s/%s)", ErrUnsupportedBackend, organization, application)
}

// Backend implements SettingsReader.
func (r *RegistryReader) Backend() string {
	return "registry"
}

// ReadArrayLength implements SettingsReader.
func (r *RegistryReader) ReadArrayLength(context.Context, string) int {
	return 0
}

// ReadField implements SettingsReader.
func (r *RegistryReader) ReadField(context.Context, string, int, string) models.RawValue {
	return models.RawValue{}
}
