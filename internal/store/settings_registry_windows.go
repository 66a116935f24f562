//go:build windows

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sys/windows/registry"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

// RegistryReader reads Qt settings from HKEY_CURRENT_USER. Array sections
// are subkeys holding a "size" value and one numbered subkey per entry.
type RegistryReader struct {
	root string
}

// NewRegistryReader opens HKCU\Software\<organization>\<application>.
func NewRegistryReader(organization, application string) (*RegistryReader, error) {
	root := `Software\` + organization + `\` + application

	k, err := registry.OpenKey(registry.CURRENT_USER, root, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("%w: HKCU\\%s: %w", ErrStoreUnavailable, root, err)
	}
	k.Close()

	return &RegistryReader{root: root}, nil
}

// Backend implements SettingsReader.
func (r *RegistryReader) Backend() string {
	return "registry"
}

// ReadArrayLength implements SettingsReader.
func (r *RegistryReader) ReadArrayLength(ctx context.Context, section string) int {
	log := logger.FromContext(ctx)

	k, err := registry.OpenKey(registry.CURRENT_USER, r.root+`\`+section, registry.QUERY_VALUE)
	if err != nil {
		log.Debug().
			Err(err).
			Str("func", "RegistryReader.ReadArrayLength").
			Str("section", section).
			Msg("section key not found")
		return 0
	}
	defer k.Close()

	raw := readRegistryValue(k, "size")
	n, ok := parseArraySize(raw.String())
	return checkArrayLength(ctx, "RegistryReader.ReadArrayLength", section, n, ok)
}

// ReadField implements SettingsReader.
func (r *RegistryReader) ReadField(ctx context.Context, section string, index int, field string) models.RawValue {
	path := fmt.Sprintf(`%s\%s\%d`, r.root, section, index+1)

	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "RegistryReader.ReadField").
			Str("key", path).
			Msg("entry key not found")
		return models.RawValue{}
	}
	defer k.Close()

	return readRegistryValue(k, field)
}

// readRegistryValue maps a registry value to a RawValue. REG_BINARY values
// carry bytes only; Qt stores byte arrays containing NULs there as UTF-16
// text, which the resolver unwraps.
func readRegistryValue(k registry.Key, name string) models.RawValue {
	_, valType, err := k.GetValue(name, nil)
	if err != nil {
		return models.RawValue{}
	}

	switch valType {
	case registry.SZ, registry.EXPAND_SZ:
		s, _, err := k.GetStringValue(name)
		if err != nil {
			return models.RawValue{}
		}
		return models.NewTextValue(s)
	case registry.DWORD, registry.QWORD:
		n, _, err := k.GetIntegerValue(name)
		if err != nil {
			return models.RawValue{}
		}
		return models.NewTextValue(strconv.FormatUint(n, 10))
	default:
		b, _, err := k.GetBinaryValue(name)
		if err != nil {
			return models.RawValue{}
		}
		return models.NewBinaryValue(b)
	}
}
