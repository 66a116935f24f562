// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

// MemoryEntry is one array entry of an in-memory section, keyed by field.
type MemoryEntry map[string]models.RawValue

// MemoryReader is a SettingsReader over in-memory sections.
type MemoryReader struct {
	sections map[string][]MemoryEntry
}

// NewMemoryReader returns a reader over the given array sections.
func NewMemoryReader(sections map[string][]MemoryEntry) *MemoryReader {
	if sections == nil {
		sections = make(map[string][]MemoryEntry)
	}
	return &MemoryReader{sections: sections}
}

// Backend implements SettingsReader.
func (m *MemoryReader) Backend() string {
	return "memory"
}

// ReadArrayLength implements SettingsReader.
func (m *MemoryReader) ReadArrayLength(_ context.Context, section string) int {
	return len(m.sections[section])
}

// ReadField implements SettingsReader.
func (m *MemoryReader) ReadField(_ context.Context, section string, index int, field string) models.RawValue {
	entries := m.sections[section]
	if index < 0 || index >= len(entries) {
		return models.RawValue{}
	}
	return entries[index][field]
}

type unavailableReader struct {
	err error
}

// Unavailable returns a reader that reports every section as empty. It
// stands in for a backend that could not be opened.
func Unavailable(err error) SettingsReader {
	return &unavailableReader{err: err}
}

func (u *unavailableReader) Backend() string {
	return "unavailable"
}

func (u *unavailableReader) ReadArrayLength(ctx context.Context, section string) int {
	logger.FromContext(ctx).Debug().
		Err(u.err).
		Str("func", "unavailableReader.ReadArrayLength").
		Str("section", section).
		Msg("settings store unavailable, reporting empty section")
	return 0
}

func (u *unavailableReader) ReadField(context.Context, string, int, string) models.RawValue {
	return models.RawValue{}
}
