// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"howett.net/plist"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

// PlistReader reads the CFPreferences property list Qt writes on macOS.
// Nested keys are joined with dots: "registered_hosts.size",
// "registered_hosts.1.rp_key".
type PlistReader struct {
	path   string
	values map[string]any
}

// NewPlistReader loads the property list at path. XML and binary formats
// are both accepted.
func NewPlistReader(path string) (*PlistReader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	r, err := ParsePlist(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, path, err)
	}
	r.path = path

	return r, nil
}

// ParsePlist decodes property list content.
func ParsePlist(data []byte) (*PlistReader, error) {
	values := make(map[string]any)
	if _, err := plist.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error decoding plist: %w", err)
	}
	return &PlistReader{values: values}, nil
}

// Backend implements SettingsReader.
func (p *PlistReader) Backend() string {
	return "plist"
}

// ReadArrayLength implements SettingsReader.
func (p *PlistReader) ReadArrayLength(ctx context.Context, section string) int {
	v, ok := p.values[section+".size"]
	if !ok {
		logger.FromContext(ctx).Debug().
			Err(ErrSectionNotFound).
			Str("func", "PlistReader.ReadArrayLength").
			Str("path", p.path).
			Str("section", section).
			Msg("array size not found")
		return 0
	}

	var (
		n     int64
		valid bool
	)
	switch size := v.(type) {
	case int64:
		n, valid = size, true
	case uint64:
		n, valid = int64(min(size, MaxArrayLength+1)), true
	case float64:
		n, valid = floatArraySize(size)
	case string:
		n, valid = parseArraySize(size)
	}

	return checkArrayLength(ctx, "PlistReader.ReadArrayLength", section, n, valid)
}

// ReadField implements SettingsReader.
func (p *PlistReader) ReadField(ctx context.Context, section string, index int, field string) models.RawValue {
	key := fmt.Sprintf("%s.%d.%s", section, index+1, field)
	v, ok := p.values[key]
	if !ok {
		logger.FromContext(ctx).Debug().
			Str("func", "PlistReader.ReadField").
			Str("key", key).
			Msg("field not found")
		return models.RawValue{}
	}

	return plistRawValue(v)
}

func plistRawValue(v any) models.RawValue {
	switch val := v.(type) {
	case []byte:
		raw := models.NewBinaryValue(val)
		if utf8.Valid(val) {
			raw.Text, raw.HasText = string(val), true
		}
		return raw
	case string:
		return models.NewTextValue(val)
	case int64:
		return models.NewTextValue(strconv.FormatInt(val, 10))
	case uint64:
		return models.NewTextValue(strconv.FormatUint(val, 10))
	case float64:
		return models.NewTextValue(strconv.FormatFloat(val, 'g', -1, 64))
	case bool:
		return models.NewTextValue(strconv.FormatBool(val))
	default:
		return models.RawValue{}
	}
}
