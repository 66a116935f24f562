// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/hostkeys/internal/logger"
)

// MaxArrayLength is the largest array size a settings store may declare.
// Anything above it is treated as a corrupt entry and read as an empty array.
const MaxArrayLength = 1 << 16

// parseArraySize parses a textual size. Out-of-range numbers are kept
// (clamped to the int64 range) so that checkArrayLength can reject them.
func parseArraySize(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

// floatArraySize converts a numeric plist size; fractions and NaN are invalid.
func floatArraySize(f float64) (int64, bool) {
	if math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f > MaxArrayLength {
		return MaxArrayLength + 1, true
	}
	if f < 0 {
		return -1, true
	}
	return int64(f), true
}

// checkArrayLength returns n when it is a usable array size, else logs a
// warning and returns 0.
func checkArrayLength(ctx context.Context, fn, section string, n int64, ok bool) int {
	if ok && n >= 0 && n <= MaxArrayLength {
		return int(n)
	}

	ev := logger.FromContext(ctx).Warn().
		Err(ErrInvalidArrayLength).
		Str("func", fn).
		Str("section", section)
	if ok {
		ev = ev.Int64("size", n)
	}
	ev.Msg("array size out of range, reading the array as empty")

	return 0
}
