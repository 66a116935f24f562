// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/hostkeys/models"
)

func TestParseArraySize(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{in: "3", want: 3, wantOK: true},
		{in: " 12 ", want: 12, wantOK: true},
		{in: "-1", want: -1, wantOK: true},
		{in: "99999999999999999999999", want: math.MaxInt64, wantOK: true},
		{in: "abc", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		n, ok := parseArraySize(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, n, tt.in)
		}
	}
}

func TestCheckArrayLength(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, 0, checkArrayLength(ctx, "test", "s", 0, true))
	assert.Equal(t, 7, checkArrayLength(ctx, "test", "s", 7, true))
	assert.Equal(t, MaxArrayLength, checkArrayLength(ctx, "test", "s", MaxArrayLength, true))
	assert.Equal(t, 0, checkArrayLength(ctx, "test", "s", MaxArrayLength+1, true))
	assert.Equal(t, 0, checkArrayLength(ctx, "test", "s", 9000000000000, true))
	assert.Equal(t, 0, checkArrayLength(ctx, "test", "s", -5, true))
	assert.Equal(t, 0, checkArrayLength(ctx, "test", "s", 5, false))
}

func TestFloatArraySize(t *testing.T) {
	n, ok := floatArraySize(4)
	assert.True(t, ok)
	assert.Equal(t, int64(4), n)

	n, ok = floatArraySize(1e300)
	assert.True(t, ok)
	assert.Greater(t, n, int64(MaxArrayLength))

	_, ok = floatArraySize(2.5)
	assert.False(t, ok)

	_, ok = floatArraySize(math.NaN())
	assert.False(t, ok)
}

// ── oversized sizes per backend ──────────────────────────────────────────────

func TestINIReader_OversizedArrayIsEmpty(t *testing.T) {
	r, err := ParseINI(strings.NewReader("[registered_hosts]\nsize=9000000000000\n[other]\nsize=2000000000\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))
	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), "other"))
}

func TestPlistReader_OversizedArrayIsEmpty(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>registered_hosts.size</key>
	<integer>9000000000000</integer>
	<key>real.size</key>
	<real>1e300</real>
	<key>text.size</key>
	<string>2000000000</string>
	<key>ok.size</key>
	<integer>2</integer>
</dict>
</plist>
`
	r, err := ParsePlist([]byte(doc))
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, 0, r.ReadArrayLength(ctx, models.RegisteredHostsSection))
	assert.Equal(t, 0, r.ReadArrayLength(ctx, "real"))
	assert.Equal(t, 0, r.ReadArrayLength(ctx, "text"))
	assert.Equal(t, 2, r.ReadArrayLength(ctx, "ok"))
}

func TestKeyringReader_OversizedArrayIsEmpty(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set("Chiaki", "registered_hosts/size", "9000000000000"))

	r := NewKeyringReader("Chiaki")

	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))
}
