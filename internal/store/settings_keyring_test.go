// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/hostkeys/models"
)

func TestKeyringReader(t *testing.T) {
	keyring.MockInit()

	const service = "Chiaki-work"
	require.NoError(t, keyring.Set(service, "registered_hosts/size", "1"))
	require.NoError(t, keyring.Set(service, "registered_hosts/1/server_nickname", "Living Room"))
	require.NoError(t, keyring.Set(service, "registered_hosts/1/rp_key", "@ByteArray(ABEiM0RVZneImaq7zN3u/w==)"))

	r := NewKeyringReader(service)
	ctx := context.Background()
	section := models.RegisteredHostsSection

	assert.Equal(t, "keyring", r.Backend())
	assert.Equal(t, 1, r.ReadArrayLength(ctx, section))
	assert.Equal(t, "Living Room", r.ReadField(ctx, section, 0, models.FieldNickname).String())
	assert.Equal(t, "@ByteArray(ABEiM0RVZneImaq7zN3u/w==)", r.ReadField(ctx, section, 0, models.FieldKey).Text)
	assert.True(t, r.ReadField(ctx, section, 0, models.FieldMAC).IsEmpty())
}

func TestKeyringReader_MissingAndInvalid(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set("Chiaki", "bad/size", "x"))

	r := NewKeyringReader("Chiaki")
	ctx := context.Background()

	assert.Equal(t, 0, r.ReadArrayLength(ctx, models.RegisteredHostsSection))
	assert.Equal(t, 0, r.ReadArrayLength(ctx, "bad"))
}

func TestKeyringReader_BackendError(t *testing.T) {
	keyring.MockInitWithError(assert.AnError)

	r := NewKeyringReader("Chiaki")
	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))

	_, err := r.get("registered_hosts/size")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
