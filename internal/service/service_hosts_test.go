// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/internal/mock"
	"github.com/MKhiriev/hostkeys/internal/store"
	"github.com/MKhiriev/hostkeys/internal/workers"
	"github.com/MKhiriev/hostkeys/models"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func expectHost(reader *mock.MockSettingsReader, index int, fields map[string]models.RawValue) {
	for _, field := range []string{models.FieldNickname, models.FieldMAC, models.FieldRegistKey, models.FieldKey} {
		reader.EXPECT().
			ReadField(gomock.Any(), models.RegisteredHostsSection, index, field).
			Return(fields[field])
	}
}

// ── ListHosts ────────────────────────────────────────────────────────────────

func TestHostService_ListHosts_LivingRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mock.NewMockSettingsReader(ctrl)
	reader.EXPECT().Backend().Return("ini")
	reader.EXPECT().ReadArrayLength(gomock.Any(), models.RegisteredHostsSection).Return(1)
	expectHost(reader, 0, map[string]models.RawValue{
		models.FieldNickname:  models.NewTextValue("Living Room"),
		models.FieldMAC:       models.NewBinaryValue([]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}),
		models.FieldRegistKey: models.NewTextValue("@ByteArray(00112233445566778899aabbccddeeff)"),
	})

	svc := NewHostService(reader, "Chiaki", workers.NewPool(1), logger.Nop())
	listing := svc.ListHosts(context.Background())

	assert.Equal(t, "Chiaki", listing.Identity)
	assert.Equal(t, "ini", listing.Backend)
	require.Len(t, listing.Hosts, 1)

	host := listing.Hosts[0]
	assert.Equal(t, 0, host.Index)
	assert.Equal(t, "Living Room", host.Nickname)
	assert.Equal(t, "aabbccddeeff", host.MAC)

	assert.Equal(t, models.SecretReport{
		Field:      models.FieldRegistKey,
		Status:     models.SecretValid,
		Provenance: models.ProvenanceWrapperHex,
		Length:     16,
		Hex:        "00112233445566778899aabbccddeeff",
	}, host.RegistKey)

	assert.Equal(t, models.SecretReport{
		Field:      models.FieldKey,
		Status:     models.SecretMissing,
		Provenance: models.ProvenanceRawFallback,
	}, host.Key)

	assert.Equal(t, mustHex(t, "00112233445566778899aabbccddeeff"), host.Record().RegistSecret.Bytes)
}

func TestHostService_ListHosts_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mock.NewMockSettingsReader(ctrl)
	reader.EXPECT().Backend().Return("ini")
	reader.EXPECT().ReadArrayLength(gomock.Any(), models.RegisteredHostsSection).Return(0)

	listing := NewHostService(reader, "Chiaki-work", workers.NewPool(4), logger.Nop()).
		ListHosts(context.Background())

	assert.True(t, listing.Empty())
	assert.NotNil(t, listing.Hosts)
	assert.Equal(t, "Chiaki-work", listing.Identity)
}

func TestHostService_ListHosts_LengthMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ten := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	reader := mock.NewMockSettingsReader(ctrl)
	reader.EXPECT().Backend().Return("registry")
	reader.EXPECT().ReadArrayLength(gomock.Any(), models.RegisteredHostsSection).Return(1)
	expectHost(reader, 0, map[string]models.RawValue{
		models.FieldRegistKey: models.NewBinaryValue(ten),
		models.FieldKey:       models.NewBinaryValue(make([]byte, 16)),
	})

	listing := NewHostService(reader, "Chiaki", workers.NewPool(1), logger.Nop()).
		ListHosts(context.Background())
	require.Len(t, listing.Hosts, 1)

	regist := listing.Hosts[0].RegistKey
	assert.Equal(t, models.SecretLengthMismatch, regist.Status)
	assert.Equal(t, 10, regist.Length)
	assert.Equal(t, "0102030405060708090a", regist.Hex)
	assert.Equal(t, models.ProvenanceRawFallback, regist.Provenance)

	key := listing.Hosts[0].Key
	assert.Equal(t, models.SecretValid, key.Status)
	assert.Equal(t, models.ProvenanceAlreadyBinary, key.Provenance)
}

func TestHostService_ListHosts_ParallelKeepsOrder(t *testing.T) {
	sections := map[string][]store.MemoryEntry{}
	for i := range 8 {
		sections[models.RegisteredHostsSection] = append(sections[models.RegisteredHostsSection], store.MemoryEntry{
			models.FieldNickname: models.NewTextValue(string(rune('A' + i))),
			models.FieldKey:      models.NewBinaryValue(make([]byte, 16)),
		})
	}

	listing := NewHostService(store.NewMemoryReader(sections), "Chiaki", workers.NewPool(3), logger.Nop()).
		ListHosts(context.Background())

	require.Len(t, listing.Hosts, 8)
	for i, host := range listing.Hosts {
		assert.Equal(t, i, host.Index)
		assert.Equal(t, string(rune('A'+i)), host.Nickname)
		assert.Equal(t, models.SecretValid, host.Key.Status)
	}
}

func TestHostService_ListHosts_UTF16Registry(t *testing.T) {
	// "@ByteArray(<base64 of 16 bytes>)" stored as UTF-16LE bytes
	text := "@ByteArray(ABEiM0RVZneImaq7zN3u/w==)"
	utf16 := make([]byte, 0, 2*len(text))
	for _, c := range []byte(text) {
		utf16 = append(utf16, c, 0)
	}

	reader := store.NewMemoryReader(map[string][]store.MemoryEntry{
		models.RegisteredHostsSection: {{models.FieldRegistKey: models.NewBinaryValue(utf16)}},
	})

	listing := NewHostService(reader, "Chiaki", workers.NewPool(1), logger.Nop()).
		ListHosts(context.Background())
	require.Len(t, listing.Hosts, 1)

	regist := listing.Hosts[0].RegistKey
	assert.Equal(t, models.SecretValid, regist.Status)
	assert.Equal(t, models.ProvenanceUTF16Unwrapped, regist.Provenance)
	assert.Equal(t, "00112233445566778899aabbccddeeff", regist.Hex)
}

func TestHostService_ListHosts_ShortEncodedKeyIsLengthMismatch(t *testing.T) {
	reader := store.NewMemoryReader(map[string][]store.MemoryEntry{
		models.RegisteredHostsSection: {{
			models.FieldRegistKey: models.NewTextValue("@ByteArray(0011223344556677)"),
			models.FieldKey:       models.NewTextValue("@ByteArray(ABCDEFGHIJKLMNOP)"),
		}},
	})

	listing := NewHostService(reader, "Chiaki", workers.NewPool(1), logger.Nop()).
		ListHosts(context.Background())
	require.Len(t, listing.Hosts, 1)

	assert.Equal(t, models.SecretReport{
		Field:      models.FieldRegistKey,
		Status:     models.SecretLengthMismatch,
		Provenance: models.ProvenanceWrapperBase64,
		Length:     12,
		Hex:        "d34d75db6df7e38e79ebaefb",
	}, listing.Hosts[0].RegistKey)

	assert.Equal(t, models.SecretReport{
		Field:      models.FieldKey,
		Status:     models.SecretLengthMismatch,
		Provenance: models.ProvenanceWrapperBase64,
		Length:     12,
		Hex:        "00108310518720928b30d38f",
	}, listing.Hosts[0].Key)
}

// ── malformed stores ─────────────────────────────────────────────────────────

func TestHostService_ListHosts_OversizedINIArrayIsEmpty(t *testing.T) {
	sizes := []string{"9000000000000", "2000000000", "99999999999999999999999", "65537"}

	for _, size := range sizes {
		t.Run(size, func(t *testing.T) {
			reader, err := store.ParseINI(strings.NewReader("[registered_hosts]\nsize=" + size + "\n"))
			require.NoError(t, err)

			var listing models.HostListing
			require.NotPanics(t, func() {
				listing = NewHostService(reader, "Chiaki", workers.NewPool(4), logger.Nop()).
					ListHosts(context.Background())
			})

			assert.True(t, listing.Empty())
			assert.NotNil(t, listing.Hosts)
		})
	}
}

func TestHostService_ListHosts_OutOfRangeLengthFromReader(t *testing.T) {
	for _, n := range []int{-1, store.MaxArrayLength + 1, 1 << 40} {
		ctrl := gomock.NewController(t)

		reader := mock.NewMockSettingsReader(ctrl)
		reader.EXPECT().Backend().Return("keyring")
		reader.EXPECT().ReadArrayLength(gomock.Any(), models.RegisteredHostsSection).Return(n)

		listing := NewHostService(reader, "Chiaki", workers.NewPool(2), logger.Nop()).
			ListHosts(context.Background())

		assert.True(t, listing.Empty(), "size=%d", n)
		ctrl.Finish()
	}
}

func TestHostService_ListHosts_CancelledKeepsOnlyResolvedHosts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entries := make([]store.MemoryEntry, 4)
	for i := range entries {
		entries[i] = store.MemoryEntry{models.FieldNickname: models.NewTextValue(string(rune('A' + i)))}
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := store.NewMemoryReader(map[string][]store.MemoryEntry{models.RegisteredHostsSection: entries})
	reader := mock.NewMockSettingsReader(ctrl)
	reader.EXPECT().Backend().Return("memory")
	reader.EXPECT().ReadArrayLength(gomock.Any(), models.RegisteredHostsSection).Return(4)
	reader.EXPECT().
		ReadField(gomock.Any(), models.RegisteredHostsSection, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, section string, index int, field string) models.RawValue {
			if index == 1 && field == models.FieldKey {
				cancel()
			}
			return inner.ReadField(ctx, section, index, field)
		}).
		AnyTimes()

	listing := NewHostService(reader, "Chiaki", workers.NewPool(1), logger.Nop()).ListHosts(ctx)

	require.Len(t, listing.Hosts, 2)
	assert.Equal(t, "A", listing.Hosts[0].Nickname)
	assert.Equal(t, "B", listing.Hosts[1].Nickname)
}
