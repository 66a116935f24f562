// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/models"
)

func TestResolveBackend(t *testing.T) {
	tests := []struct {
		backend string
		goos    string
		want    string
	}{
		{config.BackendAuto, "linux", config.BackendINI},
		{config.BackendAuto, "freebsd", config.BackendINI},
		{config.BackendAuto, "darwin", config.BackendPlist},
		{config.BackendAuto, "windows", config.BackendRegistry},
		{"", "windows", config.BackendRegistry},
		{config.BackendKeyring, "linux", config.BackendKeyring},
		{config.BackendINI, "darwin", config.BackendINI},
	}

	for _, tt := range tests {
		t.Run(tt.backend+"/"+tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBackend(tt.backend, tt.goos))
		})
	}
}

func TestOpen_INIWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Chiaki.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleQtINI), 0o600))

	r, err := Open(context.Background(),
		config.Store{Backend: config.BackendINI, Path: path},
		config.App{Organization: "Chiaki"})
	require.NoError(t, err)

	assert.Equal(t, "ini", r.Backend())
	assert.Equal(t, 2, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))
}

func TestOpen_INIDefaultPathUsesXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives the config dir on linux")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Chiaki"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Chiaki", "Chiaki-work.conf"), []byte(sampleQtINI), 0o600))

	r, err := Open(context.Background(),
		config.Store{Backend: config.BackendINI},
		config.App{Organization: "Chiaki", Profile: "work"})
	require.NoError(t, err)
	assert.Equal(t, 2, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))
}

func TestOpen_MissingFileDegrades(t *testing.T) {
	r, err := Open(context.Background(),
		config.Store{Backend: config.BackendINI, Path: filepath.Join(t.TempDir(), "none.conf")},
		config.App{Organization: "Chiaki"})

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	require.NotNil(t, r)
	assert.Equal(t, "unavailable", r.Backend())
	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))
	assert.True(t, r.ReadField(context.Background(), models.RegisteredHostsSection, 0, models.FieldKey).IsEmpty())
}

func TestOpen_Keyring(t *testing.T) {
	keyring.MockInit()

	r, err := Open(context.Background(),
		config.Store{Backend: config.BackendKeyring},
		config.App{Organization: "Chiaki"})
	require.NoError(t, err)
	assert.Equal(t, "keyring", r.Backend())
}

func TestOpen_UnknownBackend(t *testing.T) {
	r, err := Open(context.Background(),
		config.Store{Backend: "gconf"},
		config.App{Organization: "Chiaki"})

	assert.ErrorIs(t, err, ErrUnsupportedBackend)
	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), models.RegisteredHostsSection))
}

func TestOpen_RegistryOutsideWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("registry is available on windows")
	}

	_, err := Open(context.Background(),
		config.Store{Backend: config.BackendRegistry},
		config.App{Organization: "Chiaki"})
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestDefaultPlistPath(t *testing.T) {
	path, err := DefaultPlistPath("Chiaki", "Chiaki-work")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("Library", "Preferences", "com.chiaki.Chiaki-work.plist")), path)
}

func TestMemoryReader(t *testing.T) {
	r := NewMemoryReader(map[string][]MemoryEntry{
		models.RegisteredHostsSection: {
			{models.FieldNickname: models.NewTextValue("Living Room")},
		},
	})
	ctx := context.Background()

	assert.Equal(t, "memory", r.Backend())
	assert.Equal(t, 1, r.ReadArrayLength(ctx, models.RegisteredHostsSection))
	assert.Equal(t, "Living Room", r.ReadField(ctx, models.RegisteredHostsSection, 0, models.FieldNickname).String())
	assert.True(t, r.ReadField(ctx, models.RegisteredHostsSection, 0, models.FieldKey).IsEmpty())
	assert.True(t, r.ReadField(ctx, models.RegisteredHostsSection, -1, models.FieldKey).IsEmpty())
	assert.True(t, r.ReadField(ctx, models.RegisteredHostsSection, 3, models.FieldKey).IsEmpty())
	assert.Equal(t, 0, NewMemoryReader(nil).ReadArrayLength(ctx, "x"))
}

func TestUnavailable(t *testing.T) {
	r := Unavailable(errors.New("boom"))
	assert.Equal(t, 0, r.ReadArrayLength(context.Background(), "anything"))
	assert.True(t, r.ReadField(context.Background(), "anything", 0, "f").IsEmpty())
}
