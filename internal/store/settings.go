// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/internal/logger"
)

// Open returns the SettingsReader selected by cfg for the given application
// identity. On failure it returns the reason together with an
// [Unavailable] reader, so callers can log the error and carry on with an
// empty store.
func Open(ctx context.Context, cfg config.Store, app config.App) (SettingsReader, error) {
	log := logger.FromContext(ctx)

	backend := ResolveBackend(cfg.Backend, runtime.GOOS)
	application := app.ApplicationName()

	var (
		reader SettingsReader
		err    error
	)

	switch backend {
	case config.BackendINI:
		path := cfg.Path
		if path == "" {
			path, err = DefaultINIPath(app.Organization, application)
			if err != nil {
				break
			}
		}
		reader, err = NewINIReader(path)
	case config.BackendPlist:
		path := cfg.Path
		if path == "" {
			path, err = DefaultPlistPath(app.Organization, application)
			if err != nil {
				break
			}
		}
		reader, err = NewPlistReader(path)
	case config.BackendRegistry:
		reader, err = NewRegistryReader(app.Organization, application)
	case config.BackendKeyring:
		reader = NewKeyringReader(application)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedBackend, backend)
	}

	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "store.Open").
			Str("backend", backend).
			Str("application", application).
			Msg("settings store could not be opened")
		return Unavailable(err), err
	}

	log.Debug().
		Str("func", "store.Open").
		Str("backend", backend).
		Str("application", application).
		Msg("settings store opened")

	return reader, nil
}

// ResolveBackend maps the auto backend to the native one for goos.
func ResolveBackend(backend, goos string) string {
	if backend != config.BackendAuto && backend != "" {
		return backend
	}

	switch goos {
	case "darwin", "ios":
		return config.BackendPlist
	case "windows":
		return config.BackendRegistry
	default:
		return config.BackendINI
	}
}

// DefaultINIPath returns <user config dir>/<organization>/<application>.conf,
// where the config dir honours XDG_CONFIG_HOME.
func DefaultINIPath(organization, application string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return filepath.Join(dir, organization, application+".conf"), nil
}

// DefaultPlistPath returns
// ~/Library/Preferences/com.<organization>.<application>.plist with the
// organization lowercased.
func DefaultPlistPath(organization, application string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	name := "com." + strings.ToLower(organization) + "." + application + ".plist"
	return filepath.Join(home, "Library", "Preferences", name), nil
}
