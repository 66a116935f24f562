// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newCLIContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("hostkeys", flag.ContinueOnError)
	for _, f := range Flags() {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

// ── build ────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultOrganization, cfg.App.Organization)
	assert.Empty(t, cfg.App.Profile)
	assert.Equal(t, BackendAuto, cfg.Store.Backend)
	assert.Equal(t, FormatText, cfg.Report.Format)
	assert.Equal(t, StyleAuto, cfg.Report.Style)
	assert.Equal(t, DefaultConsumer, cfg.Report.Consumer)
	assert.Equal(t, 1, cfg.Workers.Concurrency)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Copy.Enabled)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "boom")
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Organization: "First", Profile: "one"}, Workers: Workers{Concurrency: 2}},
		&StructuredConfig{App: App{Profile: "two"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "First", cfg.App.Organization)
	assert.Equal(t, "two", cfg.App.Profile)
	assert.Equal(t, 2, cfg.Workers.Concurrency)
}

func TestBuild_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{"unknown backend", StructuredConfig{Store: Store{Backend: "gconf"}}, ErrInvalidStoreConfigs},
		{"unknown format", StructuredConfig{Report: Report{Format: "xml"}}, ErrInvalidReportConfigs},
		{"unknown style", StructuredConfig{Report: Report{Style: "neon"}}, ErrInvalidReportConfigs},
		{"negative concurrency", StructuredConfig{Workers: Workers{Concurrency: -1}}, ErrInvalidWorkerConfigs},
		{"long fingerprint key", StructuredConfig{History: History{FingerprintKey: string(make([]byte, 65))}}, ErrInvalidHistoryConfigs},
		{"negative copy index", StructuredConfig{Copy: Copy{Enabled: true, HostIndex: -1}}, ErrInvalidCopyConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── env ──────────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("HOSTKEYS_PROFILE", "work")
	t.Setenv("HOSTKEYS_STORE_BACKEND", "keyring")
	t.Setenv("HOSTKEYS_REPORT_FORMAT", "json")
	t.Setenv("HOSTKEYS_WORKERS_CONCURRENCY", "4")
	t.Setenv("HOSTKEYS_HISTORY_DSN", "/tmp/history.db")
	t.Setenv("HOSTKEYS_LOG_JSON", "true")

	cfg, err := newConfigBuilder().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "work", cfg.App.Profile)
	assert.Equal(t, BackendKeyring, cfg.Store.Backend)
	assert.Equal(t, FormatJSON, cfg.Report.Format)
	assert.Equal(t, 4, cfg.Workers.Concurrency)
	assert.Equal(t, "/tmp/history.db", cfg.History.DSN)
	assert.True(t, cfg.Log.JSON)
}

func TestWithEnv_BadNumberFails(t *testing.T) {
	t.Setenv("HOSTKEYS_WORKERS_CONCURRENCY", "many")

	_, err := newConfigBuilder().withEnv().build()
	assert.Error(t, err)
}

// ── flags ────────────────────────────────────────────────────────────────────

func TestWithFlags_PositionalProfile(t *testing.T) {
	cfg, err := newConfigBuilder().withFlags(newCLIContext(t, "work")).build()
	require.NoError(t, err)

	assert.Equal(t, "work", cfg.App.Profile)
	assert.Equal(t, "Chiaki-work", cfg.App.ApplicationName())
}

func TestWithFlags_ProfileFlagWinsOverArgument(t *testing.T) {
	cfg, err := newConfigBuilder().withFlags(newCLIContext(t, "--profile", "home", "work")).build()
	require.NoError(t, err)

	assert.Equal(t, "home", cfg.App.Profile)
}

func TestWithFlags_CopyIndexZeroIsEnabled(t *testing.T) {
	cfg, err := newConfigBuilder().withFlags(newCLIContext(t, "--copy", "0")).build()
	require.NoError(t, err)

	assert.True(t, cfg.Copy.Enabled)
	assert.Equal(t, 0, cfg.Copy.HostIndex)
}

func TestWithFlags_OverrideEnv(t *testing.T) {
	t.Setenv("HOSTKEYS_STORE_BACKEND", "keyring")

	cfg, err := newConfigBuilder().withEnv().withFlags(newCLIContext(t, "--backend", "ini")).build()
	require.NoError(t, err)

	assert.Equal(t, BackendINI, cfg.Store.Backend)
}

func TestWithFlags_NilContextIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── file ─────────────────────────────────────────────────────────────────────

func TestWithFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "hostkeys.json", `{
		"app": {"organization": "Acme", "profile": "lab"},
		"report": {"format": "yaml"},
		"workers": {"concurrency": 3}
	}`)

	cfg, err := newConfigBuilder().withFlags(newCLIContext(t, "--config", path)).withFile().build()
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.App.Organization)
	assert.Equal(t, "Acme-lab", cfg.App.ApplicationName())
	assert.Equal(t, FormatYAML, cfg.Report.Format)
	assert.Equal(t, 3, cfg.Workers.Concurrency)
}

func TestWithFile_YAMLIsOverriddenByFlags(t *testing.T) {
	path := writeTempConfig(t, "hostkeys.yaml", "store:\n  backend: plist\n  path: /tmp/x.plist\nlog:\n  level: debug\n")

	cfg, err := newConfigBuilder().
		withFlags(newCLIContext(t, "--config", path, "--backend", "ini")).
		withFile().
		build()
	require.NoError(t, err)

	assert.Equal(t, BackendINI, cfg.Store.Backend)
	assert.Equal(t, "/tmp/x.plist", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestWithFile_MissingFileFails(t *testing.T) {
	t.Setenv("HOSTKEYS_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	_, err := newConfigBuilder().withEnv().withFile().build()
	assert.ErrorContains(t, err, "error reading a config file")
}

func TestWithFile_MalformedJSONFails(t *testing.T) {
	path := writeTempConfig(t, "broken.json", "{not json")
	t.Setenv("HOSTKEYS_CONFIG", path)

	_, err := newConfigBuilder().withEnv().withFile().build()
	assert.ErrorContains(t, err, "error decoding json configs")
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFile()
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// ── identity ─────────────────────────────────────────────────────────────────

func TestApplicationName(t *testing.T) {
	assert.Equal(t, "Chiaki", App{Organization: "Chiaki"}.ApplicationName())
	assert.Equal(t, "Chiaki-work", App{Organization: "Chiaki", Profile: "work"}.ApplicationName())
}
