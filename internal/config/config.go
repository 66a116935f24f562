// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/urfave/cli/v2"
)

// Defaults applied after all sources are merged.
const (
	DefaultOrganization = "Chiaki"
	DefaultBackend      = BackendAuto
	DefaultFormat       = FormatText
	DefaultStyle        = StyleAuto
	DefaultConsumer     = "chiaki_session_init"
	DefaultConcurrency  = 1
	DefaultLogLevel     = "warn"
)

// Store backends.
const (
	BackendAuto     = "auto"
	BackendINI      = "ini"
	BackendPlist    = "plist"
	BackendRegistry = "registry"
	BackendKeyring  = "keyring"
)

// Report formats and styles.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleColor = "color"
)

// StructuredConfig is the top-level configuration container for hostkeys.
// It is populated by merging values from a config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every env name is additionally prefixed with HOSTKEYS_.
type StructuredConfig struct {
	// App identifies whose settings are read.
	App App

	// Store selects and locates the settings backend.
	Store Store `envPrefix:"STORE_"`

	// Report controls how the host report is rendered.
	Report Report `envPrefix:"REPORT_"`

	// Workers controls parallel host resolution.
	Workers Workers `envPrefix:"WORKERS_"`

	// History configures the optional dump history database.
	History History `envPrefix:"HISTORY_"`

	// Log configures diagnostics written to stderr.
	Log Log `envPrefix:"LOG_"`

	// Copy selects a host whose keys are copied to the clipboard.
	Copy Copy

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: HOSTKEYS_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds the settings identity.
type App struct {
	// Organization is the settings organization name.
	// Env: HOSTKEYS_ORGANIZATION
	Organization string `env:"ORGANIZATION"`

	// Profile selects a named profile; empty means the default identity.
	// Env: HOSTKEYS_PROFILE
	Profile string `env:"PROFILE"`
}

// ApplicationName returns the organization name for the default profile and
// "<organization>-<profile>" otherwise.
func (a App) ApplicationName() string {
	if a.Profile == "" {
		return a.Organization
	}
	return a.Organization + "-" + a.Profile
}

// Store selects the settings backend.
type Store struct {
	// Backend is one of auto, ini, plist, registry, keyring.
	// Env: HOSTKEYS_STORE_BACKEND
	Backend string `env:"BACKEND"`

	// Path overrides the backend's default file location.
	// Env: HOSTKEYS_STORE_PATH
	Path string `env:"PATH"`
}

// Report controls report rendering.
type Report struct {
	// Format is one of text, json, yaml.
	// Env: HOSTKEYS_REPORT_FORMAT
	Format string `env:"FORMAT"`

	// Style is one of auto, plain, color and only affects the text format.
	// Env: HOSTKEYS_REPORT_STYLE
	Style string `env:"STYLE"`

	// Consumer names the component that needs 16-byte keys in warnings.
	// Env: HOSTKEYS_REPORT_CONSUMER
	Consumer string `env:"CONSUMER"`
}

// Workers controls host resolution concurrency.
type Workers struct {
	// Concurrency is the number of hosts resolved in parallel.
	// Env: HOSTKEYS_WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// History configures the dump history database.
type History struct {
	// DSN is a SQLite file path; empty disables history.
	// Env: HOSTKEYS_HISTORY_DSN
	DSN string `env:"DSN"`

	// FingerprintKey keys the BLAKE2b fingerprints stored instead of
	// secrets. At most 64 bytes.
	// Env: HOSTKEYS_HISTORY_FINGERPRINT_KEY
	FingerprintKey string `env:"FINGERPRINT_KEY"`
}

// Log configures stderr diagnostics.
type Log struct {
	// Env: HOSTKEYS_LOG_LEVEL
	Level string `env:"LEVEL"`
	// Env: HOSTKEYS_LOG_JSON
	JSON bool `env:"JSON"`
}

// Copy selects the host whose keys go to the clipboard.
type Copy struct {
	Enabled   bool
	HostIndex int
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration for one CLI invocation.
func GetStructuredConfig(cCtx *cli.Context) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(cCtx).
		withFile().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Organization == "" {
		cfg.App.Organization = DefaultOrganization
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = DefaultBackend
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = DefaultFormat
	}
	if cfg.Report.Style == "" {
		cfg.Report.Style = DefaultStyle
	}
	if cfg.Report.Consumer == "" {
		cfg.Report.Consumer = DefaultConsumer
	}
	if cfg.Workers.Concurrency == 0 {
		cfg.Workers.Concurrency = DefaultConcurrency
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
