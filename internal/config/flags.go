// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/urfave/cli/v2"
)

// Flag names shared by the CLI definition and parseFlags.
const (
	FlagOrganization   = "organization"
	FlagProfile        = "profile"
	FlagBackend        = "backend"
	FlagStorePath      = "store-path"
	FlagFormat         = "format"
	FlagStyle          = "style"
	FlagConsumer       = "consumer"
	FlagConcurrency    = "concurrency"
	FlagHistoryDB      = "history-db"
	FlagFingerprintKey = "fingerprint-key"
	FlagLogLevel       = "log-level"
	FlagLogJSON        = "log-json"
	FlagCopy           = "copy"
	FlagConfig         = "config"
)

// Flags returns the global CLI flags understood by parseFlags. Defaults are
// left empty on purpose: they are applied after merging so that an unset
// flag never overrides env or file values.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagOrganization, Usage: "settings organization name (default \"" + DefaultOrganization + "\")"},
		&cli.StringFlag{Name: FlagProfile, Aliases: []string{"p"}, Usage: "settings profile; may also be given as the first argument"},
		&cli.StringFlag{Name: FlagBackend, Aliases: []string{"b"}, Usage: "settings backend: auto, ini, plist, registry, keyring"},
		&cli.StringFlag{Name: FlagStorePath, Usage: "override the settings file location"},
		&cli.StringFlag{Name: FlagFormat, Aliases: []string{"f"}, Usage: "report format: text, json, yaml"},
		&cli.StringFlag{Name: FlagStyle, Usage: "text report style: auto, plain, color"},
		&cli.StringFlag{Name: FlagConsumer, Usage: "component named in length warnings (default \"" + DefaultConsumer + "\")"},
		&cli.IntFlag{Name: FlagConcurrency, Usage: "hosts resolved in parallel"},
		&cli.StringFlag{Name: FlagHistoryDB, Usage: "record dumps in this SQLite database"},
		&cli.StringFlag{Name: FlagFingerprintKey, Usage: "key for the secret fingerprints stored in history"},
		&cli.StringFlag{Name: FlagLogLevel, Usage: "log level: debug, info, warn, error"},
		&cli.BoolFlag{Name: FlagLogJSON, Usage: "write logs as JSON"},
		&cli.IntFlag{Name: FlagCopy, Usage: "copy the keys of the host with this index to the clipboard"},
		&cli.StringFlag{Name: FlagConfig, Aliases: []string{"c"}, Usage: "JSON or YAML config file"},
	}
}

// parseFlags maps the parsed CLI flags onto a StructuredConfig. Only flags
// that were actually set produce non-zero values.
func parseFlags(cCtx *cli.Context) *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			Organization: cCtx.String(FlagOrganization),
			Profile:      cCtx.String(FlagProfile),
		},
		Store: Store{
			Backend: cCtx.String(FlagBackend),
			Path:    cCtx.String(FlagStorePath),
		},
		Report: Report{
			Format:   cCtx.String(FlagFormat),
			Style:    cCtx.String(FlagStyle),
			Consumer: cCtx.String(FlagConsumer),
		},
		Workers: Workers{
			Concurrency: cCtx.Int(FlagConcurrency),
		},
		History: History{
			DSN:            cCtx.String(FlagHistoryDB),
			FingerprintKey: cCtx.String(FlagFingerprintKey),
		},
		Log: Log{
			Level: cCtx.String(FlagLogLevel),
			JSON:  cCtx.Bool(FlagLogJSON),
		},
		ConfigFilePath: cCtx.String(FlagConfig),
	}

	if cfg.App.Profile == "" && cCtx.Args().Present() {
		cfg.App.Profile = cCtx.Args().First()
	}

	if cCtx.IsSet(FlagCopy) {
		cfg.Copy = Copy{Enabled: true, HostIndex: cCtx.Int(FlagCopy)}
	}

	return cfg
}
