// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/hostkeys/internal/app"
	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	flagRawHex = "raw-hex"
	flagLimit  = "limit"
	flagRun    = "run"
)

const usage = `Print the registration and session keys of every host registered in the
Chiaki settings store, decoded to hex.

The first argument, when given, selects the settings profile.`

func main() {
	cliApp := &cli.App{
		Name:        "hostkeys",
		Usage:       "dump Chiaki registered host keys",
		UsageText:   "hostkeys [global options] [profile]",
		Description: usage,
		Version:     buildVersion,
		Flags:       config.Flags(),
		Action:      dump,
		Commands: []*cli.Command{
			{
				Name:      "dump",
				Usage:     "print every registered host and its keys (default)",
				ArgsUsage: "[profile]",
				Flags:     config.Flags(),
				Action:    dump,
			},
			{
				Name:      "decode",
				Usage:     "run the key decoder on a single value",
				ArgsUsage: "<value>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flagRawHex, Usage: "treat the value as hex-encoded raw bytes"},
				},
				Action: decode,
			},
			{
				Name:  "history",
				Usage: "list recorded dumps, or the entries of one dump",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: flagLimit, Value: 20, Usage: "number of dumps to list, 0 for all"},
					&cli.StringFlag{Name: flagRun, Usage: "show the entries of this dump run"},
				},
				Action: history,
			},
			{
				Name:   "version",
				Usage:  "print build information",
				Action: version,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dump always exits with status 0 once the configuration is valid.
func dump(cCtx *cli.Context) error {
	return withApp(cCtx, cCtx, func(ctx context.Context, a *app.App) error {
		a.Dump(ctx)
		return nil
	})
}

func decode(cCtx *cli.Context) error {
	if !cCtx.Args().Present() {
		return cli.Exit("decode: a value is required", 2)
	}

	return withApp(cCtx, rootContext(cCtx), func(ctx context.Context, a *app.App) error {
		_, err := a.Decode(ctx, cCtx.Args().First(), cCtx.Bool(flagRawHex))
		return err
	})
}

func history(cCtx *cli.Context) error {
	return withApp(cCtx, rootContext(cCtx), func(ctx context.Context, a *app.App) error {
		return a.History(ctx, cCtx.Uint64(flagLimit), cCtx.String(flagRun))
	})
}

func version(cCtx *cli.Context) error {
	return withApp(cCtx, rootContext(cCtx), func(ctx context.Context, a *app.App) error {
		return a.Version(ctx)
	})
}

// withApp builds the configuration from cfgCtx, then runs fn with a ready
// App. Positional arguments of subcommands other than dump are not profiles,
// so those read their configuration from the root context.
func withApp(cCtx, cfgCtx *cli.Context, fn func(context.Context, *app.App) error) error {
	cfg, err := config.GetStructuredConfig(cfgCtx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error getting configs: %v", err), 1)
	}

	log := logger.NewLogger("hostkeys", logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	ctx := log.WithContext(cCtx.Context)

	a, err := app.NewApp(ctx, *cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer a.Close()

	return fn(ctx, a)
}

// rootContext returns the context holding the global flags.
func rootContext(cCtx *cli.Context) *cli.Context {
	if lineage := cCtx.Lineage(); len(lineage) > 1 && lineage[1].Command != nil {
		return lineage[1]
	}
	return cCtx
}
