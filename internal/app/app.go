// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/internal/report"
	"github.com/MKhiriev/hostkeys/internal/resolver"
	"github.com/MKhiriev/hostkeys/internal/service"
	"github.com/MKhiriev/hostkeys/internal/store"
	"github.com/MKhiriev/hostkeys/internal/utils"
	"github.com/MKhiriev/hostkeys/internal/validators"
	"github.com/MKhiriev/hostkeys/models"
)

// App runs the hostkeys operations for one invocation.
type App struct {
	cfg       config.StructuredConfig
	services  *service.Services
	renderer  report.Renderer
	clipboard Clipboard
	reader    store.SettingsReader
	historyDB *store.DB

	out    io.Writer
	errOut io.Writer
	logger *logger.Logger
}

// Option customises an App.
type Option func(*App)

// WithOutput redirects the report and diagnostics streams.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// WithSettingsReader bypasses store selection and reads from r.
func WithSettingsReader(r store.SettingsReader) Option {
	return func(a *App) {
		a.reader = r
	}
}

// NewApp opens the settings store and, when configured, the history
// database. Neither failure is fatal: the store degrades to an empty one
// and history is disabled.
func NewApp(ctx context.Context, cfg config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:       cfg,
		clipboard: systemClipboard{},
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    log,
	}
	for _, opt := range opts {
		opt(a)
	}

	reader := a.reader
	if reader == nil {
		reader, _ = store.Open(ctx, cfg.Store, cfg.App)
	}

	var history store.HistoryRepository
	if cfg.History.DSN != "" {
		history = a.openHistory(ctx)
	}

	services, err := service.NewServices(reader, history, cfg, build, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	a.services = services

	renderer, err := report.New(cfg.Report, a.out)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("error creating report renderer: %w", err)
	}
	a.renderer = renderer

	return a, nil
}

func (a *App) openHistory(ctx context.Context) store.HistoryRepository {
	log := logger.FromContext(ctx)

	db, err := store.NewConnectSQLite(ctx, a.cfg.History, a.logger)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.openHistory").Msg("dump history disabled")
		return nil
	}

	if err = db.Migrate(); err != nil {
		log.Warn().Err(err).Str("func", "App.openHistory").Msg("dump history disabled")
		db.Close()
		return nil
	}

	a.historyDB = db
	return store.NewHistoryRepository(db, a.logger)
}

// Close releases the history database.
func (a *App) Close() error {
	if a.historyDB == nil {
		return nil
	}
	err := a.historyDB.Close()
	a.historyDB = nil
	return err
}

// Dump lists the registered hosts and writes the report. A render failure
// is logged, never returned.
func (a *App) Dump(ctx context.Context) models.HostListing {
	ctx = utils.WithRunID(ctx, utils.NewUUIDGenerator().Generate())

	listing := a.services.HostService.ListHosts(ctx)

	if err := a.renderer.Render(a.out, listing); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "App.Dump").Msg("error writing report")
	}

	if a.cfg.Copy.Enabled {
		a.copyKeys(ctx, listing, a.cfg.Copy.HostIndex)
	}

	return listing
}

// Decode runs the resolver on a single value. With rawHex the value is
// taken as hex-encoded raw bytes without a text form, as a binary registry
// value would arrive.
func (a *App) Decode(ctx context.Context, value string, rawHex bool) (models.DecodedSecret, error) {
	raw := models.NewTextValue(value)
	if rawHex {
		b, err := hex.DecodeString(strings.TrimSpace(value))
		if err != nil {
			return models.DecodedSecret{}, fmt.Errorf("%w: %w", ErrInvalidRawHex, err)
		}
		raw = models.NewBinaryValue(b)
	}

	secret := resolver.ResolveSecret(raw)

	var b strings.Builder
	fmt.Fprintf(&b, "provenance = %s\n", secret.Provenance)
	fmt.Fprintf(&b, "length     = %d\n", secret.Len())
	fmt.Fprintf(&b, "hex        = %s\n", secret.Hex())

	validator := validators.NewSecretValidator(models.SecretLength)
	if err := validator.Validate(ctx, secret); err != nil {
		fmt.Fprintf(&b, MsgKeyNotUsable+"\n", models.SecretLength, a.cfg.Report.Consumer, models.SecretLength)
	}

	if _, err := io.WriteString(a.out, b.String()); err != nil {
		return secret, fmt.Errorf("error writing decode result: %w", err)
	}

	return secret, nil
}

// History prints the most recent dump runs, or the entries of one run when
// runID is set.
func (a *App) History(ctx context.Context, limit uint64, runID string) error {
	history := a.services.HistoryService
	if history == nil {
		return service.ErrHistoryDisabled
	}

	if runID != "" {
		entries, err := history.Entries(ctx, runID)
		if err != nil {
			return fmt.Errorf("error reading dump entries: %w", err)
		}
		return report.RenderEntries(a.out, a.cfg.Report.Format, entries)
	}

	runs, err := history.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("error reading dump history: %w", err)
	}
	if len(runs) == 0 && a.cfg.Report.Format == config.FormatText {
		_, err = fmt.Fprintln(a.out, MsgNoHistory)
		return err
	}

	return report.RenderRuns(a.out, a.cfg.Report.Format, runs)
}

// Version prints the build metadata.
func (a *App) Version(ctx context.Context) error {
	info := a.services.AppInfoService.GetBuildInfo(ctx)

	_, err := fmt.Fprintf(a.out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return err
}
