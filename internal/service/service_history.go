// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/internal/store"
	"github.com/MKhiriev/hostkeys/internal/utils"
	"github.com/MKhiriev/hostkeys/models"
)

type historyService struct {
	repo          store.HistoryRepository
	fingerprinter *utils.Fingerprinter
	ids           *utils.UUIDGenerator
	now           func() time.Time

	logger *logger.Logger
}

// NewHistoryService returns a HistoryService storing runs in repo. Secrets
// are stored only as fingerprints.
func NewHistoryService(repo store.HistoryRepository, fingerprinter *utils.Fingerprinter, logger *logger.Logger) HistoryService {
	return &historyService{
		repo:          repo,
		fingerprinter: fingerprinter,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

func (s *historyService) Record(ctx context.Context, listing models.HostListing) (models.DumpRun, error) {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok || runID == "" {
		runID = s.ids.Generate()
	}

	run := models.DumpRun{
		ID:        runID,
		Identity:  listing.Identity,
		Backend:   listing.Backend,
		HostCount: len(listing.Hosts),
		CreatedAt: s.now().UTC(),
	}

	entries := make([]models.HistoryEntry, 0, 2*len(listing.Hosts))
	for _, host := range listing.Hosts {
		record := host.Record()
		secrets := map[string]models.DecodedSecret{
			models.FieldRegistKey: record.RegistSecret,
			models.FieldKey:       record.Secret,
		}

		for _, secret := range host.Secrets() {
			entries = append(entries, models.HistoryEntry{
				RunID:       runID,
				HostIndex:   host.Index,
				Nickname:    host.Nickname,
				MAC:         host.MAC,
				Field:       secret.Field,
				Status:      secret.Status,
				Provenance:  secret.Provenance.String(),
				Length:      secret.Length,
				Fingerprint: s.fingerprinter.Fingerprint(secrets[secret.Field].Bytes),
			})
		}
	}

	if err := s.repo.SaveRun(ctx, run, entries); err != nil {
		return models.DumpRun{}, fmt.Errorf("%w: %w", ErrRecordingHistory, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "historyService.Record").
		Str("run_id", run.ID).
		Int("entries", len(entries)).
		Msg("dump recorded")

	return run, nil
}

func (s *historyService) Recent(ctx context.Context, limit uint64) ([]models.DumpRun, error) {
	return s.repo.ListRuns(ctx, limit)
}

func (s *historyService) Entries(ctx context.Context, runID string) ([]models.HistoryEntry, error) {
	return s.repo.ListEntries(ctx, runID)
}

// HistoryRecordingService records every listing produced by the wrapped
// HostService. Recording failures are logged and never change the listing.
type HistoryRecordingService struct {
	inner   HostService
	history HistoryService
}

// NewHistoryRecordingService returns a wrapper recording into history.
func NewHistoryRecordingService(history HistoryService) HostServiceWrapper {
	return &HistoryRecordingService{history: history}
}

func (h *HistoryRecordingService) Wrap(inner HostService) HostService {
	h.inner = inner
	return h
}

func (h *HistoryRecordingService) ListHosts(ctx context.Context) models.HostListing {
	listing := h.inner.ListHosts(ctx)

	if _, err := h.history.Record(ctx, listing); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "HistoryRecordingService.ListHosts").
			Msg("dump history not recorded")
	}

	return listing
}
