// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hostkeys/models"
)

// HostService enumerates the registered hosts of one settings identity.
type HostService interface {
	// ListHosts reads every registered host, resolves both secrets and
	// classifies them. It never fails; an empty or unreadable store yields
	// an empty listing.
	ListHosts(ctx context.Context) models.HostListing
}

// HistoryService records dump runs and reads them back.
type HistoryService interface {
	Record(ctx context.Context, listing models.HostListing) (models.DumpRun, error)
	Recent(ctx context.Context, limit uint64) ([]models.DumpRun, error)
	Entries(ctx context.Context, runID string) ([]models.HistoryEntry, error)
}

// AppInfoService exposes build metadata for the version command.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HostServiceWrapper defines middleware composition for HostService.
// Implementations wrap an existing HostService to add behavior such as
// history recording.
type HostServiceWrapper interface {
	Wrap(HostService) HostService // returns a decorated HostService applying additional behavior
}
