// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/internal/store"
	"github.com/MKhiriev/hostkeys/internal/utils"
	"github.com/MKhiriev/hostkeys/internal/workers"
	"github.com/MKhiriev/hostkeys/models"
)

type Services struct {
	HostService    HostService
	HistoryService HistoryService
	AppInfoService AppInfoService
}

// NewServices wires the services for one invocation. history may be nil,
// in which case HistoryService is nil and dumps are not recorded.
func NewServices(reader store.SettingsReader, history store.HistoryRepository, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hosts := NewHostService(reader, cfg.App.ApplicationName(), workers.NewPool(cfg.Workers.Concurrency), logger)

	services := &Services{
		HostService:    hosts,
		AppInfoService: NewAppInfoService(build),
	}

	if history == nil {
		return services, nil
	}

	fingerprinter, err := utils.NewFingerprinter(cfg.History.FingerprintKey)
	if err != nil {
		return nil, fmt.Errorf("error creating history service: %w", err)
	}

	services.HistoryService = NewHistoryService(history, fingerprinter, logger)
	services.HostService = NewHistoryRecordingService(services.HistoryService).Wrap(hosts)

	return services, nil
}
