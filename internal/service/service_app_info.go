// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hostkeys/models"
)

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{
		info: models.NewAppBuildInfo(
			orNotAvailable(info.BuildVersion()),
			orNotAvailable(info.BuildDate()),
			orNotAvailable(info.BuildCommit()),
		),
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
