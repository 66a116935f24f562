// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// maxFingerprintKeyLen is the largest key BLAKE2b accepts.
const maxFingerprintKeyLen = 64

var (
	allowedBackends = []string{BackendAuto, BackendINI, BackendPlist, BackendRegistry, BackendKeyring}
	allowedFormats  = []string{FormatText, FormatJSON, FormatYAML}
	allowedStyles   = []string{StyleAuto, StylePlain, StyleColor}
)

// validate checks that the merged and defaulted [StructuredConfig] only
// holds supported values. Returns nil if the configuration is valid.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(allowedBackends, cfg.Store.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStoreConfigs, cfg.Store.Backend)
	}

	if !slices.Contains(allowedFormats, cfg.Report.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidReportConfigs, cfg.Report.Format)
	}

	if !slices.Contains(allowedStyles, cfg.Report.Style) {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidReportConfigs, cfg.Report.Style)
	}

	if cfg.Workers.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", ErrInvalidWorkerConfigs)
	}

	if len(cfg.History.FingerprintKey) > maxFingerprintKeyLen {
		return fmt.Errorf("%w: fingerprint key longer than %d bytes", ErrInvalidHistoryConfigs, maxFingerprintKeyLen)
	}

	if cfg.Copy.Enabled && cfg.Copy.HostIndex < 0 {
		return fmt.Errorf("%w: host index must not be negative", ErrInvalidCopyConfigs)
	}

	return nil
}
