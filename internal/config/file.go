// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. The same
// keys are used for JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Organization string `json:"organization" yaml:"organization"`
		Profile      string `json:"profile" yaml:"profile"`
	} `json:"app" yaml:"app"`

	Store struct {
		Backend string `json:"backend" yaml:"backend"`
		Path    string `json:"path" yaml:"path"`
	} `json:"store" yaml:"store"`

	Report struct {
		Format   string `json:"format" yaml:"format"`
		Style    string `json:"style" yaml:"style"`
		Consumer string `json:"consumer" yaml:"consumer"`
	} `json:"report" yaml:"report"`

	Workers struct {
		Concurrency int `json:"concurrency" yaml:"concurrency"`
	} `json:"workers" yaml:"workers"`

	History struct {
		DSN            string `json:"dsn" yaml:"dsn"`
		FingerprintKey string `json:"fingerprint_key" yaml:"fingerprint_key"`
	} `json:"history" yaml:"history"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		JSON  bool   `json:"json" yaml:"json"`
	} `json:"log" yaml:"log"`
}

// parseFile reads a JSON or YAML config file, choosing the decoder by file
// extension (.yaml and .yml are YAML, anything else is JSON).
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Organization: fileCfg.App.Organization,
			Profile:      fileCfg.App.Profile,
		},
		Store: Store{
			Backend: fileCfg.Store.Backend,
			Path:    fileCfg.Store.Path,
		},
		Report: Report{
			Format:   fileCfg.Report.Format,
			Style:    fileCfg.Report.Style,
			Consumer: fileCfg.Report.Consumer,
		},
		Workers: Workers{
			Concurrency: fileCfg.Workers.Concurrency,
		},
		History: History{
			DSN:            fileCfg.History.DSN,
			FingerprintKey: fileCfg.History.FingerprintKey,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
			JSON:  fileCfg.Log.JSON,
		},
	}, nil
}
