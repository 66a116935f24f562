// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the hostkeys tool.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. Config file (JSON or YAML, path taken from env or flags)
//  2. Environment variables (HOSTKEYS_ prefix)
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
