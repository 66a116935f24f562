// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DumpRun is one recorded execution of the host dump.
type DumpRun struct {
	ID        string    `json:"id" yaml:"id"`
	Identity  string    `json:"identity" yaml:"identity"`
	Backend   string    `json:"backend" yaml:"backend"`
	HostCount int       `json:"host_count" yaml:"host_count"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// HistoryEntry records the outcome for one secret field of one host.
// Fingerprint is a keyed hash of the decoded bytes; the secret itself is
// never stored.
type HistoryEntry struct {
	RunID       string       `json:"run_id" yaml:"run_id"`
	HostIndex   int          `json:"host_index" yaml:"host_index"`
	Nickname    string       `json:"nickname" yaml:"nickname"`
	MAC         string       `json:"mac" yaml:"mac"`
	Field       string       `json:"field" yaml:"field"`
	Status      SecretStatus `json:"status" yaml:"status"`
	Provenance  string       `json:"provenance" yaml:"provenance"`
	Length      int          `json:"length" yaml:"length"`
	Fingerprint string       `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}
