// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/hex"

// Settings layout of the registered hosts array.
const (
	// RegisteredHostsSection is the array section holding one entry per
	// paired host.
	RegisteredHostsSection = "registered_hosts"

	FieldNickname  = "server_nickname"
	FieldMAC       = "server_mac"
	FieldRegistKey = "rp_regist_key"
	FieldKey       = "rp_key"
)

// SecretStatus classifies a decoded secret by its length.
type SecretStatus string

const (
	// SecretValid means the decoded secret has exactly SecretLength bytes.
	SecretValid SecretStatus = "valid"
	// SecretLengthMismatch means the decoded secret is non-empty but has the
	// wrong length. It is a warning, the value is still surfaced.
	SecretLengthMismatch SecretStatus = "length-mismatch"
	// SecretMissing means nothing could be recovered.
	SecretMissing SecretStatus = "missing"
)

// HostRecord is one entry of the registered hosts array with both secrets
// resolved. It is immutable once built.
type HostRecord struct {
	Index        int
	Nickname     string
	MAC          []byte
	RegistSecret DecodedSecret
	Secret       DecodedSecret
}

// MACHex renders the MAC bytes as lowercase hex without separators.
func (h HostRecord) MACHex() string {
	return hex.EncodeToString(h.MAC)
}

// SecretReport is the classified view of one secret field of a host.
type SecretReport struct {
	Field      string       `json:"field" yaml:"field"`
	Status     SecretStatus `json:"status" yaml:"status"`
	Provenance Provenance   `json:"provenance" yaml:"provenance"`
	Length     int          `json:"length" yaml:"length"`
	Hex        string       `json:"hex,omitempty" yaml:"hex,omitempty"`
}

// HostReport is the per-index report emitted by the assembler.
type HostReport struct {
	Index     int          `json:"index" yaml:"index"`
	Nickname  string       `json:"nickname" yaml:"nickname"`
	MAC       string       `json:"mac" yaml:"mac"`
	RegistKey SecretReport `json:"rp_regist_key" yaml:"rp_regist_key"`
	Key       SecretReport `json:"rp_key" yaml:"rp_key"`

	record HostRecord
}

// NewHostReport attaches the resolved record to its classified report.
func NewHostReport(record HostRecord, regist, key SecretReport) HostReport {
	return HostReport{
		Index:     record.Index,
		Nickname:  record.Nickname,
		MAC:       record.MACHex(),
		RegistKey: regist,
		Key:       key,
		record:    record,
	}
}

// Record returns the resolved host record behind the report.
func (h HostReport) Record() HostRecord {
	return h.record
}

// Secrets returns both secret reports in output order.
func (h HostReport) Secrets() []SecretReport {
	return []SecretReport{h.RegistKey, h.Key}
}

// HostListing is the result of one enumeration pass over the store.
// An empty Hosts slice stands for the "no hosts found" marker.
type HostListing struct {
	Identity string       `json:"identity" yaml:"identity"`
	Backend  string       `json:"backend" yaml:"backend"`
	Hosts    []HostReport `json:"hosts" yaml:"hosts"`
}

// Empty reports whether the store held no registered hosts.
func (l HostListing) Empty() bool {
	return len(l.Hosts) == 0
}
