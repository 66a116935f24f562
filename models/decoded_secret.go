// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/hex"

// SecretLength is the size in bytes of both the registration key and the
// session key expected by the streaming session.
const SecretLength = 16

// Provenance records which decode branch produced a DecodedSecret.
type Provenance int

const (
	// ProvenanceAlreadyBinary means the stored value already had
	// SecretLength bytes and no text heuristics were applied.
	ProvenanceAlreadyBinary Provenance = iota + 1

	// ProvenanceWrapperBase64 means a wrapper body was base64.
	ProvenanceWrapperBase64

	// ProvenanceWrapperHex means a wrapper body was hex.
	ProvenanceWrapperHex

	// ProvenanceWrapperLiteral means the payload was used as literal text,
	// either a wrapper body or a bare unwrapped value.
	ProvenanceWrapperLiteral

	// ProvenanceUTF16Unwrapped means the raw bytes were re-read as
	// UTF-16LE text before unwrapping.
	ProvenanceUTF16Unwrapped

	// ProvenanceRawFallback means nothing decoded and the raw bytes were
	// returned verbatim (possibly empty).
	ProvenanceRawFallback
)

var provenanceNames = map[Provenance]string{
	ProvenanceAlreadyBinary:  "already-binary",
	ProvenanceWrapperBase64:  "wrapper-base64",
	ProvenanceWrapperHex:     "wrapper-hex",
	ProvenanceWrapperLiteral: "wrapper-literal",
	ProvenanceUTF16Unwrapped: "utf16-unwrapped",
	ProvenanceRawFallback:    "raw-fallback",
}

// String returns the dashed tag used in reports and logs.
func (p Provenance) String() string {
	if name, ok := provenanceNames[p]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so the tag renders the same
// way in JSON and YAML reports.
func (p Provenance) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// DecodedSecret is the output of the encoding cascade. It is always
// produced; its length is not guaranteed to be SecretLength.
type DecodedSecret struct {
	Bytes      []byte
	Provenance Provenance
}

// Len returns the decoded length in bytes.
func (d DecodedSecret) Len() int {
	return len(d.Bytes)
}

// Hex returns the lowercase hex rendering of the decoded bytes.
func (d DecodedSecret) Hex() string {
	return hex.EncodeToString(d.Bytes)
}
