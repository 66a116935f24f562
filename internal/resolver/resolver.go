// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver recovers fixed-length binary secrets from settings values
// whose encoding is unknown. ResolveSecret unwinds up to three layers
// (UTF-16LE bytes, "@ByteArray(...)" wrapper, base64/hex text) and always
// returns a result tagged with the branch that produced it.
package resolver

import (
	"github.com/MKhiriev/hostkeys/internal/codec"
	"github.com/MKhiriev/hostkeys/models"
)

// ResolveSecret runs the decode cascade over raw. The steps, first success
// wins:
//  1. raw bytes already have models.SecretLength bytes;
//  2. the text form, unwrapped from "@ByteArray(...)" when present, sniffed
//     as base64, hex or literal text;
//  3. the raw bytes re-read as UTF-16LE text, then step 2 again;
//  4. the raw bytes verbatim, possibly empty.
func ResolveSecret(raw models.RawValue) models.DecodedSecret {
	if len(raw.Bytes) == models.SecretLength {
		return models.DecodedSecret{Bytes: raw.Bytes, Provenance: models.ProvenanceAlreadyBinary}
	}

	if raw.HasText {
		if data, tag, ok := resolveText(raw.Text); ok {
			return models.DecodedSecret{Bytes: data, Provenance: tag}
		}
	}

	if codec.LooksUTF16LE(raw.Bytes) {
		if data, _, ok := resolveText(codec.DecodeUTF16LE(raw.Bytes)); ok {
			return models.DecodedSecret{Bytes: data, Provenance: models.ProvenanceUTF16Unwrapped}
		}
	}

	return models.DecodedSecret{Bytes: raw.Bytes, Provenance: models.ProvenanceRawFallback}
}

// resolveText unwraps s when it carries the byte array wrapper and sniffs the
// body. A bare value, or a wrapper whose body yields nothing, is sniffed
// whole and always tagged as literal.
func resolveText(s string) ([]byte, models.Provenance, bool) {
	if body, ok := codec.ExtractByteArray(s); ok {
		payload := codec.SniffPreferring(body, models.SecretLength)
		if len(payload.Data) > 0 {
			return payload.Data, wrapperProvenance(payload.Kind), true
		}
	}

	payload := codec.SniffPreferring(s, models.SecretLength)
	if len(payload.Data) > 0 {
		return payload.Data, models.ProvenanceWrapperLiteral, true
	}
	return nil, 0, false
}

func wrapperProvenance(kind codec.Kind) models.Provenance {
	switch kind {
	case codec.KindBase64:
		return models.ProvenanceWrapperBase64
	case codec.KindHex:
		return models.ProvenanceWrapperHex
	default:
		return models.ProvenanceWrapperLiteral
	}
}
