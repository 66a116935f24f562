// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec recognises and decodes the textual encodings that settings
// stores use for binary values: base64, hex, literal text, the
// "@ByteArray(...)" wrapper syntax and UTF-16LE text stored as raw bytes.
//
// Every function in this package is total: malformed input degrades to a
// lower-confidence result, never to an error or a panic.
package codec
