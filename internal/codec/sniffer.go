// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Kind names the encoding a payload was recognised as.
type Kind int

const (
	KindEmpty Kind = iota
	KindBase64
	KindHex
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindBase64:
		return "base64"
	case KindHex:
		return "hex"
	case KindLiteral:
		return "literal"
	default:
		return "empty"
	}
}

// Payload is a decoded payload together with the encoding that produced it.
type Payload struct {
	Data []byte
	Kind Kind
}

// DecodePayload decodes text as base64, hex or literal text, in that order,
// and returns the first non-empty result.
func DecodePayload(text string) []byte {
	return Sniff(text).Data
}

// Sniff is DecodePayload that also reports which encoding applied.
func Sniff(text string) Payload {
	for _, c := range candidates(normalize(text)) {
		if len(c.Data) > 0 {
			return c
		}
	}
	return Payload{Kind: KindEmpty}
}

// SniffPreferring evaluates the same candidates as Sniff, in the same order,
// but returns the first base64 or hex decode whose length is exactly wantLen.
// When no decode has that length it behaves like Sniff. The literal reading
// never takes precedence over a successful decode.
//
// A 32-digit hex string is also valid base64, so plain Sniff turns a hex
// encoded 16-byte key into 24 bytes; callers that know the expected size use
// this to pick the hex reading instead.
func SniffPreferring(text string, wantLen int) Payload {
	cs := candidates(normalize(text))
	if wantLen > 0 {
		for _, c := range cs {
			if c.Kind != KindLiteral && len(c.Data) == wantLen {
				return c
			}
		}
	}
	for _, c := range cs {
		if len(c.Data) > 0 {
			return c
		}
	}
	return Payload{Kind: KindEmpty}
}

// normalize trims surrounding whitespace and drops everything from the first
// NUL on.
func normalize(text string) string {
	p := strings.TrimSpace(text)
	if i := strings.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return p
}

// candidates returns every decoding that applies to p, in priority order.
// The literal reading is always last.
func candidates(p string) []Payload {
	out := make([]Payload, 0, 3)

	if IsBase64Text(p) {
		if b, err := base64.StdEncoding.DecodeString(p); err == nil && len(b) > 0 {
			out = append(out, Payload{Data: b, Kind: KindBase64})
		}
	}

	if IsHexText(p) {
		if b, err := hex.DecodeString(p); err == nil && len(b) > 0 {
			out = append(out, Payload{Data: b, Kind: KindHex})
		}
	}

	if p != "" {
		out = append(out, Payload{Data: []byte(p), Kind: KindLiteral})
	}

	return out
}

// IsBase64Text reports whether s is non-empty, uses only the standard base64
// alphabet (padding included) and has a length that is a multiple of 4.
func IsBase64Text(s string) bool {
	if s == "" || len(s)%4 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBase64Char(s[i]) {
			return false
		}
	}
	return true
}

// IsHexText reports whether s is non-empty, even-length and made of hex
// digits only.
func IsHexText(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return false
		}
	}
	return true
}

func isBase64Char(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '/', c == '=':
		return true
	}
	return false
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
