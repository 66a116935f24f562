// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "strings"

// ByteArrayMarker is the prefix Qt settings serializers put in front of a
// byte array stored as text.
const ByteArrayMarker = "@ByteArray("

// ExtractWrapped finds the leftmost marker in s and returns the body between
// it and the closing parenthesis that ends s. Parentheses inside the body are
// kept. A single trailing newline after the closing parenthesis is tolerated.
func ExtractWrapped(s, marker string) (string, bool) {
	s = strings.TrimSuffix(s, "\n")
	if !strings.HasSuffix(s, ")") {
		return "", false
	}

	start := strings.Index(s, marker)
	if start < 0 {
		return "", false
	}

	return s[start+len(marker) : len(s)-1], true
}

// ExtractByteArray is ExtractWrapped with ByteArrayMarker.
func ExtractByteArray(s string) (string, bool) {
	return ExtractWrapped(s, ByteArrayMarker)
}
