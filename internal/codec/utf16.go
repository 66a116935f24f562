// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"golang.org/x/text/encoding/unicode"
)

// LooksUTF16LE reports whether b plausibly holds UTF-16LE text: the length is
// even and at least 4, and more than a quarter of the length is made of zero
// bytes at odd offsets (the high bytes of ASCII code units).
func LooksUTF16LE(b []byte) bool {
	if len(b) < 4 || len(b)%2 != 0 {
		return false
	}

	zeros := 0
	for i := 1; i < len(b); i += 2 {
		if b[i] == 0 {
			zeros++
		}
	}
	return zeros > len(b)/4
}

// DecodeUTF16LE interprets b as little-endian 16-bit code units and returns
// the text as UTF-8. Invalid surrogates become U+FFFD.
func DecodeUTF16LE(b []byte) string {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}
