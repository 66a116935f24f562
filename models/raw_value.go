// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawValue is the result of a single settings store read.
//
// Bytes holds the value as the backend sees it in binary form and may be
// empty. Text is a best-effort text rendering of the same value and is only
// meaningful when HasText is true. A RawValue is produced fresh per read and
// is never mutated afterwards.
type RawValue struct {
	Bytes   []byte
	Text    string
	HasText bool
}

// NewBinaryValue builds a RawValue that carries bytes only.
func NewBinaryValue(b []byte) RawValue {
	return RawValue{Bytes: b}
}

// NewTextValue builds a RawValue whose byte form is the text itself.
func NewTextValue(s string) RawValue {
	return RawValue{Bytes: []byte(s), Text: s, HasText: true}
}

// IsEmpty reports whether the read produced neither bytes nor text.
func (r RawValue) IsEmpty() bool {
	return len(r.Bytes) == 0 && (!r.HasText || r.Text == "")
}

// String returns the text rendering when present, else the bytes as a
// string. Used for plain fields such as the host nickname.
func (r RawValue) String() string {
	if r.HasText {
		return r.Text
	}
	return string(r.Bytes)
}
