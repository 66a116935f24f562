// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Fingerprinter computes keyed BLAKE2b-256 fingerprints of secrets so that
// dump history can tell whether a key changed without storing it.
type Fingerprinter struct {
	pool sync.Pool
}

// NewFingerprinter returns a Fingerprinter keyed with key. An empty key
// gives plain BLAKE2b-256; keys longer than 64 bytes are rejected.
//
// Example usage:
//
//	fp, err := utils.NewFingerprinter("history-key")
//	digest := fp.Fingerprint(secret)
func NewFingerprinter(key string) (*Fingerprinter, error) {
	k := []byte(key)
	if len(k) == 0 {
		k = nil
	}

	// validate once so the pool constructor cannot fail
	if _, err := blake2b.New256(k); err != nil {
		return nil, fmt.Errorf("error creating fingerprint hasher: %w", err)
	}

	f := &Fingerprinter{}
	f.pool.New = func() any {
		h, _ := blake2b.New256(k)
		return h
	}
	return f, nil
}

// Fingerprint returns the hex-encoded keyed digest of data, or "" for
// empty data.
func (f *Fingerprinter) Fingerprint(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	h := f.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	f.pool.Put(h)

	return hex.EncodeToString(sum)
}
