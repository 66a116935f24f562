// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrHostNotFound is returned when --copy names an index that is not in
	// the listing.
	ErrHostNotFound = errors.New("host index not found")

	// ErrKeysNotUsable is returned when --copy targets a host whose keys are
	// not both 16 bytes long.
	ErrKeysNotUsable = errors.New("host keys are not both valid")

	// ErrInvalidRawHex is returned by Decode when --raw-hex input is not hex.
	ErrInvalidRawHex = errors.New("value is not valid hex")
)
