// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/hostkeys/internal/logger"
	"github.com/MKhiriev/hostkeys/models"
)

// Clipboard receives the copied key pair.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// KeyPairArgs formats the keys of the host at index the way the controller
// command line expects them: "<rp_regist_key hex> <rp_key hex>".
func KeyPairArgs(listing models.HostListing, index int) (string, error) {
	for _, host := range listing.Hosts {
		if host.Index != index {
			continue
		}
		if host.RegistKey.Status != models.SecretValid || host.Key.Status != models.SecretValid {
			return "", fmt.Errorf("%w: host %d has %s %s and %s %s", ErrKeysNotUsable, index,
				host.RegistKey.Field, host.RegistKey.Status, host.Key.Field, host.Key.Status)
		}
		return host.RegistKey.Hex + " " + host.Key.Hex, nil
	}

	return "", fmt.Errorf("%w: %d", ErrHostNotFound, index)
}

// copyKeys puts the key pair of one host on the clipboard. Failures are
// warnings; the dump itself already succeeded.
func (a *App) copyKeys(ctx context.Context, listing models.HostListing, index int) {
	log := logger.FromContext(ctx)

	args, err := KeyPairArgs(listing, index)
	if err != nil {
		log.Warn().Err(err).Str("func", "App.copyKeys").Msg("keys not copied")
		return
	}

	if err = a.clipboard.WriteAll(args); err != nil {
		log.Warn().Err(err).Str("func", "App.copyKeys").Msg("clipboard write failed")
		return
	}

	fmt.Fprintf(a.errOut, MsgCopiedKeys+"\n", index)
}
