// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/models"
)

// ErrUnknownFormat is returned by New for formats it cannot render.
var ErrUnknownFormat = errors.New("unknown report format")

// Renderer writes a host listing to w.
type Renderer interface {
	Render(w io.Writer, listing models.HostListing) error
}

// New returns the renderer selected by cfg. out is only inspected to decide
// whether the auto style should use color.
func New(cfg config.Report, out io.Writer) (Renderer, error) {
	consumer := cfg.Consumer
	if consumer == "" {
		consumer = config.DefaultConsumer
	}

	switch cfg.Format {
	case config.FormatText, "":
		if useColor(cfg.Style, out) {
			return NewColorRenderer(consumer, out), nil
		}
		return NewTextRenderer(consumer), nil
	case config.FormatJSON:
		return NewJSONRenderer(), nil
	case config.FormatYAML:
		return NewYAMLRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

func useColor(style string, out io.Writer) bool {
	switch style {
	case config.StyleColor:
		return true
	case config.StylePlain:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
