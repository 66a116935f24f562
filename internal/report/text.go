// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/hostkeys/models"
)

// painter decorates one piece of a report line.
type painter func(string) string

func noPaint(s string) string { return s }

type palette struct {
	header  painter
	valid   painter
	warning painter
	missing painter
}

var plainPalette = palette{
	header:  noPaint,
	valid:   noPaint,
	warning: noPaint,
	missing: noPaint,
}

// TextRenderer writes the human-readable line format.
type TextRenderer struct {
	consumer string
	palette  palette
}

// NewTextRenderer returns an uncolored text renderer. consumer names the
// component quoted in length warnings.
func NewTextRenderer(consumer string) *TextRenderer {
	return &TextRenderer{consumer: consumer, palette: plainPalette}
}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, listing models.HostListing) error {
	var b strings.Builder

	if listing.Empty() {
		fmt.Fprintf(&b, "No registered hosts found for application '%s'\n", listing.Identity)
	}

	for _, host := range listing.Hosts {
		b.WriteString(r.palette.header(fmt.Sprintf("Host[%d] nickname='%s' mac='%s'", host.Index, host.Nickname, host.MAC)))
		b.WriteByte('\n')

		for _, secret := range host.Secrets() {
			r.writeSecret(&b, secret)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) writeSecret(b *strings.Builder, s models.SecretReport) {
	switch s.Status {
	case models.SecretValid:
		fmt.Fprintf(b, "  %s = %s\n", validLabel(s.Field), r.palette.valid(s.Hex))
	case models.SecretLengthMismatch:
		fmt.Fprintf(b, "  %s (decoded len=%d) = %s\n", s.Field, s.Length, r.palette.warning(s.Hex))
		b.WriteString(r.palette.warning(fmt.Sprintf("  WARNING: %s is not %d bytes; %s expects %d bytes.",
			s.Field, models.SecretLength, r.consumer, models.SecretLength)))
		b.WriteByte('\n')
	default:
		fmt.Fprintf(b, "  %s = %s\n", s.Field, r.palette.missing("<missing>"))
	}
}

// validLabel pads the session key label so both valid lines align.
func validLabel(field string) string {
	if field == models.FieldKey {
		return fmt.Sprintf("%-*s", len(models.FieldRegistKey), field)
	}
	return field
}
