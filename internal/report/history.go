// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/hostkeys/internal/config"
	"github.com/MKhiriev/hostkeys/models"
)

// RenderRuns writes dump runs in the given format, one line per run for
// text.
func RenderRuns(w io.Writer, format string, runs []models.DumpRun) error {
	if format != config.FormatText && format != "" {
		return encodeStructured(w, format, runs)
	}

	var b strings.Builder
	for _, run := range runs {
		fmt.Fprintf(&b, "%s  %s  %s (%s)  hosts=%d\n",
			run.CreatedAt.UTC().Format(time.RFC3339), run.ID, run.Identity, run.Backend, run.HostCount)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderEntries writes the per-secret entries of one run.
func RenderEntries(w io.Writer, format string, entries []models.HistoryEntry) error {
	if format != config.FormatText && format != "" {
		return encodeStructured(w, format, entries)
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "Host[%d] nickname='%s' mac='%s' %s %s provenance=%s len=%d",
			e.HostIndex, e.Nickname, e.MAC, e.Field, e.Status, e.Provenance, e.Length)
		if e.Fingerprint != "" {
			fmt.Fprintf(&b, " fingerprint=%s", e.Fingerprint)
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func encodeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
