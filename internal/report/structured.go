// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/hostkeys/models"
)

// JSONRenderer writes the listing as indented JSON.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, listing models.HostListing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listing); err != nil {
		return fmt.Errorf("error encoding json report: %w", err)
	}
	return nil
}

// YAMLRenderer writes the listing as a YAML document.
type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Render implements Renderer.
func (YAMLRenderer) Render(w io.Writer, listing models.HostListing) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(listing); err != nil {
		return fmt.Errorf("error encoding yaml report: %w", err)
	}
	return enc.Close()
}
