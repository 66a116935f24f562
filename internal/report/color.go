// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NewColorRenderer returns a text renderer that styles headers, keys and
// warnings with ANSI colors regardless of what out is connected to.
func NewColorRenderer(consumer string, out io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI256)

	var (
		headerStyle  = r.NewStyle().Bold(true)
		validStyle   = r.NewStyle().Foreground(lipgloss.Color("42"))
		warningStyle = r.NewStyle().Foreground(lipgloss.Color("214"))
		missingStyle = r.NewStyle().Foreground(lipgloss.Color("196")).Faint(true)
	)

	return &TextRenderer{
		consumer: consumer,
		palette: palette{
			header:  paintWith(headerStyle),
			valid:   paintWith(validStyle),
			warning: paintWith(warningStyle),
			missing: paintWith(missingStyle),
		},
	}
}

func paintWith(style lipgloss.Style) painter {
	return func(s string) string {
		return style.Render(s)
	}
}
