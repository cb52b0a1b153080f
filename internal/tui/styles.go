// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by every styled line shipcalc prints.
const (
	// ColorPrimary is purple - banner and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray - secondary text.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green - the final estimate.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red - fatal errors.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber - invalid input and rejections.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue - prompts and keys.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Styles are lipgloss styles bound to one output writer. Binding the renderer
// to the writer means a pipe or buffer gets plain text while a terminal gets
// color.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Prompt  lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Key     lipgloss.Style
}

// NewStyles returns the palette rendered for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Prompt:  r.NewStyle().Foreground(ColorHighlight),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Success: r.NewStyle().Bold(true).Foreground(ColorSuccess),
		Error:   r.NewStyle().Bold(true).Foreground(ColorError),
		Key:     r.NewStyle().Foreground(ColorHighlight),
	}
}
