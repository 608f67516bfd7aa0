// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/invowk/measure/internal/report"
)

// Color palette shared by all CLI output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for titles, headers, and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles, secondary text, and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for conversion results.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorWarning is amber - used for warnings and suggestions.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for symbols, commands, and keys.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for conversion results.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names, symbols, and config keys.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// tableStyles maps the palette onto report tables.
func tableStyles() report.Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return report.Styles{
		Header: cell.Bold(true).Foreground(ColorPrimary),
		Cell:   cell,
		Muted:  cell.Foreground(ColorMuted),
		Border: lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
