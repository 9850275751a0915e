package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hasbyte1/go-macro-collections/internal/config"
)

// Color palette shared by all collsh output.
const (
	// ColorPrimary is purple - used for titles and type names.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for member lists and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for TRUE results.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for FALSE results.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for handles.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// styles holds the lipgloss styles bound to one output writer.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	handle  lipgloss.Style
	value   lipgloss.Style
}

// newStyles builds styles for w. ColorAuto follows w's terminal
// capabilities; the other modes force a profile.
func newStyles(w io.Writer, mode config.ColorMode) styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		muted: r.NewStyle().
			Foreground(ColorMuted),
		success: r.NewStyle().
			Foreground(ColorSuccess),
		warning: r.NewStyle().
			Foreground(ColorWarning),
		err: r.NewStyle().
			Bold(true).
			Foreground(ColorError),
		handle: r.NewStyle().
			Foreground(ColorHighlight),
		value: r.NewStyle(),
	}
}
