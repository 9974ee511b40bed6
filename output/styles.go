// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/cashcount/denomination"
)

var (
	indigo = lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#818CF8"}
	amber  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	green  = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#86EFAC"}
	red    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FCA5A5"}
	grey   = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"}
	cyan   = lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"}
)

// Styles provides styled output helpers for the CLI and the counter screen.
type Styles struct {
	note     lipgloss.Style
	coin     lipgloss.Style
	active   lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	dim      lipgloss.Style
	keyword  lipgloss.Style
	filePath lipgloss.Style
	box      lipgloss.Style
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)

	return &Styles{
		note:     r.NewStyle().Foreground(indigo).Bold(true),
		coin:     r.NewStyle().Foreground(amber).Bold(true),
		active:   r.NewStyle().Reverse(true).Bold(true),
		positive: r.NewStyle().Foreground(green).Bold(true),
		negative: r.NewStyle().Foreground(red).Bold(true),
		dim:      r.NewStyle().Foreground(grey),
		keyword:  r.NewStyle().Foreground(indigo).Bold(true),
		filePath: r.NewStyle().Foreground(cyan),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(indigo).
			Padding(0, 1),
	}
}

// Denomination styles a label by kind: notes indigo, coins amber.
// Active labels are rendered in reverse video.
func (s *Styles) Denomination(text string, kind denomination.Kind, active bool) string {
	style := s.note
	if kind == denomination.Coin {
		style = s.coin
	}
	if active {
		style = style.Inherit(s.active)
	}
	return style.Render(text)
}

// Net styles an amount green when covered and red when short.
func (s *Styles) Net(text string, short bool) string {
	if short {
		return s.negative.Render(text)
	}
	return s.positive.Render(text)
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.keyword.Render(text)
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.dim.Render(text)
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.filePath.Render(text)
}

// Box frames text with a rounded border.
func (s *Styles) Box(text string) string {
	return s.box.Render(text)
}
