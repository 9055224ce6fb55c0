// Package ui renders verses for the terminal with each word coloured by its error status.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hifztrack/internal/models"
)

// Colors matching the word status colours.
var (
	ColorRed    = lipgloss.Color("#FF0000")
	ColorYellow = lipgloss.Color("#FFFF00")
	ColorOrange = lipgloss.Color("#FFA500")
	ColorGreen  = lipgloss.Color("#00FF00")
	ColorCyan   = lipgloss.Color("#00FFFF")
	ColorGray   = lipgloss.Color("#666666")
)

// Palette holds the styles used for CLI output
type Palette struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Good      lipgloss.Style
	Repeated  lipgloss.Style
	Single    lipgloss.Style
	Corrected lipgloss.Style
	Plain     lipgloss.Style
}

// NewPalette builds the styles on the given renderer
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Title: r.NewStyle().
			Bold(true).
			Foreground(ColorCyan),
		Dim: r.NewStyle().
			Foreground(ColorGray),
		Good: r.NewStyle().
			Foreground(ColorGreen),
		Repeated: r.NewStyle().
			Foreground(ColorRed).
			Bold(true),
		Single: r.NewStyle().
			Foreground(ColorYellow),
		Corrected: r.NewStyle().
			Foreground(ColorOrange),
		Plain: r.NewStyle(),
	}
}

// DefaultPalette renders to stdout
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// ForStatus returns the style for a word status
func (p Palette) ForStatus(status models.WordErrorStatus) lipgloss.Style {
	switch status {
	case models.StatusRepeated:
		return p.Repeated
	case models.StatusSingle:
		return p.Single
	case models.StatusCorrected:
		return p.Corrected
	default:
		return p.Plain
	}
}

// RenderVerse joins the words of a verse, styling each by its index in statuses
func (p Palette) RenderVerse(words []string, statuses map[int]models.WordErrorStatus) string {
	rendered := make([]string, len(words))
	for i, w := range words {
		rendered[i] = p.ForStatus(statuses[i]).Render(w)
	}
	return strings.Join(rendered, " ")
}

// RenderLevel styles a mastery level
func (p Palette) RenderLevel(level models.MasteryLevel) string {
	switch level {
	case models.LevelMastered:
		return p.Good.Render(string(level))
	case models.LevelPracticing:
		return p.Single.Render(string(level))
	default:
		return p.Dim.Render(string(level))
	}
}

// RenderScore colours a score green when it passes the threshold and red otherwise
func (p Palette) RenderScore(score, threshold int) string {
	style := p.Repeated
	if score >= threshold {
		style = p.Good
	}
	return style.Render(strconv.Itoa(score) + "%")
}
