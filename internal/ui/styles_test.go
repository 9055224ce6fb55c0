package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"hifztrack/internal/models"
)

func plainPalette() Palette {
	return NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestForStatus(t *testing.T) {
	p := plainPalette()
	tests := []struct {
		status models.WordErrorStatus
		want   lipgloss.TerminalColor
	}{
		{models.StatusRepeated, ColorRed},
		{models.StatusSingle, ColorYellow},
		{models.StatusCorrected, ColorOrange},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := p.ForStatus(tt.status).GetForeground(); got != tt.want {
				t.Errorf("ForStatus(%s) foreground = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRenderVerseWithoutColourSupport(t *testing.T) {
	p := plainPalette()
	words := []string{"بسم", "الله", "الرحمن", "الرحيم"}
	statuses := map[int]models.WordErrorStatus{2: models.StatusRepeated}

	got := p.RenderVerse(words, statuses)
	want := "بسم الله الرحمن الرحيم"
	if got != want {
		t.Errorf("RenderVerse = %q, want %q", got, want)
	}
}

func TestRenderScore(t *testing.T) {
	p := plainPalette()
	if got := p.RenderScore(75, 80); got != "75%" {
		t.Errorf("RenderScore = %q, want 75%%", got)
	}
}
