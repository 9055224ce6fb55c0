package service

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"hifztrack/internal/models"
)

func TestReportWorkbook(t *testing.T) {
	f := newMasteryFixture(t)
	var entries []models.ErrorLogEntry
	for i := 0; i < 3; i++ {
		entries = append(entries, entry(2, 255, 4, baseTime, models.KindDeletion))
	}
	entries = append(entries, entry(2, 255, 1, baseTime, models.KindSubstitution))
	entries = append(entries, entry(1, 5, 0, baseTime, models.KindDeletion))
	if err := f.errors.Append(entries); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := f.mastery.RecordDrill(1, 5, 93, 0); err != nil {
		t.Fatalf("RecordDrill failed: %v", err)
	}

	report := NewReportService(f.errors, f.mastery, 0)
	var buf bytes.Buffer
	if err := report.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	wb, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 2 || sheets[0] != WeakVersesSheet || sheets[1] != MasterySheet {
		t.Fatalf("sheets = %v", sheets)
	}

	weak, err := wb.GetRows(WeakVersesSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(weak) != 2 {
		t.Fatalf("expected header and one weak verse, got %v", weak)
	}
	want := []string{"2", "255", "4", "2026-03-20", "repeated", "4:3, 1:1"}
	for i, cell := range want {
		if weak[1][i] != cell {
			t.Errorf("weak verse column %d = %q, want %q", i, weak[1][i], cell)
		}
	}

	mastery, err := wb.GetRows(MasterySheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(mastery) != 3 {
		t.Fatalf("expected header and two records, got %v", mastery)
	}
	// new verses sort ahead of mastered ones
	if mastery[1][2] != "new" || mastery[2][2] != "mastered" || mastery[2][5] != "93" {
		t.Errorf("unexpected mastery rows: %v", mastery[1:])
	}
}

func TestWeakWordList(t *testing.T) {
	tests := []struct {
		name   string
		counts map[int]int
		want   string
	}{
		{name: "empty", counts: map[int]int{}, want: ""},
		{name: "ties by index", counts: map[int]int{3: 1, 1: 1}, want: "1:1, 3:1"},
		{name: "worst first", counts: map[int]int{0: 1, 7: 4}, want: "7:4, 0:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weakWordList(tt.counts); got != tt.want {
				t.Errorf("weakWordList = %q, want %q", got, tt.want)
			}
		})
	}
}
