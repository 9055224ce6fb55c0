package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"hifztrack/internal/models"
)

const (
	defaultSheet    = "Sheet1"
	WeakVersesSheet = "Weak Verses"
	MasterySheet    = "Mastery"
)

var (
	weakVersesHeader = []interface{}{"Surah", "Verse", "Errors", "Last Error", "Status", "Weak Words"}
	masteryHeader    = []interface{}{"Surah", "Verse", "Level", "Total Errors", "Drill Attempts", "Last Score", "Next Review"}
)

// ReportService builds spreadsheet progress reports
type ReportService struct {
	errors    *ErrorService
	mastery   *MasteryService
	threshold int
}

// NewReportService creates a new report service listing verses with at
// least threshold errors as weak
func NewReportService(errors *ErrorService, mastery *MasteryService, threshold int) *ReportService {
	if threshold <= 0 {
		threshold = DefaultWeakThreshold
	}
	return &ReportService{errors: errors, mastery: mastery, threshold: threshold}
}

// Build assembles the workbook. The caller closes it.
func (s *ReportService) Build() (*excelize.File, error) {
	weak, err := s.errors.WeakVerses(s.threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to load weak verses: %w", err)
	}
	statuses, err := s.errors.AllVerseStatuses()
	if err != nil {
		return nil, fmt.Errorf("failed to load verse statuses: %w", err)
	}
	records, err := s.mastery.Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load mastery records: %w", err)
	}

	f := excelize.NewFile()
	f.SetSheetName(defaultSheet, WeakVersesSheet)
	if _, err := f.NewSheet(MasterySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeWeakVerses(f, weak, statuses); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeMastery(f, records); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteTo writes the report as an xlsx workbook to w
func (s *ReportService) WriteTo(w io.Writer) error {
	f, err := s.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Save writes the report to path
func (s *ReportService) Save(path string) error {
	f, err := s.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeWeakVerses(f *excelize.File, weak []models.AyahErrorSummary, statuses map[models.AyahKey]models.WordErrorStatus) error {
	rows := make([][]interface{}, 0, len(weak))
	for _, summary := range weak {
		rows = append(rows, []interface{}{
			summary.SurahNumber,
			summary.VerseNumber,
			summary.TotalErrorCount,
			summary.LastErrorTimestamp.UTC().Format(models.DateLayout),
			string(statuses[summary.Key()]),
			weakWordList(summary.PerWordErrorCounts),
		})
	}
	return writeSheet(f, WeakVersesSheet, weakVersesHeader, rows)
}

func writeMastery(f *excelize.File, records []models.AyahMastery) error {
	rows := make([][]interface{}, 0, len(records))
	for _, m := range records {
		lastScore := ""
		if m.LastDrillScore != nil {
			lastScore = strconv.Itoa(*m.LastDrillScore)
		}
		rows = append(rows, []interface{}{
			m.SurahNumber,
			m.VerseNumber,
			string(m.Level),
			m.TotalErrors,
			m.DrillAttempts,
			lastScore,
			m.NextReviewDate,
		})
	}
	return writeSheet(f, MasterySheet, masteryHeader, rows)
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// weakWordList renders per-word counts as "index:count" pairs, worst first
func weakWordList(counts map[int]int) string {
	parts := make([]string, 0, len(counts))
	for _, idx := range sortedWordIndices(counts) {
		parts = append(parts, fmt.Sprintf("%d:%d", idx, counts[idx]))
	}
	return strings.Join(parts, ", ")
}
