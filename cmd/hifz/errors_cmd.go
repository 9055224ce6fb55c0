package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"hifztrack/internal/arabic"
	"hifztrack/internal/models"
)

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func newErrorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Inspect the recitation error log",
	}
	cmd.AddCommand(
		newErrorsSummaryCmd(a),
		newErrorsWeakCmd(a),
		newErrorsStatusCmd(a),
		newErrorsClearCmd(a),
		newErrorsTrendsCmd(a),
		newErrorsBreakdownCmd(a),
	)
	return cmd
}

func printSummaries(a *app, summaries []models.AyahErrorSummary) {
	if len(summaries) == 0 {
		a.printf("No errors logged\n")
		return
	}
	for _, s := range summaries {
		a.printf("%-8s %s  last %s\n",
			s.Key(),
			pluralize(s.TotalErrorCount, "error"),
			s.LastErrorTimestamp.UTC().Format(models.DateLayout))
	}
}

func newErrorsSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Error counts per verse, most errors first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := a.errors.Summaries()
			if err != nil {
				return err
			}
			printSummaries(a, summaries)
			return nil
		},
	}
}

func newErrorsWeakCmd(a *app) *cobra.Command {
	var minErrors int
	cmd := &cobra.Command{
		Use:   "weak",
		Short: "Verses with repeated mistakes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min") {
				minErrors = a.cfg.WeakThreshold
			}
			weak, err := a.errors.WeakVerses(minErrors)
			if err != nil {
				return err
			}
			printSummaries(a, weak)
			return nil
		},
	}
	cmd.Flags().IntVar(&minErrors, "min", 0, "Minimum error count (default from HIFZ_WEAK_THRESHOLD)")
	return cmd
}

func newErrorsStatusCmd(a *app) *cobra.Command {
	var (
		vf   verseFlags
		text string
	)
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Per-word error status of a verse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vf.validate(); err != nil {
				return err
			}
			statuses, err := a.errors.WordStatuses(vf.surah, vf.verse)
			if err != nil {
				return err
			}
			verseStatus, err := a.errors.VerseStatus(vf.surah, vf.verse)
			if err != nil {
				return err
			}

			a.printf("%d:%d is %s\n", vf.surah, vf.verse, a.palette.ForStatus(verseStatus).Render(string(verseStatus)))
			if text != "" {
				a.printf("%s\n", a.palette.RenderVerse(arabic.SplitWords(arabic.CleanText(text)), statuses))
				return nil
			}

			indices := make([]int, 0, len(statuses))
			for idx := range statuses {
				indices = append(indices, idx)
			}
			sort.Ints(indices)
			for _, idx := range indices {
				a.printf("  word %d: %s\n", idx, a.palette.ForStatus(statuses[idx]).Render(string(statuses[idx])))
			}
			return nil
		},
	}
	vf.register(cmd)
	cmd.Flags().StringVar(&text, "text", "", "Verse text to render with colour-coded words")
	return cmd
}

func newErrorsClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every logged error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear the error log without --yes")
			}
			if err := a.errors.Clear(); err != nil {
				return err
			}
			a.printf("Error log cleared\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing the log")
	return cmd
}

func newErrorsTrendsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Errors per week over the last eight weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := a.errors.Trends()
			if err != nil {
				return err
			}
			for _, w := range weeks {
				a.printf("%-6s %4d %s\n", w.WeekLabel, w.ErrorCount, strings.Repeat("#", w.ErrorCount))
			}
			return nil
		},
	}
}

func newErrorsBreakdownCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Errors per kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.errors.TypeBreakdown()
			if err != nil {
				return err
			}
			a.printf("substitution %d\ndeletion     %d\naddition     %d\n", b.Substitution, b.Deletion, b.Addition)
			return nil
		},
	}
}
