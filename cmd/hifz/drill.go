package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hifztrack/internal/models"
	"hifztrack/internal/ui"
	"hifztrack/internal/validation"
)

func newDrillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Record drills and pick verses to drill",
	}
	cmd.AddCommand(newDrillRecordCmd(a), newDrillWeakestCmd(a))
	return cmd
}

func newDrillRecordCmd(a *app) *cobra.Command {
	var (
		vf         verseFlags
		score      int
		errorCount int
	)
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the result of drilling a verse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vf.validate(); err != nil {
				return err
			}
			if err := validation.ValidateScore(score); err != nil {
				return err
			}
			outcome, err := a.mastery.RecordDrill(vf.surah, vf.verse, score, errorCount)
			if err != nil {
				return err
			}
			a.printf("%d:%d %s -> %s\n", vf.surah, vf.verse,
				a.palette.RenderLevel(outcome.Previous), a.palette.RenderLevel(outcome.New))
			return nil
		},
	}
	vf.register(cmd)
	cmd.Flags().IntVar(&score, "score", 0, "Drill score (0-100)")
	cmd.Flags().IntVar(&errorCount, "errors", 0, "Mistakes made during the drill")
	return cmd
}

func printMastery(w io.Writer, p ui.Palette, records []models.AyahMastery) {
	if len(records) == 0 {
		fmt.Fprintln(w, "Nothing to review")
		return
	}
	for _, m := range records {
		next := m.NextReviewDate
		if next == "" {
			next = "-"
		}
		fmt.Fprintf(w, "%-8s %-11s %s  next %s\n", m.Key(), p.RenderLevel(m.Level), pluralize(m.TotalErrors, "error"), next)
	}
}

func newDrillWeakestCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "weakest",
		Short: "Verses most in need of a drill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.DrillCount
			}
			records, err := a.mastery.WeakestForDrill(count)
			if err != nil {
				return err
			}
			printMastery(a.out, a.palette, records)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "How many verses (default from HIFZ_DRILL_COUNT)")
	return cmd
}
