package main

import (
	"github.com/spf13/cobra"

	"hifztrack/internal/models"
	"hifztrack/internal/quran"
	"hifztrack/internal/service"
	"hifztrack/internal/validation"
)

func newReviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Far review of completed sections (juz)",
	}
	cmd.AddCommand(newReviewNextCmd(a), newReviewLogCmd(a))
	return cmd
}

func newReviewNextCmd(a *app) *cobra.Command {
	var (
		sections []int
		verses   []string
	)
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Pick the section to review next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range sections {
				if err := validation.ValidateSection(s); err != nil {
					return err
				}
			}
			completed := append([]int{}, sections...)
			keys := make([]models.AyahKey, 0, len(verses))
			for _, v := range verses {
				key, err := models.ParseAyahKey(v)
				if err != nil {
					return err
				}
				keys = append(keys, key)
			}
			completed = append(completed, service.CompletedSections(keys)...)

			section, ok, err := a.review.NextFarReview(completed)
			if err != nil {
				return err
			}
			if !ok {
				a.printf("No completed sections to review\n")
				return nil
			}

			b := quran.Boundaries()[section-1]
			a.printf("Review juz %d (%s to %s)\n", section, b.Start, b.End)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sections, "sections", nil, "Completed juz numbers")
	cmd.Flags().StringSliceVar(&verses, "verses", nil, "Completed verses as surah:verse")
	return cmd
}

func newReviewLogCmd(a *app) *cobra.Command {
	var section, score int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a far review of a section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateSection(section); err != nil {
				return err
			}
			if err := validation.ValidateScore(score); err != nil {
				return err
			}
			entry, err := a.review.LogFarReview(section, score)
			if err != nil {
				return err
			}
			a.printf("juz %d running average %d\n", entry.Section, entry.RunningAverageScore)
			return nil
		},
	}
	cmd.Flags().IntVar(&section, "section", 0, "Juz number")
	cmd.Flags().IntVar(&score, "score", 0, "Review score (0-100)")
	return cmd
}
