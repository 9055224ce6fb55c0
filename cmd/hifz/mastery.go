package main

import (
	"github.com/spf13/cobra"
)

func newMasteryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mastery",
		Short: "Mastery levels and the review schedule",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "due",
			Short: "Verses due for review today",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				due, err := a.mastery.DueForReview()
				if err != nil {
					return err
				}
				printMastery(a.out, a.palette, due)
				return nil
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Tracked verses per level",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				stats, err := a.mastery.Stats()
				if err != nil {
					return err
				}
				a.printf("total %d, new %d, practicing %d, mastered %d\n",
					stats.Total, stats.New, stats.Practicing, stats.Mastered)
				return nil
			},
		},
		newMasteryLevelCmd(a),
	)
	return cmd
}

func newMasteryLevelCmd(a *app) *cobra.Command {
	var vf verseFlags
	cmd := &cobra.Command{
		Use:   "level",
		Short: "Mastery level of one verse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vf.validate(); err != nil {
				return err
			}
			level, ok, err := a.mastery.Level(vf.surah, vf.verse)
			if err != nil {
				return err
			}
			if !ok {
				a.printf("%d:%d is not tracked yet\n", vf.surah, vf.verse)
				return nil
			}
			a.printf("%d:%d %s\n", vf.surah, vf.verse, a.palette.RenderLevel(level))
			return nil
		},
	}
	vf.register(cmd)
	return cmd
}
