package main

import (
	"github.com/spf13/cobra"

	"hifztrack/internal/arabic"
	"hifztrack/internal/recitation"
	"hifztrack/internal/service"
	"hifztrack/internal/validation"
)

const defaultPassScore = 80

type verseFlags struct {
	surah int
	verse int
}

func (v *verseFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&v.surah, "surah", 0, "Surah number")
	cmd.Flags().IntVar(&v.verse, "verse", 0, "Verse number within the surah")
}

func (v *verseFlags) validate() error {
	return validation.ValidateAyah(v.surah, v.verse)
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		vf       verseFlags
		text     string
		input    string
		session  string
		pass     int
		noRecord bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a recitation against the verse text and log the mistakes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vf.validate(); err != nil {
				return err
			}
			if err := validation.ValidateVerseText("text", text); err != nil {
				return err
			}

			result := recitation.CompareTexts(text, input)
			a.printf("Score: %s (%d/%d words)\n", a.palette.RenderScore(result.Score, pass), result.CorrectWords, result.TotalWords)

			for _, m := range result.Errors {
				switch {
				case m.ExpectedWord != "" && m.ActualWord != "":
					a.printf("  %-12s word %d: expected %q, got %q\n", m.Kind, m.WordIndex, m.ExpectedWord, m.ActualWord)
				case m.ExpectedWord != "":
					a.printf("  %-12s word %d: missing %q\n", m.Kind, m.WordIndex, m.ExpectedWord)
				default:
					a.printf("  %-12s word %d: extra %q\n", m.Kind, m.WordIndex, m.ActualWord)
				}
			}

			if noRecord {
				return nil
			}
			if session == "" {
				session = service.NewSessionID()
			}
			entries, err := a.errors.RecordComparison(session, vf.surah, vf.verse, result)
			if err != nil {
				return err
			}

			statuses, err := a.errors.WordStatuses(vf.surah, vf.verse)
			if err != nil {
				return err
			}
			a.printf("%s\n", a.palette.RenderVerse(arabic.SplitWords(arabic.CleanText(text)), statuses))
			a.printf("%s\n", a.palette.Dim.Render("session "+session+", "+pluralize(len(entries), "error")+" logged"))
			return nil
		},
	}

	vf.register(cmd)
	cmd.Flags().StringVar(&text, "text", "", "Canonical verse text")
	cmd.Flags().StringVar(&input, "input", "", "What was recited")
	cmd.Flags().StringVar(&session, "session", "", "Session id to group errors under (default: new id)")
	cmd.Flags().IntVar(&pass, "pass", defaultPassScore, "Score needed to pass")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not log the mistakes")
	return cmd
}
