package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hifztrack/internal/models"
	"hifztrack/internal/service"
	"hifztrack/internal/ui"
	"hifztrack/internal/validation"
)

// terminalNotifier prints the due list
type terminalNotifier struct {
	out     io.Writer
	palette ui.Palette
}

func (n terminalNotifier) NotifyDue(due []models.AyahMastery) error {
	if _, err := fmt.Fprintln(n.out, n.palette.Title.Render(pluralize(len(due), "verse")+" due for review")); err != nil {
		return err
	}
	printMastery(n.out, n.palette, due)
	return nil
}

func newRemindCmd(a *app) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print the verses due for review every day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateTimeOfDay("HIFZ_REMINDER_TIME", a.cfg.ReminderTime); err != nil {
				return err
			}
			notifier := terminalNotifier{out: a.out, palette: a.palette}
			reminder := service.NewReminderService(a.mastery, notifier, a.cfg.ReminderTime)

			if once {
				count, err := reminder.RunNow()
				if err != nil {
					return err
				}
				if count == 0 {
					a.printf("Nothing due for review\n")
				}
				return nil
			}

			if err := reminder.Start(); err != nil {
				return err
			}
			defer reminder.Stop()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Check once and exit instead of scheduling")
	return cmd
}
