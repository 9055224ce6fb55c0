package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hifztrack/internal/models"
)

func newReportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an Excel progress report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = fmt.Sprintf("hifz-report-%s.xlsx", time.Now().UTC().Format(models.DateLayout))
			}
			if err := a.report.Save(output); err != nil {
				return err
			}
			a.printf("Report written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output file path (default: hifz-report-YYYY-MM-DD.xlsx)")
	return cmd
}
