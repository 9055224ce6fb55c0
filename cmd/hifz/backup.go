package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"hifztrack/internal/service"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import all progress data as JSON",
	}
	cmd.AddCommand(newBackupExportCmd(a), newBackupImportCmd(a))
	return cmd
}

func newBackupExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = service.BackupFileName(time.Now())
			}

			dir := filepath.Dir(output)
			if dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}

			if err := a.backup.Export(output); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if info, err := os.Stat(output); err == nil {
				log.Printf("Export complete! File size: %.2f KB", float64(info.Size())/1024)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Output file path (default: hifz-backup-YYYY-MM-DD.json)")
	return cmd
}

func newBackupImportCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore data from a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("input file does not exist: %s", input)
			}
			if err := a.backup.Import(input); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Backup file to import")
	return cmd
}
