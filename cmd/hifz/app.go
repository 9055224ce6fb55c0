package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"hifztrack/internal/config"
	"hifztrack/internal/database"
	"hifztrack/internal/repository"
	"hifztrack/internal/service"
	"hifztrack/internal/ui"
)

// app holds the services shared by every command
type app struct {
	cfg     *config.Config
	db      *database.DB
	store   *repository.BlobRepository
	errors  *service.ErrorService
	mastery *service.MasteryService
	review  *service.ReviewService
	backup  *service.BackupService
	report  *service.ReportService
	palette ui.Palette
	out     io.Writer
}

func (a *app) open(cmd *cobra.Command) error {
	a.cfg = config.Load()
	a.out = cmd.OutOrStdout()
	a.palette = ui.DefaultPalette()

	db, err := database.InitializeWithConfig(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.RunMigrations(a.cfg.MigrationsPath); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.db = db

	a.store = repository.NewBlobRepository(db)
	a.errors = service.NewErrorService(repository.NewErrorLogRepository(a.store))
	a.mastery = service.NewMasteryService(repository.NewMasteryRepository(a.store), a.errors)
	a.review = service.NewReviewService(repository.NewFarReviewRepository(a.store))
	a.backup = service.NewBackupService(a.store)
	a.report = service.NewReportService(a.errors, a.mastery, a.cfg.WeakThreshold)
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
	a.db = nil
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "hifz",
		Short:        "Track Quran memorization: recitation checks, weak verses and reviews",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	root.AddCommand(
		newCompareCmd(a),
		newErrorsCmd(a),
		newDrillCmd(a),
		newMasteryCmd(a),
		newReviewCmd(a),
		newBackupCmd(a),
		newReportCmd(a),
		newRemindCmd(a),
	)
	return root
}
