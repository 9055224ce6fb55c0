package service

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"hifztrack/internal/models"
)

// DefaultReminderTime is the UTC time of day the daily reminder runs
const DefaultReminderTime = "07:00"

// Notifier delivers the list of verses due for review
type Notifier interface {
	NotifyDue(due []models.AyahMastery) error
}

// ReminderService runs a daily check for verses due for review
type ReminderService struct {
	scheduler *gocron.Scheduler
	mastery   *MasteryService
	notifier  Notifier
	at        string
}

// NewReminderService creates a reminder that fires every day at the given HH:MM (UTC)
func NewReminderService(mastery *MasteryService, notifier Notifier, at string) *ReminderService {
	if at == "" {
		at = DefaultReminderTime
	}
	return &ReminderService{
		scheduler: gocron.NewScheduler(time.UTC),
		mastery:   mastery,
		notifier:  notifier,
		at:        at,
	}
}

// Start schedules the daily job and runs the scheduler in the background
func (s *ReminderService) Start() error {
	if _, err := s.scheduler.Every(1).Day().At(s.at).Do(s.checkAndNotify); err != nil {
		return fmt.Errorf("failed to schedule reminder at %s: %w", s.at, err)
	}
	s.scheduler.StartAsync()
	log.Printf("Review reminder scheduled daily at %s UTC", s.at)
	return nil
}

// Stop terminates the scheduler
func (s *ReminderService) Stop() {
	s.scheduler.Stop()
}

// RunNow performs the due-review check immediately
func (s *ReminderService) RunNow() (int, error) {
	due, err := s.mastery.DueForReview()
	if err != nil {
		return 0, fmt.Errorf("failed to load due verses: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}
	if err := s.notifier.NotifyDue(due); err != nil {
		return 0, fmt.Errorf("failed to send reminder: %w", err)
	}
	return len(due), nil
}

func (s *ReminderService) checkAndNotify() {
	count, err := s.RunNow()
	if err != nil {
		log.Printf("Error sending review reminder: %v", err)
		return
	}
	if count > 0 {
		log.Printf("Sent review reminder for %d verses", count)
	}
}
