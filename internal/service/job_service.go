package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"lifehub/internal/repository"
)

type JobService struct {
	Repo   *repository.JobRepository
	Sender *SenderService
}

func NewJobService(repo *repository.JobRepository, sender *SenderService) *JobService {
	return &JobService{Repo: repo, Sender: sender}
}

// CompletePastEvents marks confirmed events whose end time has passed as
// completed.
func (s *JobService) CompletePastEvents(ctx context.Context) error {
	log.Println("Cron Job: Checking for events to mark as 'completed'...")

	eventIDs, err := s.Repo.GetConfirmedEventIDsPastEnd(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed events past end time: %w", err)
	}

	if len(eventIDs) == 0 {
		log.Println("Cron Job: No confirmed events found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d events to mark as 'completed'. IDs: %v", len(eventIDs), eventIDs)

	if err := s.Repo.UpdateEventStatuses(ctx, eventIDs, statusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to update event statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d events to 'completed'.", len(eventIDs))
	return nil
}

// SendUpcomingReminders emails and texts owners of events starting within the
// next hour, once per event.
func (s *JobService) SendUpcomingReminders(ctx context.Context) error {
	infos, err := s.Repo.GetEventsNeedingReminder(ctx, time.Now().UTC().Add(time.Hour))
	if err != nil {
		return fmt.Errorf("cron job: failed to get events needing reminder: %w", err)
	}
	if len(infos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		s.Sender.SendEventReminderEmail(info)
		s.Sender.SendEventReminderSMS(info)
		ids = append(ids, info.Event.ID)
	}

	if err := s.Repo.MarkRemindersSent(ctx, ids); err != nil {
		return fmt.Errorf("cron job: failed to mark reminders sent: %w", err)
	}
	log.Printf("Cron Job: sent reminders for %d events.", len(ids))
	return nil
}

// FlagOverdueTasks flips pending tasks past their due time to 'overdue'.
func (s *JobService) FlagOverdueTasks(ctx context.Context) error {
	n, err := s.Repo.MarkOverdueTasks(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to mark overdue tasks: %w", err)
	}
	if n > 0 {
		log.Printf("Cron Job: marked %d tasks overdue.", n)
	}
	return nil
}
