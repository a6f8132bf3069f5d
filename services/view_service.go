package services

import (
	"time"

	"pocket-reminders/models"
)

// ViewService compiles the curated views: Today, Scheduled, All, Flagged,
// Completed, and the badge counts for the tile screen.
type ViewService struct {
	repo ReminderRepository
	now  func() time.Time
}

func NewViewService(repo ReminderRepository) *ViewService {
	return &ViewService{
		repo: repo,
		now:  time.Now,
	}
}

// Today returns incomplete reminders scheduled for the current date.
func (vs *ViewService) Today() ([]models.Reminder, error) {
	scheduled, err := vs.repo.GetScheduledReminders()
	if err != nil {
		return nil, err
	}

	today := vs.now().Format("2006-01-02")
	reminders := make([]models.Reminder, 0)
	for _, reminder := range scheduled {
		if reminder.Date != nil && *reminder.Date == today {
			reminders = append(reminders, reminder)
		}
	}
	return reminders, nil
}

// Scheduled returns incomplete reminders with a date, soonest first.
func (vs *ViewService) Scheduled() ([]models.Reminder, error) {
	return vs.repo.GetScheduledReminders()
}

// All returns every incomplete reminder.
func (vs *ViewService) All() ([]models.Reminder, error) {
	return vs.repo.GetIncompleteReminders()
}

func (vs *ViewService) Flagged() ([]models.Reminder, error) {
	return vs.repo.GetFlaggedReminders()
}

func (vs *ViewService) Completed() ([]models.Reminder, error) {
	return vs.repo.GetCompletedReminders()
}

// Counts compiles the tile badge numbers. All, flagged and completed come
// from dedicated count queries; today and scheduled are view-level filters.
func (vs *ViewService) Counts() (*models.ViewCounts, error) {
	counts := &models.ViewCounts{}

	all, err := vs.repo.CountIncompleteReminders()
	if err != nil {
		return nil, err
	}
	counts.All = all

	flagged, err := vs.repo.CountFlaggedReminders()
	if err != nil {
		return nil, err
	}
	counts.Flagged = flagged

	completed, err := vs.repo.CountCompletedReminders()
	if err != nil {
		return nil, err
	}
	counts.Completed = completed

	scheduled, err := vs.repo.GetScheduledReminders()
	if err != nil {
		return nil, err
	}
	counts.Scheduled = len(scheduled)

	today := vs.now().Format("2006-01-02")
	for _, reminder := range scheduled {
		if reminder.Date != nil && *reminder.Date == today {
			counts.Today++
		}
	}

	return counts, nil
}
