package services

import "pocket-reminders/models"

// SubtaskService handles business logic for sub-reminders
type SubtaskService struct {
	repo      SubReminderRepository
	reminders ReminderRepository
}

func NewSubtaskService(repo SubReminderRepository, reminders ReminderRepository) *SubtaskService {
	return &SubtaskService{
		repo:      repo,
		reminders: reminders,
	}
}

// ListByParent retrieves all sub-reminders for a reminder
func (ss *SubtaskService) ListByParent(parentID int64) ([]models.SubReminder, error) {
	return ss.repo.GetSubReminders(parentID)
}

// Create adds a sub-reminder under an existing parent reminder. The parent
// must exist at creation time; afterwards the reference is soft.
func (ss *SubtaskService) Create(parentID int64, title string) (*models.SubReminder, error) {
	parent, err := ss.reminders.GetReminderByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrReminderNotFound
	}

	id, err := ss.repo.CreateSubReminder(parentID, title)
	if err != nil {
		return nil, err
	}

	return &models.SubReminder{ID: id, ParentID: parentID, Title: title}, nil
}

// Update rewrites a sub-reminder's title
func (ss *SubtaskService) Update(id int64, title string) error {
	updated, err := ss.repo.UpdateSubReminderByID(id, title)
	if err != nil {
		return err
	}
	if !updated {
		return ErrSubReminderNotFound
	}
	return nil
}

// Delete removes a single sub-reminder
func (ss *SubtaskService) Delete(id int64) error {
	deleted, err := ss.repo.DeleteSubReminderByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSubReminderNotFound
	}
	return nil
}
