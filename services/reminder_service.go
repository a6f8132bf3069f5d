package services

import "pocket-reminders/models"

// ReminderService handles business logic for reminders
type ReminderService struct {
	repo      ReminderRepository
	scheduler NotificationScheduler
}

func NewReminderService(repo ReminderRepository, scheduler NotificationScheduler) *ReminderService {
	return &ReminderService{
		repo:      repo,
		scheduler: scheduler,
	}
}

func reminderFromCreateRequest(req *models.CreateReminderRequest) *models.Reminder {
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNone
	}
	return &models.Reminder{
		ListID:        req.ListID,
		Title:         req.Title,
		Note:          req.Note,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Priority:      priority,
		Flag:          req.Flag,
		WhenMessaging: req.WhenMessaging,
		ImageURI:      req.ImageURI,
		URL:           req.URL,
	}
}

// Create inserts a reminder together with its initial subtasks in one
// transaction, then hands the persisted record to the notification
// scheduler when both date and time are set.
func (rs *ReminderService) Create(req *models.CreateReminderRequest) (*models.Reminder, error) {
	reminder := reminderFromCreateRequest(req)

	var id int64
	var err error
	if len(req.Subtasks) > 0 {
		id, err = rs.repo.CreateReminderWithSubtasks(reminder, req.Subtasks)
	} else {
		id, err = rs.repo.CreateReminder(reminder)
	}
	if err != nil {
		return nil, err
	}

	created, err := rs.repo.GetReminderByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		reminder.ID = id
		created = reminder
	}

	if rs.scheduler != nil && created.Date != nil && created.Time != nil {
		rs.scheduler.ScheduleReminder(created)
	}

	return created, nil
}

// Get retrieves a single reminder by id
func (rs *ReminderService) Get(id int64) (*models.Reminder, error) {
	reminder, err := rs.repo.GetReminderByID(id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	return reminder, nil
}

// List retrieves all reminders
func (rs *ReminderService) List() ([]models.Reminder, error) {
	return rs.repo.GetAllReminders()
}

// ListByList retrieves reminders for a list, optionally only incomplete ones
func (rs *ReminderService) ListByList(listID int64, incompleteOnly bool) ([]models.Reminder, error) {
	if incompleteOnly {
		return rs.repo.GetIncompleteRemindersByListID(listID)
	}
	return rs.repo.GetRemindersByListID(listID)
}

// CountIncompleteByList returns the badge count for a list tile
func (rs *ReminderService) CountIncompleteByList(listID int64) (int, error) {
	return rs.repo.CountIncompleteRemindersByListID(listID)
}

// Update rewrites every field of the reminder row.
func (rs *ReminderService) Update(id int64, req *models.UpdateReminderRequest) (*models.Reminder, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNone
	}
	reminder := &models.Reminder{
		ID:            id,
		ListID:        req.ListID,
		Title:         req.Title,
		Note:          req.Note,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Priority:      priority,
		Flag:          req.Flag,
		WhenMessaging: req.WhenMessaging,
		ImageURI:      req.ImageURI,
		URL:           req.URL,
		IsCompleted:   req.IsCompleted,
	}

	updated, err := rs.repo.UpdateReminder(reminder)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrReminderNotFound
	}

	return rs.Get(id)
}

// Delete removes a reminder. Its sub-reminders are left orphaned.
func (rs *ReminderService) Delete(id int64) error {
	deleted, err := rs.repo.DeleteReminderByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReminderNotFound
	}
	return nil
}

// MarkDone completes a reminder. Completion is one-directional.
func (rs *ReminderService) MarkDone(id int64) error {
	done, err := rs.repo.MarkReminderDone(id)
	if err != nil {
		return err
	}
	if !done {
		return ErrReminderNotFound
	}
	return nil
}

// MarkFlagged flags a reminder. Flagging is one-directional.
func (rs *ReminderService) MarkFlagged(id int64) error {
	flagged, err := rs.repo.MarkReminderFlagged(id)
	if err != nil {
		return err
	}
	if !flagged {
		return ErrReminderNotFound
	}
	return nil
}
