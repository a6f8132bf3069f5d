package services

import "pocket-reminders/models"

// ListRepository defines the interface for list data access
type ListRepository interface {
	CreateList(name, color, icon string) (int64, error)
	GetLists() ([]models.List, error)
	GetListByID(id int64) (*models.List, error)
	UpdateListByID(id int64, name string, color, icon *string) (bool, error)
	DeleteListByID(id int64) (bool, error)
}

// ReminderRepository defines the interface for reminder data access
type ReminderRepository interface {
	CreateReminder(reminder *models.Reminder) (int64, error)
	CreateReminderWithSubtasks(reminder *models.Reminder, subtaskTitles []string) (int64, error)
	GetAllReminders() ([]models.Reminder, error)
	GetRemindersByListID(listID int64) ([]models.Reminder, error)
	GetReminderByID(id int64) (*models.Reminder, error)
	UpdateReminder(reminder *models.Reminder) (bool, error)
	DeleteReminderByID(id int64) (bool, error)
	MarkReminderDone(id int64) (bool, error)
	MarkReminderFlagged(id int64) (bool, error)
	GetIncompleteReminders() ([]models.Reminder, error)
	GetIncompleteRemindersByListID(listID int64) ([]models.Reminder, error)
	GetCompletedReminders() ([]models.Reminder, error)
	GetFlaggedReminders() ([]models.Reminder, error)
	GetScheduledReminders() ([]models.Reminder, error)
	CountIncompleteRemindersByListID(listID int64) (int, error)
	CountIncompleteReminders() (int, error)
	CountCompletedReminders() (int, error)
	CountFlaggedReminders() (int, error)
}

// SubReminderRepository defines the interface for sub-reminder data access
type SubReminderRepository interface {
	CreateSubReminder(parentID int64, title string) (int64, error)
	GetSubReminders(parentID int64) ([]models.SubReminder, error)
	UpdateSubReminderByID(id int64, title string) (bool, error)
	DeleteSubReminderByID(id int64) (bool, error)
}

// NotificationScheduler defines the boundary to the notification side
// effect. Scheduling is fire-and-forget: the caller never learns whether
// delivery happened.
type NotificationScheduler interface {
	ScheduleReminder(reminder *models.Reminder)
}
