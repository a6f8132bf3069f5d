package app

import (
	"log/slog"

	"pocket-reminders/database"
	"pocket-reminders/services"
	"pocket-reminders/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Lists     *services.ListService
	Reminders *services.ReminderService
	Subtasks  *services.SubtaskService
	Views     *services.ViewService
	Gate      *database.Gate
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, scheduler services.NotificationScheduler, gate *database.Gate, logger *slog.Logger) *App {
	return &App{
		Lists:     services.NewListService(repo),
		Reminders: services.NewReminderService(repo, scheduler),
		Subtasks:  services.NewSubtaskService(repo, repo),
		Views:     services.NewViewService(repo),
		Gate:      gate,
		Validator: validator.New(),
		Logger:    logger,
	}
}
