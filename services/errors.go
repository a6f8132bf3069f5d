package services

import "errors"

// Common service-level errors
var (
	ErrListNotFound        = errors.New("list not found")
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrSubReminderNotFound = errors.New("sub-reminder not found")
)
