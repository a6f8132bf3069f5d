package notify

import (
	"log/slog"
	"time"
)

// Notification is what crosses the boundary to the platform notification
// service: a title, a body, and the computed trigger time.
type Notification struct {
	Title string
	Body  string
	At    time.Time
}

// Notifier delivers a notification. Delivery is fire-and-forget from the
// caller's perspective; failures are the implementation's problem to log.
type Notifier interface {
	Notify(n Notification) error
}

// LogNotifier writes notifications to the structured log. It stands in for
// a real platform notification service.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (ln *LogNotifier) Notify(n Notification) error {
	ln.logger.Info("reminder notification",
		"title", n.Title,
		"body", n.Body,
		"at", n.At,
	)
	return nil
}
