package notify

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pocket-reminders/models"
)

// Reminders past due by more than this are skipped rather than delivered,
// so a restart does not replay old notifications.
const deliveryGrace = time.Hour

// ReminderSource provides the scheduled reminders the scheduler polls.
type ReminderSource interface {
	GetScheduledReminders() ([]models.Reminder, error)
}

// Scheduler polls the store for incomplete reminders whose date and time
// have arrived and delivers each at most once per process lifetime.
type Scheduler struct {
	source   ReminderSource
	notifier Notifier
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	running  bool
	fired    map[int64]struct{}
	stopChan chan struct{}
	wakeChan chan struct{}

	now func() time.Time
}

func NewScheduler(source ReminderSource, notifier Notifier, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		source:   source,
		notifier: notifier,
		interval: interval,
		logger:   logger,
		fired:    make(map[int64]struct{}),
		stopChan: make(chan struct{}),
		wakeChan: make(chan struct{}, 1),
		now:      time.Now,
	}
}

// Start begins the background delivery loop
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("notification scheduler started", "interval", s.interval)

	go s.run()
}

// Stop gracefully stops the delivery loop
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stopChan)
	s.running = false
}

// ScheduleReminder nudges the loop to re-poll so a freshly created reminder
// with an imminent trigger is not delayed by a full interval. The reminder
// itself is read back from the store at delivery time.
func (s *Scheduler) ScheduleReminder(reminder *models.Reminder) {
	select {
	case s.wakeChan <- struct{}{}:
	default:
	}
}

func (s *Scheduler) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.deliverDue()

	for {
		select {
		case <-ticker.C:
			s.deliverDue()
		case <-s.wakeChan:
			s.deliverDue()
		case <-s.stopChan:
			return
		}
	}
}

func (s *Scheduler) deliverDue() {
	reminders, err := s.source.GetScheduledReminders()
	if err != nil {
		s.logger.Warn("notification scheduler poll failed", "error", err)
		return
	}

	now := s.now()
	for _, reminder := range reminders {
		if reminder.Date == nil || reminder.Time == nil {
			continue
		}

		trigger, err := TriggerTime(*reminder.Date, *reminder.Time)
		if err != nil {
			continue
		}
		if trigger.After(now) || now.Sub(trigger) > deliveryGrace {
			continue
		}

		s.mu.Lock()
		_, already := s.fired[reminder.ID]
		if !already {
			s.fired[reminder.ID] = struct{}{}
		}
		s.mu.Unlock()
		if already {
			continue
		}

		n := Notification{
			Title: notificationTitle(reminder.Title),
			Body:  notificationBody(reminder.Note),
			At:    trigger,
		}
		if err := s.notifier.Notify(n); err != nil {
			s.logger.Warn("notification delivery failed",
				"reminder_id", reminder.ID,
				"error", err,
			)
		}
	}
}

// TriggerTime computes the delivery moment from the persisted date
// (YYYY-MM-DD) and time (HH:MM), in local time with seconds zeroed.
func TriggerTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", date, clock), time.Local)
}

func notificationTitle(title string) string {
	if title == "" {
		title = "Reminder"
	}
	return "🔔 " + title
}

func notificationBody(note string) string {
	if note == "" {
		return "This is your scheduled notification."
	}
	return note
}
