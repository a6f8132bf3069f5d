package database

import (
	"database/sql"
	"pocket-reminders/models"
)

// ==================== REMINDER OPERATIONS ====================

const reminderColumns = `id, list_id, title, note, date, time, location, priority,
	flag, whenMessaging, imageUri, url, isCompleted, createdAt`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (*models.Reminder, error) {
	var reminder models.Reminder
	var listID sql.NullInt64
	var date, tm, location, imageURI, url sql.NullString
	var flag, whenMessaging, isCompleted int

	err := row.Scan(
		&reminder.ID, &listID, &reminder.Title, &reminder.Note,
		&date, &tm, &location, &reminder.Priority,
		&flag, &whenMessaging, &imageURI, &url,
		&isCompleted, &reminder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if listID.Valid {
		reminder.ListID = &listID.Int64
	}
	if date.Valid {
		reminder.Date = &date.String
	}
	if tm.Valid {
		reminder.Time = &tm.String
	}
	if location.Valid {
		reminder.Location = &location.String
	}
	if imageURI.Valid {
		reminder.ImageURI = &imageURI.String
	}
	if url.Valid {
		reminder.URL = &url.String
	}
	reminder.Flag = flag == 1
	reminder.WhenMessaging = whenMessaging == 1
	reminder.IsCompleted = isCompleted == 1

	return &reminder, nil
}

func (r *Repository) queryReminders(query string, args ...any) ([]models.Reminder, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *reminder)
	}

	return reminders, rows.Err()
}

const insertReminderQuery = `
	INSERT INTO reminders (list_id, title, note, date, time, location, priority,
		flag, whenMessaging, imageUri, url, isCompleted)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func reminderInsertArgs(reminder *models.Reminder) []any {
	return []any{
		reminder.ListID, reminder.Title, reminder.Note,
		reminder.Date, reminder.Time, reminder.Location, reminder.Priority,
		boolToInt(reminder.Flag), boolToInt(reminder.WhenMessaging),
		reminder.ImageURI, reminder.URL, boolToInt(reminder.IsCompleted),
	}
}

// CreateReminder inserts a full reminder row and returns the assigned id.
func (r *Repository) CreateReminder(reminder *models.Reminder) (int64, error) {
	result, err := r.db.Exec(insertReminderQuery, reminderInsertArgs(reminder)...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// CreateReminderWithSubtasks inserts a reminder and its initial subtasks in
// one transaction: they appear together or not at all.
func (r *Repository) CreateReminderWithSubtasks(reminder *models.Reminder, subtaskTitles []string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(insertReminderQuery, reminderInsertArgs(reminder)...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, title := range subtaskTitles {
		if _, err := tx.Exec(`
			INSERT INTO sub_reminders (parent_id, title) VALUES (?, ?)
		`, id, title); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) GetAllReminders() ([]models.Reminder, error) {
	return r.queryReminders(`SELECT ` + reminderColumns + ` FROM reminders`)
}

func (r *Repository) GetRemindersByListID(listID int64) ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT `+reminderColumns+` FROM reminders WHERE list_id = ?
	`, listID)
}

func (r *Repository) GetReminderByID(id int64) (*models.Reminder, error) {
	reminder, err := scanReminder(r.db.QueryRow(`
		SELECT `+reminderColumns+` FROM reminders WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

// UpdateReminder rewrites every column of the row keyed by reminder.ID.
func (r *Repository) UpdateReminder(reminder *models.Reminder) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE reminders SET list_id = ?, title = ?, note = ?, date = ?, time = ?,
			location = ?, priority = ?, flag = ?, whenMessaging = ?, imageUri = ?,
			url = ?, isCompleted = ?
		WHERE id = ?
	`, append(reminderInsertArgs(reminder), reminder.ID)...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteReminderByID removes the reminder row only. Sub-reminders keep their
// parent_id and are left orphaned.
func (r *Repository) DeleteReminderByID(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkReminderDone sets isCompleted only. There is no inverse operation.
func (r *Repository) MarkReminderDone(id int64) (bool, error) {
	result, err := r.db.Exec(`UPDATE reminders SET isCompleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MarkReminderFlagged sets flag only. There is no inverse operation.
func (r *Repository) MarkReminderFlagged(id int64) (bool, error) {
	result, err := r.db.Exec(`UPDATE reminders SET flag = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ==================== FILTERED FETCHES ====================

func (r *Repository) GetIncompleteReminders() ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT ` + reminderColumns + ` FROM reminders WHERE isCompleted = 0
	`)
}

func (r *Repository) GetIncompleteRemindersByListID(listID int64) ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT `+reminderColumns+` FROM reminders WHERE list_id = ? AND isCompleted = 0
	`, listID)
}

func (r *Repository) GetCompletedReminders() ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT ` + reminderColumns + ` FROM reminders WHERE isCompleted = 1
	`)
}

func (r *Repository) GetFlaggedReminders() ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT ` + reminderColumns + ` FROM reminders WHERE flag = 1
	`)
}

// GetScheduledReminders returns incomplete reminders that carry a date,
// ordered soonest first. Backs the Scheduled view and the notification
// scheduler.
func (r *Repository) GetScheduledReminders() ([]models.Reminder, error) {
	return r.queryReminders(`
		SELECT ` + reminderColumns + ` FROM reminders
		WHERE isCompleted = 0 AND date IS NOT NULL
		ORDER BY date ASC, time ASC
	`)
}

// ==================== COUNTS ====================

// Counts are independent queries rather than len() over a full fetch, so
// badge displays never transfer row data.

func (r *Repository) countReminders(query string, args ...any) (int, error) {
	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountIncompleteRemindersByListID(listID int64) (int, error) {
	return r.countReminders(`
		SELECT COUNT(*) FROM reminders WHERE list_id = ? AND isCompleted = 0
	`, listID)
}

func (r *Repository) CountIncompleteReminders() (int, error) {
	return r.countReminders(`SELECT COUNT(*) FROM reminders WHERE isCompleted = 0`)
}

func (r *Repository) CountCompletedReminders() (int, error) {
	return r.countReminders(`SELECT COUNT(*) FROM reminders WHERE isCompleted = 1`)
}

func (r *Repository) CountFlaggedReminders() (int, error) {
	return r.countReminders(`SELECT COUNT(*) FROM reminders WHERE flag = 1`)
}
