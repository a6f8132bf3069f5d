package database

import "pocket-reminders/models"

// ==================== SUB-REMINDER OPERATIONS ====================

func (r *Repository) CreateSubReminder(parentID int64, title string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO sub_reminders (parent_id, title) VALUES (?, ?)
	`, parentID, title)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetSubReminders returns all sub-reminders for a parent. Orphans from a
// deleted parent are still returned; deletion does not cascade.
func (r *Repository) GetSubReminders(parentID int64) ([]models.SubReminder, error) {
	rows, err := r.db.Query(`
		SELECT id, parent_id, title, isDone
		FROM sub_reminders
		WHERE parent_id = ?
	`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]models.SubReminder, 0)
	for rows.Next() {
		var sub models.SubReminder
		var isDone int
		if err := rows.Scan(&sub.ID, &sub.ParentID, &sub.Title, &isDone); err != nil {
			return nil, err
		}
		sub.IsDone = isDone == 1
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

func (r *Repository) UpdateSubReminderByID(id int64, title string) (bool, error) {
	result, err := r.db.Exec(`
		UPDATE sub_reminders SET title = ? WHERE id = ?
	`, title, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) DeleteSubReminderByID(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM sub_reminders WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
