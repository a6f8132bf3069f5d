package database

import (
	"database/sql"
	"pocket-reminders/models"
)

// ==================== LIST OPERATIONS ====================

// CreateList inserts a new list and returns its assigned id. Empty color or
// icon fall through to the column defaults.
func (r *Repository) CreateList(name, color, icon string) (int64, error) {
	if color == "" {
		color = models.DefaultListColor
	}
	if icon == "" {
		icon = models.DefaultListIcon
	}

	result, err := r.db.Exec(`
		INSERT INTO lists (name, color, icon) VALUES (?, ?, ?)
	`, name, color, icon)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *Repository) GetLists() ([]models.List, error) {
	rows, err := r.db.Query(`
		SELECT id, name, color, icon, createdAt
		FROM lists
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	lists := make([]models.List, 0)
	for rows.Next() {
		var list models.List
		if err := rows.Scan(&list.ID, &list.Name, &list.Color, &list.Icon, &list.CreatedAt); err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (r *Repository) GetListByID(id int64) (*models.List, error) {
	var list models.List
	err := r.db.QueryRow(`
		SELECT id, name, color, icon, createdAt
		FROM lists
		WHERE id = ?
	`, id).Scan(&list.ID, &list.Name, &list.Color, &list.Icon, &list.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// UpdateListByID always rewrites the name; color and icon are rewritten only
// when present. A nil pointer means "leave unchanged", so an explicit empty
// string is distinguishable from an omitted field.
func (r *Repository) UpdateListByID(id int64, name string, color, icon *string) (bool, error) {
	query := `UPDATE lists SET name = ?`
	params := []any{name}

	if color != nil {
		query += `, color = ?`
		params = append(params, *color)
	}
	if icon != nil {
		query += `, icon = ?`
		params = append(params, *icon)
	}
	query += ` WHERE id = ?`
	params = append(params, id)

	result, err := r.db.Exec(query, params...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteListByID removes the list row only. Reminders referencing the list
// are left in place with a dangling list_id.
func (r *Repository) DeleteListByID(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
