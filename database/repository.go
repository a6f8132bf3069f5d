package database

// Repository provides data access over the single local store. Entity
// operations live in lists.go, reminders.go and subreminders.go.
//
// Conventions shared by every operation:
//   - absent rows are (nil, nil), storage failures are (nil, err)
//   - boolean columns cross the boundary as the integers 0/1
//   - no operation caches; every read re-queries the store
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
