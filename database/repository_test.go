package database

import (
	"os"
	"path/filepath"
	"testing"

	"pocket-reminders/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "reminders-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := New(dbPath)
	require.NoError(t, err)

	err = db.Migrate()
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func TestListRoundTrip(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateList("Groceries", "#FF3B30", "cart")
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	list, err := repo.GetListByID(id)
	require.NoError(t, err)
	require.NotNil(t, list)

	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, "#FF3B30", list.Color)
	assert.Equal(t, "cart", list.Icon)
	assert.NotEmpty(t, list.CreatedAt)
}

func TestListDefaults(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateList("Errands", "", "")
	require.NoError(t, err)

	list, err := repo.GetListByID(id)
	require.NoError(t, err)
	require.NotNil(t, list)

	assert.Equal(t, models.DefaultListColor, list.Color)
	assert.Equal(t, models.DefaultListIcon, list.Icon)
}

func TestUpdateListPartial(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateList("Work", "#34C759", "briefcase")
	require.NoError(t, err)

	t.Run("name only leaves color and icon untouched", func(t *testing.T) {
		updated, err := repo.UpdateListByID(id, "Office", nil, nil)
		require.NoError(t, err)
		assert.True(t, updated)

		list, err := repo.GetListByID(id)
		require.NoError(t, err)
		assert.Equal(t, "Office", list.Name)
		assert.Equal(t, "#34C759", list.Color)
		assert.Equal(t, "briefcase", list.Icon)
	})

	t.Run("present color is rewritten even when empty", func(t *testing.T) {
		updated, err := repo.UpdateListByID(id, "Office", strPtr(""), nil)
		require.NoError(t, err)
		assert.True(t, updated)

		list, err := repo.GetListByID(id)
		require.NoError(t, err)
		assert.Equal(t, "", list.Color)
		assert.Equal(t, "briefcase", list.Icon)
	})

	t.Run("missing id affects no rows", func(t *testing.T) {
		updated, err := repo.UpdateListByID(9999, "Nope", nil, nil)
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestDeleteList(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateList("Temp", "", "")
	require.NoError(t, err)

	deleted, err := repo.DeleteListByID(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err := repo.GetListByID(id)
	require.NoError(t, err)
	assert.Nil(t, list)

	lists, err := repo.GetLists()
	require.NoError(t, err)
	for _, l := range lists {
		assert.NotEqual(t, id, l.ID)
	}

	deleted, err = repo.DeleteListByID(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteListLeavesReminders(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	listID, err := repo.CreateList("Doomed", "", "")
	require.NoError(t, err)

	reminderID, err := repo.CreateReminder(&models.Reminder{
		ListID:   intPtr(listID),
		Title:    "Survivor",
		Priority: models.PriorityNone,
	})
	require.NoError(t, err)

	deleted, err := repo.DeleteListByID(listID)
	require.NoError(t, err)
	require.True(t, deleted)

	// The reminder still exists with its dangling list reference
	reminder, err := repo.GetReminderByID(reminderID)
	require.NoError(t, err)
	require.NotNil(t, reminder)
	require.NotNil(t, reminder.ListID)
	assert.Equal(t, listID, *reminder.ListID)
}

func TestReminderBooleanRoundTrip(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateReminder(&models.Reminder{
		Title:         "Booleans",
		Priority:      models.PriorityHigh,
		Flag:          true,
		WhenMessaging: true,
		IsCompleted:   false,
	})
	require.NoError(t, err)

	reminder, err := repo.GetReminderByID(id)
	require.NoError(t, err)
	require.NotNil(t, reminder)

	assert.True(t, reminder.Flag)
	assert.True(t, reminder.WhenMessaging)
	assert.False(t, reminder.IsCompleted)

	id2, err := repo.CreateReminder(&models.Reminder{
		Title:    "All off",
		Priority: models.PriorityNone,
	})
	require.NoError(t, err)

	reminder, err = repo.GetReminderByID(id2)
	require.NoError(t, err)
	assert.False(t, reminder.Flag)
	assert.False(t, reminder.WhenMessaging)
	assert.False(t, reminder.IsCompleted)
}

func TestReminderNullableFields(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateReminder(&models.Reminder{
		Title:    "Sparse",
		Priority: models.PriorityNone,
	})
	require.NoError(t, err)

	reminder, err := repo.GetReminderByID(id)
	require.NoError(t, err)
	require.NotNil(t, reminder)

	assert.Nil(t, reminder.ListID)
	assert.Nil(t, reminder.Date)
	assert.Nil(t, reminder.Time)
	assert.Nil(t, reminder.Location)
	assert.Nil(t, reminder.ImageURI)
	assert.Nil(t, reminder.URL)

	full := &models.Reminder{
		ID:       id,
		Title:    "Dense",
		Note:     "with everything",
		Date:     strPtr("2026-09-02"),
		Time:     strPtr("08:30"),
		Location: strPtr("Home"),
		Priority: models.PriorityMedium,
		URL:      strPtr("https://example.com"),
	}
	updated, err := repo.UpdateReminder(full)
	require.NoError(t, err)
	require.True(t, updated)

	reminder, err = repo.GetReminderByID(id)
	require.NoError(t, err)
	require.NotNil(t, reminder.Date)
	assert.Equal(t, "2026-09-02", *reminder.Date)
	require.NotNil(t, reminder.Time)
	assert.Equal(t, "08:30", *reminder.Time)
	require.NotNil(t, reminder.Location)
	assert.Equal(t, "Home", *reminder.Location)
}

func TestGetReminderAbsent(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	reminder, err := repo.GetReminderByID(42)
	require.NoError(t, err)
	assert.Nil(t, reminder)
}

func TestMarkReminderDone(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateReminder(&models.Reminder{Title: "Finish", Priority: models.PriorityNone})
	require.NoError(t, err)

	done, err := repo.MarkReminderDone(id)
	require.NoError(t, err)
	assert.True(t, done)

	reminder, err := repo.GetReminderByID(id)
	require.NoError(t, err)
	assert.True(t, reminder.IsCompleted)

	done, err = repo.MarkReminderDone(9999)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestMarkReminderFlagged(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateReminder(&models.Reminder{Title: "Important", Priority: models.PriorityNone})
	require.NoError(t, err)

	flagged, err := repo.MarkReminderFlagged(id)
	require.NoError(t, err)
	assert.True(t, flagged)

	reminder, err := repo.GetReminderByID(id)
	require.NoError(t, err)
	assert.True(t, reminder.Flag)
}

func TestCountsAgreeWithFetches(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	listID, err := repo.CreateList("Mixed", "", "")
	require.NoError(t, err)

	seed := []models.Reminder{
		{ListID: intPtr(listID), Title: "a", Priority: models.PriorityNone},
		{ListID: intPtr(listID), Title: "b", Priority: models.PriorityNone, Flag: true},
		{ListID: intPtr(listID), Title: "c", Priority: models.PriorityNone, IsCompleted: true},
		{Title: "d", Priority: models.PriorityNone, Flag: true, IsCompleted: true},
		{Title: "e", Priority: models.PriorityNone},
	}
	for i := range seed {
		_, err := repo.CreateReminder(&seed[i])
		require.NoError(t, err)
	}

	completed, err := repo.GetCompletedReminders()
	require.NoError(t, err)
	completedCount, err := repo.CountCompletedReminders()
	require.NoError(t, err)
	assert.Equal(t, len(completed), completedCount)

	flagged, err := repo.GetFlaggedReminders()
	require.NoError(t, err)
	flaggedCount, err := repo.CountFlaggedReminders()
	require.NoError(t, err)
	assert.Equal(t, len(flagged), flaggedCount)

	incomplete, err := repo.GetIncompleteReminders()
	require.NoError(t, err)
	incompleteCount, err := repo.CountIncompleteReminders()
	require.NoError(t, err)
	assert.Equal(t, len(incomplete), incompleteCount)

	byList, err := repo.GetIncompleteRemindersByListID(listID)
	require.NoError(t, err)
	byListCount, err := repo.CountIncompleteRemindersByListID(listID)
	require.NoError(t, err)
	assert.Equal(t, len(byList), byListCount)
}

func TestGroceriesScenario(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	listID, err := repo.CreateList("Groceries", "#FF3B30", "cart")
	require.NoError(t, err)
	assert.Equal(t, int64(1), listID)

	reminderID, err := repo.CreateReminder(&models.Reminder{
		ListID:   intPtr(listID),
		Title:    "Milk",
		Priority: models.PriorityNone,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), reminderID)

	count, err := repo.CountIncompleteRemindersByListID(listID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	done, err := repo.MarkReminderDone(reminderID)
	require.NoError(t, err)
	require.True(t, done)

	count, err = repo.CountIncompleteRemindersByListID(listID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	completedCount, err := repo.CountCompletedReminders()
	require.NoError(t, err)
	assert.Equal(t, 1, completedCount)
}

func TestSubReminders(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	parentID, err := repo.CreateReminder(&models.Reminder{Title: "Pack", Priority: models.PriorityNone})
	require.NoError(t, err)

	titles := []string{"Socks", "Charger", "Passport"}
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		id, err := repo.CreateSubReminder(parentID, title)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	subs, err := repo.GetSubReminders(parentID)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	for _, sub := range subs {
		assert.Equal(t, parentID, sub.ParentID)
		assert.False(t, sub.IsDone)
	}

	updated, err := repo.UpdateSubReminderByID(ids[0], "Warm socks")
	require.NoError(t, err)
	assert.True(t, updated)

	deleted, err := repo.DeleteSubReminderByID(ids[1])
	require.NoError(t, err)
	assert.True(t, deleted)

	subs, err = repo.GetSubReminders(parentID)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	remaining := make(map[int64]string)
	for _, sub := range subs {
		remaining[sub.ID] = sub.Title
	}
	assert.Equal(t, "Warm socks", remaining[ids[0]])
	assert.Equal(t, "Passport", remaining[ids[2]])
	assert.NotContains(t, remaining, ids[1])
}

func TestDeleteReminderLeavesOrphanedSubReminders(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	parentID, err := repo.CreateReminder(&models.Reminder{Title: "Parent", Priority: models.PriorityNone})
	require.NoError(t, err)

	_, err = repo.CreateSubReminder(parentID, "Orphan-to-be")
	require.NoError(t, err)

	deleted, err := repo.DeleteReminderByID(parentID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Orphans remain fetchable by the dead parent id
	subs, err := repo.GetSubReminders(parentID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Orphan-to-be", subs[0].Title)
}

func TestCreateReminderWithSubtasks(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	id, err := repo.CreateReminderWithSubtasks(&models.Reminder{
		Title:    "Trip",
		Priority: models.PriorityNone,
	}, []string{"Book flight", "Reserve hotel"})
	require.NoError(t, err)

	reminder, err := repo.GetReminderByID(id)
	require.NoError(t, err)
	require.NotNil(t, reminder)

	subs, err := repo.GetSubReminders(id)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestScheduledRemindersOrdered(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	dates := []struct {
		title string
		date  string
		time  string
	}{
		{"later", "2026-09-10", "09:00"},
		{"sooner", "2026-09-02", "08:00"},
		{"same day later", "2026-09-02", "19:30"},
	}
	for _, d := range dates {
		_, err := repo.CreateReminder(&models.Reminder{
			Title:    d.title,
			Date:     strPtr(d.date),
			Time:     strPtr(d.time),
			Priority: models.PriorityNone,
		})
		require.NoError(t, err)
	}
	// Unscheduled and completed reminders must not appear
	_, err := repo.CreateReminder(&models.Reminder{Title: "no date", Priority: models.PriorityNone})
	require.NoError(t, err)
	_, err = repo.CreateReminder(&models.Reminder{
		Title: "done", Date: strPtr("2026-09-01"), Time: strPtr("07:00"),
		Priority: models.PriorityNone, IsCompleted: true,
	})
	require.NoError(t, err)

	scheduled, err := repo.GetScheduledReminders()
	require.NoError(t, err)
	require.Len(t, scheduled, 3)
	assert.Equal(t, "sooner", scheduled[0].Title)
	assert.Equal(t, "same day later", scheduled[1].Title)
	assert.Equal(t, "later", scheduled[2].Title)
}
