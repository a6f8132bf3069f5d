package models

// Priority levels a reminder can carry. Stored as plain text.
const (
	PriorityNone   = "None"
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Default appearance for new lists.
const (
	DefaultListColor = "#007AFF"
	DefaultListIcon  = "list-bulleted"
)

type List struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"created_at"`
}

// Reminder is a single task record. ListID is a soft reference: deleting a
// list leaves its reminders pointing at the missing id.
type Reminder struct {
	ID            int64   `json:"id"`
	ListID        *int64  `json:"list_id"`
	Title         string  `json:"title"`
	Note          string  `json:"note"`
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Location      *string `json:"location"`
	Priority      string  `json:"priority"`
	Flag          bool    `json:"flag"`
	WhenMessaging bool    `json:"when_messaging"`
	ImageURI      *string `json:"image_uri"`
	URL           *string `json:"url"`
	IsCompleted   bool    `json:"is_completed"`
	CreatedAt     string  `json:"created_at"`
}

// SubReminder is a child checklist item belonging to exactly one reminder.
type SubReminder struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parent_id"`
	Title    string `json:"title"`
	IsDone   bool   `json:"is_done"`
}

// ViewCounts backs the badge numbers on the tile view.
type ViewCounts struct {
	Today     int `json:"today"`
	Scheduled int `json:"scheduled"`
	All       int `json:"all"`
	Flagged   int `json:"flagged"`
	Completed int `json:"completed"`
}

type CreateListRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon" validate:"omitempty,iconname"`
}

// UpdateListRequest distinguishes "leave unchanged" (nil) from an explicit
// new value, including an explicit empty string.
type UpdateListRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
	Icon  *string `json:"icon" validate:"omitempty,iconname"`
}

type CreateReminderRequest struct {
	ListID        *int64   `json:"list_id"`
	Title         string   `json:"title" validate:"required,min=1,max=200"`
	Note          string   `json:"note" validate:"max=2000"`
	Date          *string  `json:"date" validate:"omitempty,dateformat"`
	Time          *string  `json:"time" validate:"omitempty,timeformat"`
	Location      *string  `json:"location"`
	Priority      string   `json:"priority" validate:"omitempty,priority"`
	Flag          bool     `json:"flag"`
	WhenMessaging bool     `json:"when_messaging"`
	ImageURI      *string  `json:"image_uri"`
	URL           *string  `json:"url" validate:"omitempty,url"`
	Subtasks      []string `json:"subtasks" validate:"dive,required,max=200"`
}

type UpdateReminderRequest struct {
	ListID        *int64  `json:"list_id"`
	Title         string  `json:"title" validate:"required,min=1,max=200"`
	Note          string  `json:"note" validate:"max=2000"`
	Date          *string `json:"date" validate:"omitempty,dateformat"`
	Time          *string `json:"time" validate:"omitempty,timeformat"`
	Location      *string `json:"location"`
	Priority      string  `json:"priority" validate:"omitempty,priority"`
	Flag          bool    `json:"flag"`
	WhenMessaging bool    `json:"when_messaging"`
	ImageURI      *string `json:"image_uri"`
	URL           *string `json:"url" validate:"omitempty,url"`
	IsCompleted   bool    `json:"is_completed"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

type UpdateSubtaskRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}
