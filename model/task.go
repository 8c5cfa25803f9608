package model

import "time"

type Status string
type Category string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
	StatusOverdue    Status = "overdue"
	StatusAbandoned  Status = "abandoned"

	CategoryWork    Category = "work"
	CategorySchool  Category = "school"
	CategoryPrivate Category = "private"
)

type Task struct {
	TaskID       string     `bson:"_id,omitempty" json:"id"`
	UserID       string     `bson:"user_id" json:"user_id"`
	Title        string     `bson:"title" json:"title" binding:"required"`
	Description  string     `bson:"description" json:"description"`
	Category     Category   `bson:"category" json:"category"`
	Location     string     `bson:"location,omitempty" json:"location,omitempty"`
	StartDate    *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate      *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Priority     int        `bson:"priority" json:"priority"`
	Points       int        `bson:"points" json:"points"`
	Status       Status     `bson:"status" json:"status"`
	ReminderDate *time.Time `bson:"reminder_date,omitempty" json:"reminder_date,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// Terminal statuses never return to pending/in progress.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusOverdue || s == StatusAbandoned
}

func ValidCategory(c Category) bool {
	switch c {
	case CategoryWork, CategorySchool, CategoryPrivate:
		return true
	}
	return false
}
