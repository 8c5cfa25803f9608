package model

import "time"

// SubTask is a date-bounded piece of a split parent task. It mirrors a
// minimal Task but carries no independent scoring; its presence is the
// sole signal that the parent is split.
type SubTask struct {
	SubTaskID string     `bson:"_id,omitempty" json:"id"`
	TaskID    string     `bson:"task_id" json:"task_id"`
	Title     string     `bson:"title" json:"title"`
	StartDate *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Priority  int        `bson:"priority" json:"priority"`
	Status    Status     `bson:"status" json:"status"`
}
