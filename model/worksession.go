package model

import "time"

// WorkSession is a logged work interval on a task. Times are
// time-of-day values; the spent duration is derived, never stored.
type WorkSession struct {
	SessionID string     `bson:"_id,omitempty" json:"id"`
	TaskID    string     `bson:"task_id" json:"task_id"`
	StartTime *time.Time `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime   *time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
}

// HoursSpent returns the logged hours for the session, 0 when either
// endpoint is missing or the interval is inverted.
func (ws *WorkSession) HoursSpent() float64 {
	if ws.StartTime == nil || ws.EndTime == nil {
		return 0
	}
	d := ws.EndTime.Sub(*ws.StartTime)
	if d < 0 {
		return 0
	}
	return d.Hours()
}
