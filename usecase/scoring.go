package usecase

import (
	"context"
	"main/model"
	"time"
)

// PointsForSchedule computes the gamified score for a task's priority
// and date span. With both dates set the score is dayDiff * priority * 10
// where dayDiff is the calendar-day span clamped to at least 1. With
// either date missing the span is ignored and the score falls back to
// priority * 10. Absent dates are valid input, never an error.
func PointsForSchedule(priority int, start, end *time.Time) int {
	if start == nil || end == nil {
		return priority * 10
	}
	dayDiff := daysBetween(*start, *end)
	if dayDiff < 1 {
		dayDiff = 1
	}
	return dayDiff * priority * 10
}

// daysBetween counts whole calendar days from the start date to the end
// date, ignoring the time-of-day components.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// CalculatePoints recomputes the task's score from its current priority
// and dates, stores it on the task and persists it. Idempotent: calling
// it again with unchanged inputs yields the same stored value.
func (svc *TaskService) CalculatePoints(ctx context.Context, task *model.Task) (int, error) {
	points := PointsForSchedule(task.Priority, task.StartDate, task.EndDate)
	task.Points = points
	task.UpdatedAt = time.Now()
	if err := svc.tasks.UpdateTask(ctx, task.TaskID, task.UserID, task); err != nil {
		return 0, err
	}
	return points, nil
}
