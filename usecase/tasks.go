package usecase

import (
	"context"
	"errors"
	"main/model"
	"sort"
	"time"

	"github.com/google/uuid"
)

type TaskService struct {
	tasks    TaskStore
	profiles ProfileStore
	sweeps   SweepLimiter
}

func NewTaskService(tasks TaskStore, profiles ProfileStore, sweeps SweepLimiter) *TaskService {
	return &TaskService{tasks: tasks, profiles: profiles, sweeps: sweeps}
}

// Create Task
func (svc *TaskService) CreateTask(ctx context.Context, task *model.Task) error {
	if task.UserID == "" {
		return errors.New("user ID is required")
	}
	if task.Title == "" {
		return ErrValidation
	}
	if task.Category == "" {
		task.Category = model.CategoryPrivate
	}
	if !model.ValidCategory(task.Category) {
		return ErrValidation
	}
	if task.Priority < 0 {
		return ErrValidation
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}

	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	if task.TaskID == "" {
		task.TaskID = uuid.New().String()
	}

	// Points are never user-supplied; the score is derived on create and
	// recomputed on completion.
	task.Points = PointsForSchedule(task.Priority, task.StartDate, task.EndDate)

	return svc.tasks.CreateTask(ctx, task)
}

// Get the user's tasks, sweeping overdue ones first
func (svc *TaskService) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	if _, err := svc.SweepOverdue(ctx, userID, time.Now()); err != nil {
		return nil, err
	}

	tasks, err := svc.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Sort tasks: open before terminal, then by priority, then by end date
	sort.SliceStable(tasks, func(i, j int) bool {
		iTerminal := tasks[i].Status.Terminal()
		jTerminal := tasks[j].Status.Terminal()
		if iTerminal != jTerminal {
			return !iTerminal
		}
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority > tasks[j].Priority
		}
		if tasks[i].EndDate != nil && tasks[j].EndDate != nil {
			return tasks[i].EndDate.Before(*tasks[j].EndDate)
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// Get a single task
func (svc *TaskService) GetTask(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := svc.tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Update a task's user-editable fields; the score follows the new
// priority and dates.
func (svc *TaskService) UpdateTask(ctx context.Context, userID, taskID string, updates *model.Task) (*model.Task, error) {
	existing, err := svc.tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTaskNotFound
	}

	if updates.Title != "" {
		existing.Title = updates.Title
	}
	if updates.Description != "" {
		existing.Description = updates.Description
	}
	if updates.Location != "" {
		existing.Location = updates.Location
	}
	if updates.Category != "" {
		if !model.ValidCategory(updates.Category) {
			return nil, ErrValidation
		}
		existing.Category = updates.Category
	}
	if updates.Priority != 0 {
		if updates.Priority < 0 {
			return nil, ErrValidation
		}
		existing.Priority = updates.Priority
	}
	if updates.StartDate != nil {
		existing.StartDate = updates.StartDate
	}
	if updates.EndDate != nil {
		existing.EndDate = updates.EndDate
	}
	if updates.ReminderDate != nil {
		existing.ReminderDate = updates.ReminderDate
	}
	if updates.Status != "" {
		// Terminal states never reopen; done is only reached through
		// MarkDone so the award path cannot be skipped.
		if existing.Status.Terminal() || updates.Status == model.StatusDone {
			return nil, ErrInvalidStatus
		}
		switch updates.Status {
		case model.StatusPending, model.StatusInProgress, model.StatusAbandoned:
			existing.Status = updates.Status
		default:
			return nil, ErrInvalidStatus
		}
	}

	existing.Points = PointsForSchedule(existing.Priority, existing.StartDate, existing.EndDate)
	existing.UpdatedAt = time.Now()

	if err := svc.tasks.UpdateTask(ctx, taskID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete a task
func (svc *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	existing, err := svc.tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTaskNotFound
	}
	return svc.tasks.DeleteTask(ctx, taskID, userID)
}

// MarkDone completes a task and credits the owner's ledger. Returns the
// updated task and the points actually awarded.
//
// Completing an abandoned task recomputes its score for display but
// awards nothing. Completing past the end date awards half the score.
// The status flip is a compare-and-set in the store, so two concurrent
// calls cannot both award points.
func (svc *TaskService) MarkDone(ctx context.Context, userID, taskID string, now time.Time) (*model.Task, int, error) {
	task, err := svc.tasks.GetTaskByID(ctx, userID, taskID)
	if err != nil {
		return nil, 0, err
	}
	if task == nil {
		return nil, 0, ErrTaskNotFound
	}

	points := PointsForSchedule(task.Priority, task.StartDate, task.EndDate)

	if task.Status == model.StatusAbandoned {
		task.Points = points
		task.UpdatedAt = now
		if err := svc.tasks.UpdateTask(ctx, taskID, userID, task); err != nil {
			return nil, 0, err
		}
		return task, 0, nil
	}

	updated, err := svc.tasks.CompleteTask(ctx, taskID, userID, points, now)
	if err != nil {
		return nil, 0, err
	}
	if updated == nil {
		// Lost the race or the status moved under us; re-read to report
		// the right condition.
		current, err := svc.tasks.GetTaskByID(ctx, userID, taskID)
		if err != nil {
			return nil, 0, err
		}
		if current == nil {
			return nil, 0, ErrTaskNotFound
		}
		if current.Status == model.StatusAbandoned {
			return svc.MarkDone(ctx, userID, taskID, now)
		}
		return nil, 0, ErrAlreadyDone
	}

	awarded := points
	if updated.EndDate != nil && updated.EndDate.Before(now) {
		awarded = points / 2
	}

	if err := svc.profiles.AwardPoints(ctx, userID, awarded); err != nil {
		return nil, 0, err
	}
	return updated, awarded, nil
}

// SweepOverdue expires the owner's pending and in-progress tasks whose
// end date is strictly in the past. Idempotent; tasks without an end
// date are never swept. The read path calls this through a per-owner
// rate limiter so repeated listings don't hammer the store.
func (svc *TaskService) SweepOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	if svc.sweeps != nil && !svc.sweeps.AllowSweep(ctx, userID) {
		return 0, nil
	}
	return svc.tasks.SweepOverdue(ctx, userID, now)
}

// SweepAllOverdue is the scheduler entry point.
func (svc *TaskService) SweepAllOverdue(ctx context.Context, now time.Time) (int64, error) {
	return svc.tasks.SweepAllOverdue(ctx, now)
}

// DueReminders lists the owner's open tasks whose reminder date has
// passed.
func (svc *TaskService) DueReminders(ctx context.Context, userID string, now time.Time) ([]*model.Task, error) {
	return svc.tasks.DueReminders(ctx, userID, now)
}
