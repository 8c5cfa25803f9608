package usecase

import (
	"context"
	"main/model"
	"time"
)

// Store contracts implemented by the mongo repositories. The services
// depend on these rather than the concrete repos so the business rules
// can be exercised against in-memory fakes.

type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	GetTaskByID(ctx context.Context, userID, taskID string) (*model.Task, error)
	GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error)
	GetDoneTasks(ctx context.Context, userID string) ([]*model.Task, error)
	DoneTasksBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error)
	UpdateTask(ctx context.Context, taskID, userID string, task *model.Task) error
	DeleteTask(ctx context.Context, taskID, userID string) error
	// CompleteTask flips the task to done with the given points iff its
	// current status still allows completion. Returns the updated task
	// or nil when no eligible task matched.
	CompleteTask(ctx context.Context, taskID, userID string, points int, now time.Time) (*model.Task, error)
	// SweepOverdue marks the owner's pending / in-progress tasks whose
	// end date passed as overdue. Returns the number of tasks swept.
	SweepOverdue(ctx context.Context, userID string, now time.Time) (int64, error)
	// SweepAllOverdue is the cron-driven variant across all owners.
	SweepAllOverdue(ctx context.Context, now time.Time) (int64, error)
	DueReminders(ctx context.Context, userID string, now time.Time) ([]*model.Task, error)
}

type ProfileStore interface {
	GetOrCreateProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	AwardPoints(ctx context.Context, userID string, amount int) error
	SpendPoints(ctx context.Context, userID string, amount int) error
	ListProfilesByPoints(ctx context.Context) ([]*model.UserProfile, error)
	CountRicherProfiles(ctx context.Context, points int) (int, error)
}

type CyclicStore interface {
	CreateCyclicTask(ctx context.Context, ct *model.CyclicTask) error
	GetCyclicByTask(ctx context.Context, taskID string) (*model.CyclicTask, error)
}

type SubTaskStore interface {
	CreateSubTask(ctx context.Context, st *model.SubTask) error
	GetTaskSubTasks(ctx context.Context, taskID string) ([]*model.SubTask, error)
}

type WorkSessionStore interface {
	CreateSession(ctx context.Context, ws *model.WorkSession) error
	GetTaskSessions(ctx context.Context, taskID string) ([]*model.WorkSession, error)
	DeleteSession(ctx context.Context, sessionID, taskID string) error
}

// SweepLimiter throttles the read-path overdue sweep per owner. A nil
// or unavailable limiter always allows.
type SweepLimiter interface {
	AllowSweep(ctx context.Context, userID string) bool
}
