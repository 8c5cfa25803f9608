package usecase

import (
	"context"
	"main/model"

	"github.com/google/uuid"
)

type WorkSessionService struct {
	tasks    *TaskService
	sessions WorkSessionStore
}

func NewWorkSessionService(tasks *TaskService, sessions WorkSessionStore) *WorkSessionService {
	return &WorkSessionService{tasks: tasks, sessions: sessions}
}

// LogSession records a work interval on one of the owner's tasks.
// Either endpoint may be absent (an open interval logs zero hours).
func (svc *WorkSessionService) LogSession(ctx context.Context, userID, taskID string, ws *model.WorkSession) (*model.WorkSession, error) {
	if _, err := svc.tasks.GetTask(ctx, userID, taskID); err != nil {
		return nil, err
	}
	if ws.StartTime != nil && ws.EndTime != nil && ws.EndTime.Before(*ws.StartTime) {
		return nil, ErrValidation
	}

	ws.SessionID = uuid.New().String()
	ws.TaskID = taskID
	if err := svc.sessions.CreateSession(ctx, ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// GetTaskSessions lists the logged intervals for one of the owner's
// tasks.
func (svc *WorkSessionService) GetTaskSessions(ctx context.Context, userID, taskID string) ([]*model.WorkSession, error) {
	if _, err := svc.tasks.GetTask(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return svc.sessions.GetTaskSessions(ctx, taskID)
}

// DeleteSession removes a logged interval.
func (svc *WorkSessionService) DeleteSession(ctx context.Context, userID, taskID, sessionID string) error {
	if _, err := svc.tasks.GetTask(ctx, userID, taskID); err != nil {
		return err
	}
	return svc.sessions.DeleteSession(ctx, sessionID, taskID)
}
