package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

func TestWorkSessions(t *testing.T) {
	ctx := context.Background()

	seed := func() (*WorkSessionService, *fakeWorkSessionStore) {
		taskSvc, taskStore, _ := newTestTaskService()
		taskStore.CreateTask(ctx, &model.Task{TaskID: "t1", UserID: "user-1", Title: "a", Status: model.StatusPending})
		sessions := newFakeWorkSessionStore()
		return NewWorkSessionService(taskSvc, sessions), sessions
	}

	t.Run("LogAndList", func(t *testing.T) {
		svc, _ := seed()
		start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		end := start.Add(2 * time.Hour)

		ws, err := svc.LogSession(ctx, "user-1", "t1", &model.WorkSession{StartTime: &start, EndTime: &end})
		if err != nil {
			t.Fatalf("LogSession failed: %v", err)
		}
		if ws.SessionID == "" {
			t.Error("expected a generated session ID")
		}
		if ws.HoursSpent() != 2 {
			t.Errorf("hours = %v, expected 2", ws.HoursSpent())
		}

		listed, err := svc.GetTaskSessions(ctx, "user-1", "t1")
		if err != nil {
			t.Fatalf("GetTaskSessions failed: %v", err)
		}
		if len(listed) != 1 {
			t.Errorf("expected 1 session, got %d", len(listed))
		}
	})

	t.Run("OpenIntervalLogsZeroHours", func(t *testing.T) {
		svc, _ := seed()
		start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		ws, err := svc.LogSession(ctx, "user-1", "t1", &model.WorkSession{StartTime: &start})
		if err != nil {
			t.Fatalf("LogSession failed: %v", err)
		}
		if ws.HoursSpent() != 0 {
			t.Errorf("open interval hours = %v, expected 0", ws.HoursSpent())
		}
	})

	t.Run("InvertedIntervalRejected", func(t *testing.T) {
		svc, _ := seed()
		start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		earlier := start.Add(-time.Hour)

		_, err := svc.LogSession(ctx, "user-1", "t1", &model.WorkSession{StartTime: &start, EndTime: &earlier})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("UnknownTask", func(t *testing.T) {
		svc, _ := seed()
		_, err := svc.LogSession(ctx, "user-1", "missing", &model.WorkSession{})
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("OtherOwnerDenied", func(t *testing.T) {
		svc, _ := seed()
		_, err := svc.GetTaskSessions(ctx, "user-2", "t1")
		if !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound for another owner, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		svc, sessions := seed()
		ws, err := svc.LogSession(ctx, "user-1", "t1", &model.WorkSession{})
		if err != nil {
			t.Fatalf("LogSession failed: %v", err)
		}
		if err := svc.DeleteSession(ctx, "user-1", "t1", ws.SessionID); err != nil {
			t.Fatalf("DeleteSession failed: %v", err)
		}
		listed, _ := sessions.GetTaskSessions(ctx, "t1")
		if len(listed) != 0 {
			t.Errorf("session still present after delete")
		}
	})
}
