package usecase

import (
	"context"
	"testing"
	"time"

	"main/model"
)

func TestPointsForSchedule(t *testing.T) {
	day := func(d int) *time.Time {
		return timePtr(time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC))
	}

	t.Run("NoDatesFallsBackToPriority", func(t *testing.T) {
		if got := PointsForSchedule(5, nil, nil); got != 50 {
			t.Errorf("expected 50, got %d", got)
		}
	})

	t.Run("OnlyStartDate", func(t *testing.T) {
		if got := PointsForSchedule(3, day(1), nil); got != 30 {
			t.Errorf("expected 30, got %d", got)
		}
	})

	t.Run("OnlyEndDate", func(t *testing.T) {
		if got := PointsForSchedule(3, nil, day(5)); got != 30 {
			t.Errorf("expected 30, got %d", got)
		}
	})

	t.Run("FullSpan", func(t *testing.T) {
		// 4 whole days at priority 5
		if got := PointsForSchedule(5, day(1), day(5)); got != 200 {
			t.Errorf("expected 200, got %d", got)
		}
	})

	t.Run("SameDayClampsToOne", func(t *testing.T) {
		if got := PointsForSchedule(4, day(7), day(7)); got != 40 {
			t.Errorf("expected 40, got %d", got)
		}
	})

	t.Run("InvertedSpanClampsToOne", func(t *testing.T) {
		if got := PointsForSchedule(4, day(9), day(2)); got != 40 {
			t.Errorf("expected 40, got %d", got)
		}
	})

	t.Run("TimeOfDayIgnored", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
		if got := PointsForSchedule(2, &start, &end); got != 20 {
			t.Errorf("expected 20 for one calendar day, got %d", got)
		}
	})

	t.Run("ZeroPriority", func(t *testing.T) {
		if got := PointsForSchedule(0, day(1), day(5)); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})
}

func TestCalculatePointsIdempotent(t *testing.T) {
	svc, tasks, _ := newTestTaskService()
	ctx := context.Background()

	task := &model.Task{
		UserID:    "user-1",
		Title:     "write report",
		Priority:  5,
		StartDate: timePtr(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		EndDate:   timePtr(time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC)),
	}
	if err := svc.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	first, err := svc.CalculatePoints(ctx, task)
	if err != nil {
		t.Fatalf("CalculatePoints failed: %v", err)
	}
	if first != 250 {
		t.Errorf("expected 250, got %d", first)
	}

	second, err := svc.CalculatePoints(ctx, task)
	if err != nil {
		t.Fatalf("second CalculatePoints failed: %v", err)
	}
	if second != first {
		t.Errorf("recompute changed the score: %d then %d", first, second)
	}

	stored, _ := tasks.GetTaskByID(ctx, "user-1", task.TaskID)
	if stored.Points != 250 {
		t.Errorf("stored points = %d, expected 250", stored.Points)
	}
}
