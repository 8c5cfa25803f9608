package usecase

import (
	"context"
	"main/model"

	"github.com/google/uuid"
)

// PlannerService derives child records (recurrence markers, subtasks)
// from a parent task specification.
type PlannerService struct {
	tasks    *TaskService
	cyclics  CyclicStore
	subtasks SubTaskStore
}

func NewPlannerService(tasks *TaskService, cyclics CyclicStore, subtasks SubTaskStore) *PlannerService {
	return &PlannerService{tasks: tasks, cyclics: cyclics, subtasks: subtasks}
}

// CreateCyclic creates the base task plus the recurrence marker. The
// occurrence count is coerced into [2,12] rather than rejected; future
// occurrences are materialized by an external scheduler, not here.
func (svc *PlannerService) CreateCyclic(ctx context.Context, task *model.Task, frequency model.Frequency, occurrences int) (*model.Task, *model.CyclicTask, error) {
	if !model.ValidFrequency(frequency) {
		return nil, nil, ErrValidation
	}

	if err := svc.tasks.CreateTask(ctx, task); err != nil {
		return nil, nil, err
	}

	cyclic := &model.CyclicTask{
		CyclicID:         uuid.New().String(),
		TaskID:           task.TaskID,
		Frequency:        frequency,
		OccurrencesCount: model.ClampOccurrences(occurrences),
	}
	if err := svc.cyclics.CreateCyclicTask(ctx, cyclic); err != nil {
		return nil, nil, err
	}
	return task, cyclic, nil
}

// CreateSplit creates a parent task decomposed into date-bounded
// subtasks. The parent's span widens to cover every subtask: its start
// date becomes the earliest subtask start and its end date the latest
// subtask end, keeping the parent's own values when the subtasks carry
// none.
func (svc *PlannerService) CreateSplit(ctx context.Context, parent *model.Task, specs []model.SubTask) (*model.Task, []*model.SubTask, error) {
	if len(specs) == 0 {
		return nil, nil, ErrValidation
	}

	for i := range specs {
		if start := specs[i].StartDate; start != nil {
			if parent.StartDate == nil || start.Before(*parent.StartDate) {
				parent.StartDate = start
			}
		}
		if end := specs[i].EndDate; end != nil {
			if parent.EndDate == nil || end.After(*parent.EndDate) {
				parent.EndDate = end
			}
		}
	}

	if err := svc.tasks.CreateTask(ctx, parent); err != nil {
		return nil, nil, err
	}

	subtasks := make([]*model.SubTask, 0, len(specs))
	for _, spec := range specs {
		st := &model.SubTask{
			SubTaskID: uuid.New().String(),
			TaskID:    parent.TaskID,
			Title:     spec.Title,
			StartDate: spec.StartDate,
			EndDate:   spec.EndDate,
			Priority:  spec.Priority,
			Status:    model.StatusPending,
		}
		if st.Title == "" {
			st.Title = "Untitled"
		}
		if st.Priority == 0 {
			st.Priority = 1
		}
		if err := svc.subtasks.CreateSubTask(ctx, st); err != nil {
			return nil, nil, err
		}
		subtasks = append(subtasks, st)
	}
	return parent, subtasks, nil
}

// GetTaskSubTasks lists the subtasks of one of the owner's tasks.
func (svc *PlannerService) GetTaskSubTasks(ctx context.Context, userID, taskID string) ([]*model.SubTask, error) {
	if _, err := svc.tasks.GetTask(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return svc.subtasks.GetTaskSubTasks(ctx, taskID)
}

// GetCyclicByTask returns the recurrence marker for a task, nil when
// the task is not cyclic.
func (svc *PlannerService) GetCyclicByTask(ctx context.Context, userID, taskID string) (*model.CyclicTask, error) {
	if _, err := svc.tasks.GetTask(ctx, userID, taskID); err != nil {
		return nil, err
	}
	return svc.cyclics.GetCyclicByTask(ctx, taskID)
}
