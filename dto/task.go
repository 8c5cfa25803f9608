package dto

import (
	"main/model"
	"time"
)

type TaskResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     model.Category `json:"category"`
	Location     string         `json:"location,omitempty"`
	StartDate    *time.Time     `json:"start_date,omitempty"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	Priority     int            `json:"priority"`
	Points       int            `json:"points"`
	Status       model.Status   `json:"status"`
	ReminderDate *time.Time     `json:"reminder_date,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	TimeUntilEnd string         `json:"time_until_end,omitempty"` // computed field
}

// Convert model.Task to TaskResponse
func ToTaskResponse(task *model.Task) TaskResponse {
	response := TaskResponse{
		ID:           task.TaskID,
		Title:        task.Title,
		Description:  task.Description,
		Category:     task.Category,
		Location:     task.Location,
		StartDate:    task.StartDate,
		EndDate:      task.EndDate,
		Priority:     task.Priority,
		Points:       task.Points,
		Status:       task.Status,
		ReminderDate: task.ReminderDate,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	if task.EndDate != nil && !task.Status.Terminal() {
		if task.EndDate.Before(time.Now()) {
			response.TimeUntilEnd = "Overdue"
		} else {
			response.TimeUntilEnd = time.Until(*task.EndDate).Round(time.Hour).String()
		}
	}

	return response
}

// Convert slice of model.Task to slice of TaskResponse
func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

type MarkDoneResponse struct {
	Task          TaskResponse `json:"task"`
	PointsAwarded int          `json:"points_awarded"`
}

type SubTaskResponse struct {
	ID        string       `json:"id"`
	TaskID    string       `json:"task_id"`
	Title     string       `json:"title"`
	StartDate *time.Time   `json:"start_date,omitempty"`
	EndDate   *time.Time   `json:"end_date,omitempty"`
	Priority  int          `json:"priority"`
	Status    model.Status `json:"status"`
}

func ToSubTaskResponses(subtasks []*model.SubTask) []SubTaskResponse {
	responses := make([]SubTaskResponse, len(subtasks))
	for i, st := range subtasks {
		responses[i] = SubTaskResponse{
			ID:        st.SubTaskID,
			TaskID:    st.TaskID,
			Title:     st.Title,
			StartDate: st.StartDate,
			EndDate:   st.EndDate,
			Priority:  st.Priority,
			Status:    st.Status,
		}
	}
	return responses
}

type CyclicTaskResponse struct {
	Task             TaskResponse    `json:"task"`
	Frequency        model.Frequency `json:"frequency"`
	OccurrencesCount int             `json:"occurrences_count"`
}

type SplitTaskResponse struct {
	Task     TaskResponse      `json:"task"`
	SubTasks []SubTaskResponse `json:"subtasks"`
}

type WorkSessionResponse struct {
	ID         string     `json:"id"`
	TaskID     string     `json:"task_id"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	HoursSpent float64    `json:"hours_spent"` // derived, never stored
}

func ToWorkSessionResponse(ws *model.WorkSession) WorkSessionResponse {
	return WorkSessionResponse{
		ID:         ws.SessionID,
		TaskID:     ws.TaskID,
		StartTime:  ws.StartTime,
		EndTime:    ws.EndTime,
		HoursSpent: ws.HoursSpent(),
	}
}

func ToWorkSessionResponses(sessions []*model.WorkSession) []WorkSessionResponse {
	responses := make([]WorkSessionResponse, len(sessions))
	for i, ws := range sessions {
		responses[i] = ToWorkSessionResponse(ws)
	}
	return responses
}
