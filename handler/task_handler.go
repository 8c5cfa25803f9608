package handler

import (
	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *usecase.TaskService
}

func NewTaskHandler(service *usecase.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	// Get authenticated user ID
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	// Define request structure matching model fields. Points are
	// deliberately absent: the score is always computed server-side.
	var req struct {
		Title        string         `json:"title" binding:"required"`
		Description  string         `json:"description"`
		Category     model.Category `json:"category" binding:"category"`
		Location     string         `json:"location"`
		StartDate    *time.Time     `json:"start_date"`
		EndDate      *time.Time     `json:"end_date"`
		Priority     int            `json:"priority" binding:"gte=0"`
		ReminderDate *time.Time     `json:"reminder_date"`
	}

	// Bind and validate request body
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := &model.Task{
		UserID:       userID.(string),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Priority:     req.Priority,
		ReminderDate: req.ReminderDate,
	}

	if err := h.service.CreateTask(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}

	response := dto.ToTaskResponse(task)
	utils.Created(c, response)
}

func (h *TaskHandler) GetUserTasks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	tasks, err := h.service.GetUserTasks(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	responses := dto.ToTaskResponses(tasks)
	utils.Success(c, responses)
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	task, err := h.service.GetTask(c.Request.Context(), userID.(string), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ToTaskResponse(task)
	utils.Success(c, response)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	var updates model.Task
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updatedTask, err := h.service.UpdateTask(c.Request.Context(), userID.(string), taskID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ToTaskResponse(updatedTask)
	utils.Success(c, response)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), userID.(string), taskID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Task deleted successfully"})
}

// MarkDone completes a task and reports the points credited to the
// ledger. POST with no body.
func (h *TaskHandler) MarkDone(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	task, awarded, err := h.service.MarkDone(c.Request.Context(), userID.(string), taskID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackCompletion(awarded)
	utils.Success(c, dto.MarkDoneResponse{
		Task:          dto.ToTaskResponse(task),
		PointsAwarded: awarded,
	})
}

func (h *TaskHandler) GetDueReminders(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	tasks, err := h.service.DueReminders(c.Request.Context(), userID.(string), time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	responses := dto.ToTaskResponses(tasks)
	utils.Success(c, responses)
}
