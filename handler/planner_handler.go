package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type PlannerHandler struct {
	service *usecase.PlannerService
}

func NewPlannerHandler(service *usecase.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

func (h *PlannerHandler) CreateCyclic(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	// occurrences_count binds as float64 so fractional input clamps
	// instead of failing to parse
	var req struct {
		Title            string          `json:"title" binding:"required"`
		Description      string          `json:"description"`
		Category         model.Category  `json:"category" binding:"category"`
		Location         string          `json:"location"`
		StartDate        *time.Time      `json:"start_date"`
		EndDate          *time.Time      `json:"end_date"`
		Priority         int             `json:"priority" binding:"gte=0"`
		ReminderDate     *time.Time      `json:"reminder_date"`
		Frequency        model.Frequency `json:"frequency" binding:"required,frequency"`
		OccurrencesCount float64         `json:"occurrences_count"`
	}

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

	task, cyclic, err := h.service.CreateCyclic(c.Request.Context(), task, req.Frequency, int(req.OccurrencesCount))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.CyclicTaskResponse{
		Task:             dto.ToTaskResponse(task),
		Frequency:        cyclic.Frequency,
		OccurrencesCount: cyclic.OccurrencesCount,
	})
}

func (h *PlannerHandler) CreateSplit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title        string         `json:"title" binding:"required"`
		Description  string         `json:"description"`
		Category     model.Category `json:"category" binding:"category"`
		Location     string         `json:"location"`
		StartDate    *time.Time     `json:"start_date"`
		EndDate      *time.Time     `json:"end_date"`
		Priority     int            `json:"priority" binding:"gte=0"`
		ReminderDate *time.Time     `json:"reminder_date"`
		SubTasks     []struct {
			Title     string     `json:"title"`
			StartDate *time.Time `json:"start_date"`
			EndDate   *time.Time `json:"end_date"`
			Priority  int        `json:"priority"`
		} `json:"subtasks" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	parent := &model.Task{
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

	specs := make([]model.SubTask, len(req.SubTasks))
	for i, st := range req.SubTasks {
		specs[i] = model.SubTask{
			Title:     st.Title,
			StartDate: st.StartDate,
			EndDate:   st.EndDate,
			Priority:  st.Priority,
		}
	}

	parent, subtasks, err := h.service.CreateSplit(c.Request.Context(), parent, specs)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.SplitTaskResponse{
		Task:     dto.ToTaskResponse(parent),
		SubTasks: dto.ToSubTaskResponses(subtasks),
	})
}

func (h *PlannerHandler) GetTaskSubTasks(c *gin.Context) {
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

	subtasks, err := h.service.GetTaskSubTasks(c.Request.Context(), userID.(string), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToSubTaskResponses(subtasks))
}
