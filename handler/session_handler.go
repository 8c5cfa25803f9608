package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type WorkSessionHandler struct {
	service *usecase.WorkSessionService
}

func NewWorkSessionHandler(service *usecase.WorkSessionService) *WorkSessionHandler {
	return &WorkSessionHandler{service: service}
}

func (h *WorkSessionHandler) LogSession(c *gin.Context) {
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

	var req struct {
		StartTime *time.Time `json:"start_time"`
		EndTime   *time.Time `json:"end_time"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	ws, err := h.service.LogSession(c.Request.Context(), userID.(string), taskID, &model.WorkSession{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.ToWorkSessionResponse(ws))
}

func (h *WorkSessionHandler) GetTaskSessions(c *gin.Context) {
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

	sessions, err := h.service.GetTaskSessions(c.Request.Context(), userID.(string), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToWorkSessionResponses(sessions))
}

func (h *WorkSessionHandler) DeleteSession(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	taskID := c.Param("id")
	sessionID := c.Param("sid")
	if taskID == "" || sessionID == "" {
		utils.BadRequest(c, "Missing task or session ID")
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), userID.(string), taskID, sessionID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Work session deleted successfully"})
}
