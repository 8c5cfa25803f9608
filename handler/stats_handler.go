package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service *usecase.AchievementService
}

func NewStatsHandler(service *usecase.AchievementService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetUserStats serves the dashboard view for a user id: status counts,
// ledger counters, logged hours and earned achievements.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	targetID := c.Param("id")
	if targetID == "" {
		utils.BadRequest(c, "Missing user ID")
		return
	}

	stats, err := h.service.UserStats(c.Request.Context(), targetID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"stats": stats,
	})
}
