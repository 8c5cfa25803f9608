package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	service *usecase.AchievementService
}

func NewAchievementHandler(service *usecase.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// GetCatalog serves the static achievement rule set.
func (h *AchievementHandler) GetCatalog(c *gin.Context) {
	utils.Success(c, model.AchievementCatalog)
}

// GetUserAchievements recomputes the caller's earned achievements from
// their completed-task history. Nothing is persisted.
func (h *AchievementHandler) GetUserAchievements(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	earned, err := h.service.UserAchievements(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	// Serve full catalog entries for the earned ids
	byID := make(map[model.AchievementID]model.Achievement, len(model.AchievementCatalog))
	for _, a := range model.AchievementCatalog {
		byID[a.ID] = a
	}
	achievements := make([]model.Achievement, 0, len(earned))
	for _, id := range earned {
		achievements = append(achievements, byID[id])
	}

	utils.Success(c, achievements)
}
