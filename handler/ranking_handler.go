package handler

import (
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	service *usecase.RankingService
}

func NewRankingHandler(service *usecase.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

// GetRankings serves the leaderboard: every profile ordered by lifetime
// points with current-month and 3-month windowed totals.
func (h *RankingHandler) GetRankings(c *gin.Context) {
	entries, err := h.service.Rankings(c.Request.Context(), time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, entries)
}
