package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *usecase.ProfileService
}

func NewProfileHandler(service *usecase.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMe returns the caller's points ledger, creating an empty one on
// first access.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToProfileResponse(profile))
}

// UpdatePoints deducts spendable points. PATCH with points_to_deduct.
func (h *ProfileHandler) UpdatePoints(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		PointsToDeduct int `json:"points_to_deduct"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.service.Spend(c.Request.Context(), userID.(string), req.PointsToDeduct)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToProfileResponse(profile))
}
