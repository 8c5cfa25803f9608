package dto

import (
	"main/model"
	"time"
)

type ProfileResponse struct {
	UserID            string    `json:"user_id"`
	CurrentPoints     int       `json:"current_points"`
	TotalPointsEarned int       `json:"total_points_earned"`
	PointsSpent       int       `json:"points_spent"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Convert model.UserProfile to ProfileResponse
func ToProfileResponse(profile *model.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:            profile.UserID,
		CurrentPoints:     profile.CurrentPoints(),
		TotalPointsEarned: profile.TotalPointsEarned,
		PointsSpent:       profile.PointsSpent,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}
