package usecase

import (
	"context"
	"main/model"
)

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetProfile returns the caller's ledger, creating it on first access.
func (svc *ProfileService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return svc.profiles.GetOrCreateProfile(ctx, userID)
}

// Spend deducts points from the spendable balance. Negative amounts and
// amounts beyond the balance are rejected; nothing monotonic ever
// decreases.
func (svc *ProfileService) Spend(ctx context.Context, userID string, amount int) (*model.UserProfile, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	profile, err := svc.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > profile.CurrentPoints()-profile.PointsSpent {
		return nil, ErrInsufficientPoints
	}

	if err := svc.profiles.SpendPoints(ctx, userID, amount); err != nil {
		return nil, err
	}
	return svc.profiles.GetOrCreateProfile(ctx, userID)
}
