package model

import "time"

// UserProfile is the per-user points ledger. Only the two monotonic
// counters are persisted; the spendable balance is derived so that
// current == earned - spent holds after every mutation by construction.
type UserProfile struct {
	UserID            string    `bson:"_id" json:"user_id"`
	TotalPointsEarned int       `bson:"total_points_earned" json:"total_points_earned"`
	PointsSpent       int       `bson:"points_spent" json:"points_spent"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// CurrentPoints is the available balance.
func (p *UserProfile) CurrentPoints() int {
	return p.TotalPointsEarned - p.PointsSpent
}
