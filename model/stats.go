package model

type UserStats struct {
	TaskStats struct {
		Total      int `json:"total"`
		Done       int `json:"done"`
		Pending    int `json:"pending"`
		InProgress int `json:"in_progress"`
		Overdue    int `json:"overdue"`
		Abandoned  int `json:"abandoned"`
	} `json:"task_stats"`
	PointsStats struct {
		CurrentPoints     int `json:"current_points"`
		TotalPointsEarned int `json:"total_points_earned"`
		PointsSpent       int `json:"points_spent"`
	} `json:"points_stats"`
	ActivityStats struct {
		HoursLogged      float64         `json:"hours_logged"`
		AchievementCount int             `json:"achievement_count"`
		Achievements     []AchievementID `json:"achievements"`
	} `json:"activity_stats"`
}

// RankEntry is one row of the leaderboard; computed on read, never
// persisted.
type RankEntry struct {
	Rank               int    `json:"rank"`
	UserID             string `json:"user_id"`
	TotalPointsEarned  int    `json:"total_points_earned"`
	CurrentMonthPoints int    `json:"current_month_points"`
	Last3MonthsPoints  int    `json:"last_3_months_points"`
}
