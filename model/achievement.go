package model

type AchievementID int

type Achievement struct {
	ID          AchievementID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}

const (
	AchievementPoints500      AchievementID = 1
	AchievementPoints2000     AchievementID = 2
	AchievementBigDay         AchievementID = 3
	AchievementWeekStreak     AchievementID = 4
	AchievementTopTen         AchievementID = 5
	AchievementPoints3000     AchievementID = 6
	AchievementHundredTasks   AchievementID = 7
	AchievementEarlyBird      AchievementID = 8
	AchievementNightOwl       AchievementID = 9
	AchievementWeekendWarrior AchievementID = 10
)

// AchievementCatalog is the fixed rule set served by the achievements
// endpoint.
var AchievementCatalog = []Achievement{
	{ID: AchievementPoints500, Name: "Getting Started", Description: "Earn 500 points in total"},
	{ID: AchievementPoints2000, Name: "Point Collector", Description: "Earn 2000 points in total"},
	{ID: AchievementBigDay, Name: "Big Day", Description: "Complete a 100+ point task on a 100+ point day"},
	{ID: AchievementWeekStreak, Name: "Week Streak", Description: "Complete tasks on 7 consecutive days"},
	{ID: AchievementTopTen, Name: "Top Ten", Description: "Reach the leaderboard top 10"},
	{ID: AchievementPoints3000, Name: "Point Hoarder", Description: "Earn 3000 points in total"},
	{ID: AchievementHundredTasks, Name: "Centurion", Description: "Complete 100 tasks"},
	{ID: AchievementEarlyBird, Name: "Early Bird", Description: "Complete 10 tasks before 9 AM"},
	{ID: AchievementNightOwl, Name: "Night Owl", Description: "Complete 10 tasks after 10 PM"},
	{ID: AchievementWeekendWarrior, Name: "Weekend Warrior", Description: "Complete 20 tasks on weekends"},
}
