package usecase

import (
	"context"
	"main/model"
	"sort"
	"time"
)

// EvaluateAchievements runs the fixed rule set against a user's ledger,
// completed-task history and leaderboard rank. Pure: every call
// recomputes from scratch and nothing is persisted. Tasks without an end
// date simply never satisfy the date-based triggers.
func EvaluateAchievements(profile *model.UserProfile, doneTasks []*model.Task, rank int) []model.AchievementID {
	var earned []model.AchievementID
	add := func(id model.AchievementID) { earned = append(earned, id) }

	if profile.TotalPointsEarned >= 500 {
		add(model.AchievementPoints500)
	}
	if profile.TotalPointsEarned >= 2000 {
		add(model.AchievementPoints2000)
	}
	if profile.TotalPointsEarned >= 3000 {
		add(model.AchievementPoints3000)
	}
	if len(doneTasks) >= 100 {
		add(model.AchievementHundredTasks)
	}

	dayPoints := make(map[string]int)
	for _, task := range doneTasks {
		if task.EndDate != nil {
			dayPoints[dayKey(*task.EndDate)] += task.Points
		}
	}
	for _, task := range doneTasks {
		if task.EndDate != nil && task.Points >= 100 && dayPoints[dayKey(*task.EndDate)] >= 100 {
			add(model.AchievementBigDay)
			break
		}
	}

	if longestStreak(doneTasks) >= 7 {
		add(model.AchievementWeekStreak)
	}
	if rank > 0 && rank <= 10 {
		add(model.AchievementTopTen)
	}

	early, late, weekend := 0, 0, 0
	for _, task := range doneTasks {
		if task.EndDate == nil {
			continue
		}
		if task.EndDate.Hour() < 9 {
			early++
		}
		if task.EndDate.Hour() >= 22 {
			late++
		}
		if wd := task.EndDate.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
	}
	if early >= 10 {
		add(model.AchievementEarlyBird)
	}
	if late >= 10 {
		add(model.AchievementNightOwl)
	}
	if weekend >= 20 {
		add(model.AchievementWeekendWarrior)
	}

	return earned
}

// longestStreak is the longest run of consecutive calendar days each
// holding at least one completed task. Days are deduplicated first, so
// several completions on one day count once.
func longestStreak(doneTasks []*model.Task) int {
	seen := make(map[string]time.Time)
	for _, task := range doneTasks {
		if task.EndDate != nil {
			day := task.EndDate
			seen[dayKey(*day)] = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

type AchievementService struct {
	profiles ProfileStore
	tasks    TaskStore
	sessions WorkSessionStore
	rankings *RankingService
}

func NewAchievementService(profiles ProfileStore, tasks TaskStore, sessions WorkSessionStore, rankings *RankingService) *AchievementService {
	return &AchievementService{profiles: profiles, tasks: tasks, sessions: sessions, rankings: rankings}
}

// UserAchievements evaluates the rule set for one user against current
// state.
func (svc *AchievementService) UserAchievements(ctx context.Context, userID string) ([]model.AchievementID, error) {
	profile, err := svc.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	doneTasks, err := svc.tasks.GetDoneTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	rank, err := svc.rankings.RankOf(ctx, profile.TotalPointsEarned)
	if err != nil {
		return nil, err
	}
	return EvaluateAchievements(profile, doneTasks, rank), nil
}

// UserStats assembles the per-user dashboard view: status counts,
// ledger counters, logged hours and earned achievements.
func (svc *AchievementService) UserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	profile, err := svc.profiles.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := svc.tasks.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	var stats model.UserStats
	stats.TaskStats.Total = len(tasks)
	var doneTasks []*model.Task
	for _, task := range tasks {
		switch task.Status {
		case model.StatusDone:
			stats.TaskStats.Done++
			doneTasks = append(doneTasks, task)
		case model.StatusPending:
			stats.TaskStats.Pending++
		case model.StatusInProgress:
			stats.TaskStats.InProgress++
		case model.StatusOverdue:
			stats.TaskStats.Overdue++
		case model.StatusAbandoned:
			stats.TaskStats.Abandoned++
		}
	}

	stats.PointsStats.CurrentPoints = profile.CurrentPoints()
	stats.PointsStats.TotalPointsEarned = profile.TotalPointsEarned
	stats.PointsStats.PointsSpent = profile.PointsSpent

	for _, task := range tasks {
		sessions, err := svc.sessions.GetTaskSessions(ctx, task.TaskID)
		if err != nil {
			return nil, err
		}
		for _, ws := range sessions {
			stats.ActivityStats.HoursLogged += ws.HoursSpent()
		}
	}

	rank, err := svc.rankings.RankOf(ctx, profile.TotalPointsEarned)
	if err != nil {
		return nil, err
	}
	achievements := EvaluateAchievements(profile, doneTasks, rank)
	stats.ActivityStats.Achievements = achievements
	stats.ActivityStats.AchievementCount = len(achievements)

	return &stats, nil
}
