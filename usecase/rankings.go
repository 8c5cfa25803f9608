package usecase

import (
	"context"
	"main/model"
	"time"
)

type RankingService struct {
	profiles ProfileStore
	tasks    TaskStore
	cache    RankingsCache
}

// RankingsCache fronts the leaderboard computation; rankings are
// read-only and tolerate staleness, so cache misses just recompute.
type RankingsCache interface {
	GetRankings(ctx context.Context) ([]*model.RankEntry, bool)
	SetRankings(ctx context.Context, entries []*model.RankEntry)
}

func NewRankingService(profiles ProfileStore, tasks TaskStore, cache RankingsCache) *RankingService {
	return &RankingService{profiles: profiles, tasks: tasks, cache: cache}
}

// Rankings orders every profile by lifetime points. Rank is the 1-based
// retrieval position; windowed totals are summed over done tasks by end
// date. Nothing is persisted.
func (svc *RankingService) Rankings(ctx context.Context, now time.Time) ([]*model.RankEntry, error) {
	if svc.cache != nil {
		if entries, ok := svc.cache.GetRankings(ctx); ok {
			return entries, nil
		}
	}

	profiles, err := svc.profiles.ListProfilesByPoints(ctx)
	if err != nil {
		return nil, err
	}

	// The 3-month window covers the three full calendar months before
	// the running month; the running month has its own column.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	windowStart := monthStart.AddDate(0, -3, 0)

	entries := make([]*model.RankEntry, 0, len(profiles))
	for i, profile := range profiles {
		monthTasks, err := svc.tasks.DoneTasksBetween(ctx, profile.UserID, monthStart, nextMonth)
		if err != nil {
			return nil, err
		}
		windowTasks, err := svc.tasks.DoneTasksBetween(ctx, profile.UserID, windowStart, monthStart)
		if err != nil {
			return nil, err
		}

		entries = append(entries, &model.RankEntry{
			Rank:               i + 1,
			UserID:             profile.UserID,
			TotalPointsEarned:  profile.TotalPointsEarned,
			CurrentMonthPoints: sumPoints(monthTasks),
			Last3MonthsPoints:  sumPoints(windowTasks),
		})
	}

	if svc.cache != nil {
		svc.cache.SetRankings(ctx, entries)
	}
	return entries, nil
}

// RankOf is the 1-based leaderboard position for a lifetime total:
// profiles with strictly more points, plus one.
func (svc *RankingService) RankOf(ctx context.Context, points int) (int, error) {
	richer, err := svc.profiles.CountRicherProfiles(ctx, points)
	if err != nil {
		return 0, err
	}
	return richer + 1, nil
}

func sumPoints(tasks []*model.Task) int {
	total := 0
	for _, task := range tasks {
		total += task.Points
	}
	return total
}
