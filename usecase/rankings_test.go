package usecase

import (
	"context"
	"testing"
	"time"

	"main/model"
)

// recordingCache captures what the service writes and can be primed to
// serve a hit.
type recordingCache struct {
	entries []*model.RankEntry
	primed  bool
	hits    int
	sets    int
}

func (c *recordingCache) GetRankings(ctx context.Context) ([]*model.RankEntry, bool) {
	if c.primed {
		c.hits++
		return c.entries, true
	}
	return nil, false
}

func (c *recordingCache) SetRankings(ctx context.Context, entries []*model.RankEntry) {
	c.entries = entries
	c.sets++
}

func TestRankings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	seed := func() (*RankingService, *fakeTaskStore) {
		profiles := newFakeProfileStore()
		tasks := newFakeTaskStore()
		profiles.AwardPoints(ctx, "alice", 300)
		profiles.AwardPoints(ctx, "bob", 100)
		profiles.AwardPoints(ctx, "carol", 200)
		return NewRankingService(profiles, tasks, nil), tasks
	}

	t.Run("OrderedByLifetimePoints", func(t *testing.T) {
		svc, _ := seed()
		entries, err := svc.Rankings(ctx, now)
		if err != nil {
			t.Fatalf("Rankings failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		want := []struct {
			rank   int
			userID string
			points int
		}{
			{1, "alice", 300},
			{2, "carol", 200},
			{3, "bob", 100},
		}
		for i, w := range want {
			e := entries[i]
			if e.Rank != w.rank || e.UserID != w.userID || e.TotalPointsEarned != w.points {
				t.Errorf("entry %d = rank %d %s %d, expected rank %d %s %d",
					i, e.Rank, e.UserID, e.TotalPointsEarned, w.rank, w.userID, w.points)
			}
		}
	})

	t.Run("MonthWindows", func(t *testing.T) {
		svc, tasks := seed()
		done := func(id string, end time.Time, points int) {
			tasks.CreateTask(ctx, &model.Task{
				TaskID: id, UserID: "alice", Title: id,
				Status: model.StatusDone, EndDate: timePtr(end), Points: points,
			})
		}
		done("this-month", time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), 50)
		done("last-month", time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC), 40)
		done("three-back", time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC), 30)
		done("too-old", time.Date(2025, 11, 28, 10, 0, 0, 0, time.UTC), 20)

		entries, err := svc.Rankings(ctx, now)
		if err != nil {
			t.Fatalf("Rankings failed: %v", err)
		}
		alice := entries[0]
		if alice.CurrentMonthPoints != 50 {
			t.Errorf("current month = %d, expected 50", alice.CurrentMonthPoints)
		}
		// December through February, excluding the running month.
		if alice.Last3MonthsPoints != 70 {
			t.Errorf("last 3 months = %d, expected 70", alice.Last3MonthsPoints)
		}
	})

	t.Run("CacheHitSkipsRecompute", func(t *testing.T) {
		profiles := newFakeProfileStore()
		tasks := newFakeTaskStore()
		cache := &recordingCache{
			primed:  true,
			entries: []*model.RankEntry{{Rank: 1, UserID: "cached"}},
		}
		svc := NewRankingService(profiles, tasks, cache)

		entries, err := svc.Rankings(ctx, now)
		if err != nil {
			t.Fatalf("Rankings failed: %v", err)
		}
		if len(entries) != 1 || entries[0].UserID != "cached" {
			t.Errorf("cache hit not served")
		}
		if cache.hits != 1 || cache.sets != 0 {
			t.Errorf("hits=%d sets=%d, expected 1 hit and no writeback", cache.hits, cache.sets)
		}
	})

	t.Run("CacheMissWritesBack", func(t *testing.T) {
		profiles := newFakeProfileStore()
		tasks := newFakeTaskStore()
		profiles.AwardPoints(ctx, "alice", 10)
		cache := &recordingCache{}
		svc := NewRankingService(profiles, tasks, cache)

		if _, err := svc.Rankings(ctx, now); err != nil {
			t.Fatalf("Rankings failed: %v", err)
		}
		if cache.sets != 1 || len(cache.entries) != 1 {
			t.Errorf("computed rankings not written to the cache")
		}
	})
}

func TestRankOf(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileStore()
	profiles.AwardPoints(ctx, "alice", 300)
	profiles.AwardPoints(ctx, "bob", 100)
	profiles.AwardPoints(ctx, "carol", 200)
	svc := NewRankingService(profiles, newFakeTaskStore(), nil)

	for _, tc := range []struct {
		points int
		want   int
	}{
		{300, 1},
		{200, 2},
		{100, 3},
		{0, 4},
		{250, 2},
	} {
		got, err := svc.RankOf(ctx, tc.points)
		if err != nil {
			t.Fatalf("RankOf(%d) failed: %v", tc.points, err)
		}
		if got != tc.want {
			t.Errorf("RankOf(%d) = %d, expected %d", tc.points, got, tc.want)
		}
	}
}
