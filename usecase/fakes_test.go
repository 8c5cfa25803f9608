package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"main/model"
)

// In-memory store fakes. They mirror the mongo repositories' semantics
// closely enough for the services under test: lookups return nil for
// missing documents, CompleteTask is a compare-and-set, and the counter
// updates are atomic increments.

type fakeTaskStore struct {
	mu    sync.Mutex
	tasks map[string]*model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]*model.Task)}
}

func cloneTask(t *model.Task) *model.Task {
	c := *t
	return &c
}

func (s *fakeTaskStore) CreateTask(ctx context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = cloneTask(task)
	return nil
}

func (s *fakeTaskStore) GetTaskByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, nil
	}
	return cloneTask(task), nil
}

func (s *fakeTaskStore) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Task
	for _, task := range s.tasks {
		if task.UserID == userID {
			out = append(out, cloneTask(task))
		}
	}
	return out, nil
}

func (s *fakeTaskStore) GetDoneTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Task
	for _, task := range s.tasks {
		if task.UserID == userID && task.Status == model.StatusDone {
			out = append(out, cloneTask(task))
		}
	}
	return out, nil
}

func (s *fakeTaskStore) DoneTasksBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Task
	for _, task := range s.tasks {
		if task.UserID != userID || task.Status != model.StatusDone || task.EndDate == nil {
			continue
		}
		if !task.EndDate.Before(from) && task.EndDate.Before(to) {
			out = append(out, cloneTask(task))
		}
	}
	return out, nil
}

func (s *fakeTaskStore) UpdateTask(ctx context.Context, taskID, userID string, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[taskID]
	if !ok || existing.UserID != userID {
		return nil
	}
	s.tasks[taskID] = cloneTask(task)
	return nil
}

func (s *fakeTaskStore) DeleteTask(ctx context.Context, taskID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.tasks[taskID]
	if ok && existing.UserID == userID {
		delete(s.tasks, taskID)
	}
	return nil
}

func (s *fakeTaskStore) CompleteTask(ctx context.Context, taskID, userID string, points int, now time.Time) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, nil
	}
	switch task.Status {
	case model.StatusPending, model.StatusInProgress, model.StatusOverdue:
	default:
		return nil, nil
	}
	task.Status = model.StatusDone
	task.Points = points
	task.UpdatedAt = now
	return cloneTask(task), nil
}

func (s *fakeTaskStore) SweepOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var swept int64
	for _, task := range s.tasks {
		if task.UserID != userID {
			continue
		}
		if sweepable(task, now) {
			task.Status = model.StatusOverdue
			task.UpdatedAt = now
			swept++
		}
	}
	return swept, nil
}

func (s *fakeTaskStore) SweepAllOverdue(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var swept int64
	for _, task := range s.tasks {
		if sweepable(task, now) {
			task.Status = model.StatusOverdue
			task.UpdatedAt = now
			swept++
		}
	}
	return swept, nil
}

func sweepable(task *model.Task, now time.Time) bool {
	if task.Status != model.StatusPending && task.Status != model.StatusInProgress {
		return false
	}
	return task.EndDate != nil && task.EndDate.Before(now)
}

func (s *fakeTaskStore) DueReminders(ctx context.Context, userID string, now time.Time) ([]*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Task
	for _, task := range s.tasks {
		if task.UserID != userID || task.Status.Terminal() {
			continue
		}
		if task.ReminderDate != nil && !task.ReminderDate.After(now) {
			out = append(out, cloneTask(task))
		}
	}
	return out, nil
}

type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*model.UserProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]*model.UserProfile)}
}

func (s *fakeProfileStore) GetOrCreateProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		profile = &model.UserProfile{UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		s.profiles[userID] = profile
	}
	c := *profile
	return &c, nil
}

func (s *fakeProfileStore) AwardPoints(ctx context.Context, userID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		profile = &model.UserProfile{UserID: userID, CreatedAt: time.Now()}
		s.profiles[userID] = profile
	}
	profile.TotalPointsEarned += amount
	profile.UpdatedAt = time.Now()
	return nil
}

func (s *fakeProfileStore) SpendPoints(ctx context.Context, userID string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		profile = &model.UserProfile{UserID: userID, CreatedAt: time.Now()}
		s.profiles[userID] = profile
	}
	profile.PointsSpent += amount
	profile.UpdatedAt = time.Now()
	return nil
}

func (s *fakeProfileStore) ListProfilesByPoints(ctx context.Context) ([]*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.UserProfile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		c := *profile
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalPointsEarned > out[j].TotalPointsEarned
	})
	return out, nil
}

func (s *fakeProfileStore) CountRicherProfiles(ctx context.Context, points int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, profile := range s.profiles {
		if profile.TotalPointsEarned > points {
			count++
		}
	}
	return count, nil
}

type fakeCyclicStore struct {
	mu      sync.Mutex
	cyclics map[string]*model.CyclicTask
}

func newFakeCyclicStore() *fakeCyclicStore {
	return &fakeCyclicStore{cyclics: make(map[string]*model.CyclicTask)}
}

func (s *fakeCyclicStore) CreateCyclicTask(ctx context.Context, ct *model.CyclicTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *ct
	s.cyclics[ct.TaskID] = &c
	return nil
}

func (s *fakeCyclicStore) GetCyclicByTask(ctx context.Context, taskID string) (*model.CyclicTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ct, ok := s.cyclics[taskID]
	if !ok {
		return nil, nil
	}
	c := *ct
	return &c, nil
}

type fakeSubTaskStore struct {
	mu       sync.Mutex
	subtasks []*model.SubTask
}

func newFakeSubTaskStore() *fakeSubTaskStore {
	return &fakeSubTaskStore{}
}

func (s *fakeSubTaskStore) CreateSubTask(ctx context.Context, st *model.SubTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *st
	s.subtasks = append(s.subtasks, &c)
	return nil
}

func (s *fakeSubTaskStore) GetTaskSubTasks(ctx context.Context, taskID string) ([]*model.SubTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.SubTask
	for _, st := range s.subtasks {
		if st.TaskID == taskID {
			c := *st
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeWorkSessionStore struct {
	mu       sync.Mutex
	sessions []*model.WorkSession
}

func newFakeWorkSessionStore() *fakeWorkSessionStore {
	return &fakeWorkSessionStore{}
}

func (s *fakeWorkSessionStore) CreateSession(ctx context.Context, ws *model.WorkSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *ws
	s.sessions = append(s.sessions, &c)
	return nil
}

func (s *fakeWorkSessionStore) GetTaskSessions(ctx context.Context, taskID string) ([]*model.WorkSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.WorkSession
	for _, ws := range s.sessions {
		if ws.TaskID == taskID {
			c := *ws
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *fakeWorkSessionStore) DeleteSession(ctx context.Context, sessionID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ws := range s.sessions {
		if ws.SessionID == sessionID && ws.TaskID == taskID {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return nil
		}
	}
	return nil
}

// deniedLimiter refuses every sweep; used to check the limiter short
// circuits the store call.
type deniedLimiter struct{}

func (deniedLimiter) AllowSweep(ctx context.Context, userID string) bool { return false }

func timePtr(t time.Time) *time.Time { return &t }

func newTestTaskService() (*TaskService, *fakeTaskStore, *fakeProfileStore) {
	tasks := newFakeTaskStore()
	profiles := newFakeProfileStore()
	return NewTaskService(tasks, profiles, nil), tasks, profiles
}
