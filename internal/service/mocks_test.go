package service_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/hyperpulsex/hyperpulse/internal/events"
	"github.com/hyperpulsex/hyperpulse/internal/models"
	"github.com/hyperpulsex/hyperpulse/internal/repository"
)

type mockExerciseRepo struct {
	ListExercisesFunc func(ctx context.Context) ([]models.Exercise, error)
}

func (m *mockExerciseRepo) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return m.ListExercisesFunc(ctx)
}

type mockUserRepo struct {
	UpsertUserFunc     func(ctx context.Context, in models.UserSync, profile map[string]any) (*models.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
}

func (m *mockUserRepo) UpsertUser(ctx context.Context, in models.UserSync, profile map[string]any) (*models.User, error) {
	return m.UpsertUserFunc(ctx, in, profile)
}
func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.FindByUsernameFunc(ctx, username)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.WorkoutSynced
	err    error
}

func (p *recordingPublisher) PublishWorkoutSynced(_ context.Context, evt events.WorkoutSynced) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

// memStore is an in-memory user and workout store keyed the same way as the
// Postgres repositories: users by email, workouts by (username, timestamp).
type memStore struct {
	mu       sync.Mutex
	users    []*models.User
	workouts []models.Workout
	nextID   int
}

type workoutKey struct{ username, timestamp string }

func (s *memStore) id(prefix string) string {
	s.nextID++
	return prefix + strconv.Itoa(s.nextID)
}

func (s *memStore) UpsertUser(_ context.Context, in models.UserSync, profile map[string]any) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u *models.User
	for _, existing := range s.users {
		if existing.Email == in.Email {
			u = existing
			break
		}
	}
	if u == nil {
		u = &models.User{ID: s.id("u"), Email: in.Email}
		s.users = append(s.users, u)
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	if in.Gender != nil {
		u.Gender = in.Gender
	}
	if in.HeightCm != nil {
		u.HeightCm = in.HeightCm
	}
	if in.WeightKg != nil {
		u.WeightKg = in.WeightKg
	}
	if profile != nil {
		u.FitnessProfile = profile
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) IncrementScore(_ context.Context, username string, points int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			u.TotalScore += points
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) UpsertWorkout(_ context.Context, w models.Workout) (*models.Workout, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := workoutKey{w.Username, w.Timestamp}
	for i, existing := range s.workouts {
		if (workoutKey{existing.Username, existing.Timestamp}) == key {
			w.ID = existing.ID
			s.workouts[i] = w
			return &w, false, nil
		}
	}
	w.ID = s.id("w")
	s.workouts = append(s.workouts, w)
	return &w, true, nil
}

func (s *memStore) ListByUsername(_ context.Context, username string) ([]models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Workout, 0)
	for _, w := range s.workouts {
		if w.Username == username {
			out = append(out, w)
		}
	}
	return out, nil
}
