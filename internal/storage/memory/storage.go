package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// UpdateUser mutates a copy under the write lock, so a failing mutator
// leaves the stored record untouched and concurrent updates serialize.
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID // lowercased username -> id
	sessions      map[model.UserID][]*model.TrainingSession
	accessories   map[model.AccessoryID]*model.Accessory
	exercises     map[model.ExerciseID]*model.Exercise
	routines      map[model.RoutineID]*model.Routine
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		sessions:      make(map[model.UserID][]*model.TrainingSession),
		accessories:   make(map[model.AccessoryID]*model.Accessory),
		exercises:     make(map[model.ExerciseID]*model.Exercise),
		routines:      make(map[model.RoutineID]*model.Routine),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.users[user.ID]; ok {
		delete(s.usernameIndex, strings.ToLower(prev.Username))
	}

	u := *user
	s.users[u.ID] = &u
	s.usernameIndex[strings.ToLower(u.Username)] = u.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getUserLocked(id)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernameIndex[strings.ToLower(username)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return s.getUserLocked(id)
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		c := *u
		users = append(users, &c)
	}
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}

	delete(s.usernameIndex, strings.ToLower(u.Username))
	delete(s.users, id)
	delete(s.sessions, id)
	for rid, r := range s.routines {
		if r.UserID == id {
			delete(s.routines, rid)
		}
	}
	return nil
}

func (s *Storage) UpdateUser(ctx context.Context, id model.UserID, mutate storage.UserMutator) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	// Mutate a copy; commit only if the mutator succeeds
	u := *stored
	session, accessory, err := mutate(&u)
	if err != nil {
		return nil, err
	}

	if u.Username != stored.Username {
		delete(s.usernameIndex, strings.ToLower(stored.Username))
		s.usernameIndex[strings.ToLower(u.Username)] = u.ID
	}
	s.users[id] = &u

	if session != nil {
		c := *session
		s.sessions[id] = append(s.sessions[id], &c)
	}
	if accessory != nil {
		c := *accessory
		s.accessories[c.ID] = &c
	}

	result := u
	return &result, nil
}

func (s *Storage) getUserLocked(id model.UserID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

// Session operations

func (s *Storage) ListSessions(ctx context.Context, userID model.UserID) ([]*model.TrainingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, model.ErrUserNotFound
	}

	stored := s.sessions[userID]
	sessions := make([]*model.TrainingSession, 0, len(stored))
	for _, sess := range stored {
		c := *sess
		sessions = append(sessions, &c)
	}
	return sessions, nil
}

// Exercise catalog operations

func (s *Storage) SaveExercise(ctx context.Context, exercise *model.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := *exercise
	s.exercises[e.ID] = &e
	return nil
}

func (s *Storage) GetExercise(ctx context.Context, id model.ExerciseID) (*model.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.exercises[id]
	if !ok {
		return nil, model.ErrExerciseNotFound
	}
	c := *e
	return &c, nil
}

func (s *Storage) ListExercises(ctx context.Context) ([]*model.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercises := make([]*model.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		c := *e
		exercises = append(exercises, &c)
	}
	return exercises, nil
}

func (s *Storage) DeleteExercise(ctx context.Context, id model.ExerciseID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exercises[id]; !ok {
		return model.ErrExerciseNotFound
	}
	delete(s.exercises, id)
	return nil
}

// Routine operations

func (s *Storage) SaveRoutine(ctx context.Context, routine *model.Routine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := *routine
	r.ExerciseIDs = append([]model.ExerciseID(nil), routine.ExerciseIDs...)
	s.routines[r.ID] = &r
	return nil
}

func (s *Storage) GetRoutine(ctx context.Context, id model.RoutineID) (*model.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.routines[id]
	if !ok {
		return nil, model.ErrRoutineNotFound
	}
	c := *r
	c.ExerciseIDs = append([]model.ExerciseID(nil), r.ExerciseIDs...)
	return &c, nil
}

func (s *Storage) ListRoutinesByUser(ctx context.Context, userID model.UserID) ([]*model.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routines := make([]*model.Routine, 0)
	for _, r := range s.routines {
		if r.UserID != userID {
			continue
		}
		c := *r
		c.ExerciseIDs = append([]model.ExerciseID(nil), r.ExerciseIDs...)
		routines = append(routines, &c)
	}
	return routines, nil
}

func (s *Storage) DeleteRoutine(ctx context.Context, id model.RoutineID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.routines[id]; !ok {
		return model.ErrRoutineNotFound
	}
	delete(s.routines, id)
	return nil
}
