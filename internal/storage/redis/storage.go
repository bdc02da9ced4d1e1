package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Progression writes go through UpdateUser, which WATCHes the user key
// and commits the user, its audit entry, and any accessory in one
// transactional pipeline; a concurrent write aborts the transaction and
// the read-mutate-write sequence retries from a fresh read.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Drop the old username index entry if this overwrites a record
	// with a different username
	prev, err := s.GetUser(ctx, user.ID)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if prev != nil && !strings.EqualFold(prev.Username, user.Username) {
		pipe.Del(ctx, usernameKey(prev.Username))
	}
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameKey(user.Username), string(user.ID), 0)
	pipe.SAdd(ctx, usersKey(), string(user.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.SMembers(ctx, usersKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(model.UserID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue
		}
		users = append(users, &user)
	}
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	routineIDs, err := s.client.SMembers(ctx, userRoutinesKey(id)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, userKey(id))
	pipe.Del(ctx, usernameKey(user.Username))
	pipe.SRem(ctx, usersKey(), string(id))
	pipe.Del(ctx, sessionsKey(id))
	for _, rid := range routineIDs {
		pipe.Del(ctx, routineKey(model.RoutineID(rid)))
	}
	pipe.Del(ctx, userRoutinesKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) UpdateUser(ctx context.Context, id model.UserID, mutate storage.UserMutator) (*model.User, error) {
	var updated *model.User

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, userKey(id)).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrUserNotFound
			}
			return err
		}

		var user model.User
		if err := json.Unmarshal(data, &user); err != nil {
			return err
		}
		prevUsername := user.Username

		session, accessory, err := mutate(&user)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(&user)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, userKey(id), payload, 0)
			if !strings.EqualFold(prevUsername, user.Username) {
				pipe.Del(ctx, usernameKey(prevUsername))
				pipe.Set(ctx, usernameKey(user.Username), string(id), 0)
			}
			if session != nil {
				sData, err := json.Marshal(session)
				if err != nil {
					return err
				}
				pipe.RPush(ctx, sessionsKey(id), sData)
			}
			if accessory != nil {
				aData, err := json.Marshal(accessory)
				if err != nil {
					return err
				}
				pipe.Set(ctx, accessoryKey(accessory.ID), aData, 0)
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = &user
		return nil
	}

	for attempt := 0; attempt < s.cfg.MaxTxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, userKey(id))
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, model.ErrConcurrentUpdate
}

// Session operations

func (s *Storage) ListSessions(ctx context.Context, userID model.UserID) ([]*model.TrainingSession, error) {
	exists, err := s.client.Exists(ctx, userKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrUserNotFound
	}

	// RPUSH on write means list order is append order
	values, err := s.client.LRange(ctx, sessionsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.TrainingSession, 0, len(values))
	for _, val := range values {
		var session model.TrainingSession
		if err := json.Unmarshal([]byte(val), &session); err != nil {
			continue
		}
		sessions = append(sessions, &session)
	}
	return sessions, nil
}

// Exercise catalog operations

func (s *Storage) SaveExercise(ctx context.Context, exercise *model.Exercise) error {
	data, err := json.Marshal(exercise)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, exerciseKey(exercise.ID), data, 0)
	pipe.SAdd(ctx, exercisesKey(), string(exercise.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetExercise(ctx context.Context, id model.ExerciseID) (*model.Exercise, error) {
	data, err := s.client.Get(ctx, exerciseKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrExerciseNotFound
		}
		return nil, err
	}

	var exercise model.Exercise
	if err := json.Unmarshal(data, &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (s *Storage) ListExercises(ctx context.Context) ([]*model.Exercise, error) {
	ids, err := s.client.SMembers(ctx, exercisesKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Exercise{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = exerciseKey(model.ExerciseID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	exercises := make([]*model.Exercise, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var exercise model.Exercise
		if err := json.Unmarshal([]byte(val.(string)), &exercise); err != nil {
			continue
		}
		exercises = append(exercises, &exercise)
	}
	return exercises, nil
}

func (s *Storage) DeleteExercise(ctx context.Context, id model.ExerciseID) error {
	exists, err := s.client.Exists(ctx, exerciseKey(id)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrExerciseNotFound
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, exerciseKey(id))
	pipe.SRem(ctx, exercisesKey(), string(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Routine operations

func (s *Storage) SaveRoutine(ctx context.Context, routine *model.Routine) error {
	data, err := json.Marshal(routine)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, routineKey(routine.ID), data, 0)
	pipe.SAdd(ctx, userRoutinesKey(routine.UserID), string(routine.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRoutine(ctx context.Context, id model.RoutineID) (*model.Routine, error) {
	data, err := s.client.Get(ctx, routineKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoutineNotFound
		}
		return nil, err
	}

	var routine model.Routine
	if err := json.Unmarshal(data, &routine); err != nil {
		return nil, err
	}
	return &routine, nil
}

func (s *Storage) ListRoutinesByUser(ctx context.Context, userID model.UserID) ([]*model.Routine, error) {
	ids, err := s.client.SMembers(ctx, userRoutinesKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Routine{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = routineKey(model.RoutineID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	routines := make([]*model.Routine, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var routine model.Routine
		if err := json.Unmarshal([]byte(val.(string)), &routine); err != nil {
			continue
		}
		routines = append(routines, &routine)
	}
	return routines, nil
}

func (s *Storage) DeleteRoutine(ctx context.Context, id model.RoutineID) error {
	routine, err := s.GetRoutine(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, routineKey(id))
	pipe.SRem(ctx, userRoutinesKey(routine.UserID), string(id))
	_, err = pipe.Exec(ctx)
	return err
}
