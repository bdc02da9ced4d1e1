package storage

import (
	"context"

	"github.com/mrodgar/gymrat/internal/model"
)

// UserMutator mutates a user record in place. It may return a training
// session and/or an accessory to be persisted in the same commit as the
// user; either may be nil.
type UserMutator func(u *model.User) (*model.TrainingSession, *model.Accessory, error)

// Storage defines the interface for data persistence.
//
// UpdateUser is the only write path for progression state: the mutation
// and the records returned by the mutator commit as a single atomic
// unit, and implementations must guard the read-modify-write sequence
// against concurrent callers (a lock held across the sequence, or
// optimistic retry). A plain get-mutate-save loop loses updates and is
// not a valid implementation.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	// GetUserByUsername resolves a username case-insensitively
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error
	UpdateUser(ctx context.Context, id model.UserID, mutate UserMutator) (*model.User, error)

	// Session operations. The log is append-only; entries are written
	// exclusively through UpdateUser and listed in ascending creation
	// order.
	ListSessions(ctx context.Context, userID model.UserID) ([]*model.TrainingSession, error)

	// Exercise catalog operations
	SaveExercise(ctx context.Context, exercise *model.Exercise) error
	GetExercise(ctx context.Context, id model.ExerciseID) (*model.Exercise, error)
	ListExercises(ctx context.Context) ([]*model.Exercise, error)
	DeleteExercise(ctx context.Context, id model.ExerciseID) error

	// Routine operations
	SaveRoutine(ctx context.Context, routine *model.Routine) error
	GetRoutine(ctx context.Context, id model.RoutineID) (*model.Routine, error)
	ListRoutinesByUser(ctx context.Context, userID model.UserID) ([]*model.Routine, error)
	DeleteRoutine(ctx context.Context, id model.RoutineID) error
}
