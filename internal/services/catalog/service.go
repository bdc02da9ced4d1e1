package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/mrodgar/gymrat/internal/dependencies/ids"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/storage"
)

// Service manages the exercise catalog and per-user routines.
// Exercises are a shared catalog with unique names; routines belong to
// a single user and reference exercises by id.
type Service struct {
	storage storage.Storage
	ids     ids.Generator
}

func New(storage storage.Storage, gen ids.Generator) *Service {
	return &Service{
		storage: storage,
		ids:     gen,
	}
}

// ExerciseParams carries the editable fields of an exercise
type ExerciseParams struct {
	Name              string
	Description       string
	Category          string
	StrengthImpact    int
	EnduranceImpact   int
	FlexibilityImpact int
}

func (s *Service) CreateExercise(ctx context.Context, params ExerciseParams) (*model.Exercise, error) {
	if err := s.checkExerciseName(ctx, params.Name, ""); err != nil {
		return nil, err
	}

	exercise := &model.Exercise{
		ID:                model.ExerciseID(s.ids.NewID("ex_")),
		Name:              params.Name,
		Description:       params.Description,
		Category:          params.Category,
		StrengthImpact:    params.StrengthImpact,
		EnduranceImpact:   params.EnduranceImpact,
		FlexibilityImpact: params.FlexibilityImpact,
	}
	if err := s.storage.SaveExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *Service) GetExercise(ctx context.Context, id model.ExerciseID) (*model.Exercise, error) {
	return s.storage.GetExercise(ctx, id)
}

func (s *Service) ListExercises(ctx context.Context) ([]*model.Exercise, error) {
	return s.storage.ListExercises(ctx)
}

func (s *Service) UpdateExercise(ctx context.Context, id model.ExerciseID, params ExerciseParams) (*model.Exercise, error) {
	exercise, err := s.storage.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkExerciseName(ctx, params.Name, id); err != nil {
		return nil, err
	}

	exercise.Name = params.Name
	exercise.Description = params.Description
	exercise.Category = params.Category
	exercise.StrengthImpact = params.StrengthImpact
	exercise.EnduranceImpact = params.EnduranceImpact
	exercise.FlexibilityImpact = params.FlexibilityImpact

	if err := s.storage.SaveExercise(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *Service) DeleteExercise(ctx context.Context, id model.ExerciseID) error {
	return s.storage.DeleteExercise(ctx, id)
}

// checkExerciseName enforces case-insensitive name uniqueness across
// the catalog, ignoring the exercise being edited
func (s *Service) checkExerciseName(ctx context.Context, name string, self model.ExerciseID) error {
	exercises, err := s.storage.ListExercises(ctx)
	if err != nil {
		return err
	}
	for _, e := range exercises {
		if e.ID != self && strings.EqualFold(e.Name, name) {
			return model.ErrExerciseNameTaken
		}
	}
	return nil
}

// RoutineParams carries the editable fields of a routine
type RoutineParams struct {
	Name        string
	ExerciseIDs []model.ExerciseID
}

func (s *Service) CreateRoutine(ctx context.Context, ownerID model.UserID, params RoutineParams) (*model.Routine, error) {
	if err := s.checkExerciseIDs(ctx, params.ExerciseIDs); err != nil {
		return nil, err
	}

	routine := &model.Routine{
		ID:          model.RoutineID(s.ids.NewID("rt_")),
		Name:        params.Name,
		UserID:      ownerID,
		ExerciseIDs: params.ExerciseIDs,
	}
	if err := s.storage.SaveRoutine(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// GetRoutine looks up a routine scoped to its owner. A routine that
// does not exist and a routine owned by someone else are
// indistinguishable to the caller.
func (s *Service) GetRoutine(ctx context.Context, id model.RoutineID, ownerID model.UserID) (*model.Routine, error) {
	routine, err := s.storage.GetRoutine(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrRoutineNotFound) {
			return nil, model.ErrRoutineNotFound
		}
		return nil, err
	}
	if routine.UserID != ownerID {
		return nil, model.ErrRoutineNotFound
	}
	return routine, nil
}

func (s *Service) ListRoutines(ctx context.Context, ownerID model.UserID) ([]*model.Routine, error) {
	return s.storage.ListRoutinesByUser(ctx, ownerID)
}

func (s *Service) UpdateRoutine(ctx context.Context, id model.RoutineID, ownerID model.UserID, params RoutineParams) (*model.Routine, error) {
	routine, err := s.GetRoutine(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.checkExerciseIDs(ctx, params.ExerciseIDs); err != nil {
		return nil, err
	}

	routine.Name = params.Name
	routine.ExerciseIDs = params.ExerciseIDs

	if err := s.storage.SaveRoutine(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *Service) DeleteRoutine(ctx context.Context, id model.RoutineID, ownerID model.UserID) error {
	if _, err := s.GetRoutine(ctx, id, ownerID); err != nil {
		return err
	}
	return s.storage.DeleteRoutine(ctx, id)
}

func (s *Service) checkExerciseIDs(ctx context.Context, exerciseIDs []model.ExerciseID) error {
	for _, id := range exerciseIDs {
		if _, err := s.storage.GetExercise(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
