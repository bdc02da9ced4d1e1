package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mrodgar/gymrat/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newUser(id model.UserID, username string) *model.User {
	return &model.User{
		ID:       id,
		Name:     "Test User",
		Username: username,
		Role:     model.RoleUser,
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := s.newUser("u_1", "alice")
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsernameIsCaseInsensitive() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "Alice")))

	got, err := s.storage.GetUserByUsername(s.ctx, "aLiCe")
	s.Require().NoError(err)
	s.Equal(model.UserID("u_1"), got.ID)
}

func (s *StorageSuite) TestGetUserReturnsCopy() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))

	got, _ := s.storage.GetUser(s.ctx, "u_1")
	got.Strength = 50

	again, _ := s.storage.GetUser(s.ctx, "u_1")
	s.Equal(0, again.Strength)
}

func (s *StorageSuite) TestDeleteUserRemovesIndexAndOwnedRecords() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))
	s.Require().NoError(s.storage.SaveRoutine(s.ctx, &model.Routine{ID: "rt_1", Name: "Legs", UserID: "u_1"}))

	s.Require().NoError(s.storage.DeleteUser(s.ctx, "u_1"))

	_, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)
	_, err = s.storage.GetRoutine(s.ctx, "rt_1")
	s.ErrorIs(err, model.ErrRoutineNotFound)
}

// UpdateUser tests

func (s *StorageSuite) TestUpdateUserCommitsUserAndSessionTogether() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))

	updated, err := s.storage.UpdateUser(s.ctx, "u_1", func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		u.Strength = 10
		return &model.TrainingSession{
			ID:          "ts_1",
			UserID:      u.ID,
			Description: "Trained STRENGTH by 10",
			Timestamp:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		}, nil, nil
	})
	s.Require().NoError(err)
	s.Equal(10, updated.Strength)

	sessions, err := s.storage.ListSessions(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal("Trained STRENGTH by 10", sessions[0].Description)
}

func (s *StorageSuite) TestUpdateUserMutatorErrorLeavesRecordUntouched() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))

	_, err := s.storage.UpdateUser(s.ctx, "u_1", func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		u.Strength = 99
		return &model.TrainingSession{ID: "ts_1", UserID: u.ID}, nil, model.ErrPurchaseDenied
	})
	s.ErrorIs(err, model.ErrPurchaseDenied)

	got, _ := s.storage.GetUser(s.ctx, "u_1")
	s.Equal(0, got.Strength)

	sessions, _ := s.storage.ListSessions(s.ctx, "u_1")
	s.Empty(sessions)
}

func (s *StorageSuite) TestUpdateUserNotFound() {
	_, err := s.storage.UpdateUser(s.ctx, "nope", func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		return nil, nil, nil
	})
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUserReindexesChangedUsername() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))

	_, err := s.storage.UpdateUser(s.ctx, "u_1", func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		u.Username = "alicia"
		return nil, nil, nil
	})
	s.Require().NoError(err)

	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)

	got, err := s.storage.GetUserByUsername(s.ctx, "ALICIA")
	s.Require().NoError(err)
	s.Equal(model.UserID("u_1"), got.ID)
}

func (s *StorageSuite) TestUpdateUserConcurrentIncrementsDoNotLoseUpdates() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))

	const workers = 50
	// Failing from a spawned goroutine is unsafe, so collect errors
	// and assert once the workers are done
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.storage.UpdateUser(s.ctx, "u_1", func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
				return nil, nil, u.ApplyStatDelta(model.StatStrength, 1)
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	got, _ := s.storage.GetUser(s.ctx, "u_1")
	s.Equal(workers, got.Strength)
}

// Session tests

func (s *StorageSuite) TestListSessionsKeepsAppendOrder() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, s.newUser("u_1", "alice")))

	for _, desc := range []string{"first", "second", "third"} {
		d := desc
		_, err := s.storage.UpdateUser(s.ctx, "u_1", func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
			return &model.TrainingSession{ID: model.SessionID("ts_" + d), UserID: u.ID, Description: d}, nil, nil
		})
		s.Require().NoError(err)
	}

	sessions, err := s.storage.ListSessions(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal("first", sessions[0].Description)
	s.Equal("second", sessions[1].Description)
	s.Equal("third", sessions[2].Description)
}

func (s *StorageSuite) TestListSessionsUnknownUser() {
	_, err := s.storage.ListSessions(s.ctx, "nope")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Exercise tests

func (s *StorageSuite) TestSaveGetDeleteExercise() {
	e := &model.Exercise{ID: "ex_1", Name: "Squat", Category: "Legs", StrengthImpact: 5}
	s.Require().NoError(s.storage.SaveExercise(s.ctx, e))

	got, err := s.storage.GetExercise(s.ctx, "ex_1")
	s.Require().NoError(err)
	s.Equal("Squat", got.Name)

	s.Require().NoError(s.storage.DeleteExercise(s.ctx, "ex_1"))
	_, err = s.storage.GetExercise(s.ctx, "ex_1")
	s.ErrorIs(err, model.ErrExerciseNotFound)
}

// Routine tests

func (s *StorageSuite) TestListRoutinesByUserFiltersOwner() {
	s.Require().NoError(s.storage.SaveRoutine(s.ctx, &model.Routine{ID: "rt_1", Name: "Push", UserID: "u_1"}))
	s.Require().NoError(s.storage.SaveRoutine(s.ctx, &model.Routine{ID: "rt_2", Name: "Pull", UserID: "u_2"}))

	routines, err := s.storage.ListRoutinesByUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Require().Len(routines, 1)
	s.Equal(model.RoutineID("rt_1"), routines[0].ID)
}
