package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mrodgar/gymrat/internal/dependencies/mocks"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/services/token"
	"github.com/mrodgar/gymrat/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	tokens  *token.Service
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	var err error
	s.tokens, err = token.New([]byte("0123456789abcdef0123456789abcdef"), time.Hour, s.clock)
	s.Require().NoError(err)

	s.service = New(s.storage, s.tokens, s.clock, mocks.NewMockIDs())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, tok, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	s.Equal("Alice", user.Name)
	s.Equal("alice", user.Username)
	s.Equal(model.RoleUser, user.Role)
	s.Equal(0, user.Strength)
	s.Equal(0, user.Endurance)
	s.Equal(0, user.Flexibility)
	s.False(user.AccessoryPurchased)
	s.NotEmpty(tok)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	s.NotEmpty(user.PasswordHash)
	s.NotEqual("password123", user.PasswordHash)
}

func (s *ServiceSuite) TestRegisterTokenIsValid() {
	_, tok, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	subject, err := s.tokens.Validate(tok)
	s.Require().NoError(err)
	s.Equal("alice", subject)
}

func (s *ServiceSuite) TestRegisterFailsOnDuplicateUsername() {
	_, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	_, _, err = s.service.Register(s.ctx, "Other", "alice", "different")
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *ServiceSuite) TestRegisterDuplicateCheckIsCaseInsensitive() {
	_, _, err := s.service.Register(s.ctx, "Alice", "Alice", "password123")
	s.Require().NoError(err)

	_, _, err = s.service.Register(s.ctx, "Other", "ALICE", "different")
	s.ErrorIs(err, model.ErrUsernameTaken)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	user, tok, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.NotEmpty(tok)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, _, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// EnsureAdmin tests

func (s *ServiceSuite) TestEnsureAdminCreatesAdmin() {
	admin, err := s.service.EnsureAdmin(s.ctx, "Administrator", "admin", "changeme123")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, admin.Role)

	got, err := s.storage.GetUserByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, got.Role)
}

func (s *ServiceSuite) TestEnsureAdminIsIdempotent() {
	first, err := s.service.EnsureAdmin(s.ctx, "Administrator", "admin", "changeme123")
	s.Require().NoError(err)

	second, err := s.service.EnsureAdmin(s.ctx, "Administrator", "admin", "changeme123")
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *ServiceSuite) TestEnsureAdminSkipsWhenAnotherAdminExists() {
	_, err := s.service.CreateUser(s.ctx, "Boss", "boss", "password123", model.RoleAdmin)
	s.Require().NoError(err)

	admin, err := s.service.EnsureAdmin(s.ctx, "Administrator", "admin", "changeme123")
	s.Require().NoError(err)
	s.Equal("boss", admin.Username)

	_, err = s.storage.GetUserByUsername(s.ctx, "admin")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Admin operation tests

func (s *ServiceSuite) TestCreateUserWithRole() {
	user, err := s.service.CreateUser(s.ctx, "Bob", "bob", "password123", model.RoleAdmin)
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, user.Role)
}

func (s *ServiceSuite) TestUpdateUserPartialEdit() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	name := "Alicia"
	updated, err := s.service.UpdateUser(s.ctx, user.ID, UpdateParams{Name: &name})
	s.Require().NoError(err)
	s.Equal("Alicia", updated.Name)
	s.Equal("alice", updated.Username)
	s.Equal(model.RoleUser, updated.Role)
}

func (s *ServiceSuite) TestUpdateUserRejectsTakenUsername() {
	_, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)
	bob, _, err := s.service.Register(s.ctx, "Bob", "bob", "password123")
	s.Require().NoError(err)

	username := "alice"
	_, err = s.service.UpdateUser(s.ctx, bob.ID, UpdateParams{Username: &username})
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *ServiceSuite) TestUpdateUserAllowsOwnUsernameCaseChange() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	username := "Alice"
	updated, err := s.service.UpdateUser(s.ctx, user.ID, UpdateParams{Username: &username})
	s.Require().NoError(err)
	s.Equal("Alice", updated.Username)
}

func (s *ServiceSuite) TestUpdateUserDoesNotTouchStats() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	_, err = s.storage.UpdateUser(s.ctx, user.ID, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		u.Strength = 42
		return nil, nil, nil
	})
	s.Require().NoError(err)

	name := "Alicia"
	updated, err := s.service.UpdateUser(s.ctx, user.ID, UpdateParams{Name: &name})
	s.Require().NoError(err)
	s.Equal(42, updated.Strength)
}

func (s *ServiceSuite) TestChangeRoleTakesEffectOnNextLookup() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	_, err = s.service.ChangeRole(s.ctx, user.ID, model.RoleAdmin)
	s.Require().NoError(err)

	got, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, got.Role)
}

func (s *ServiceSuite) TestResetPassword() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "oldpassword")
	s.Require().NoError(err)

	s.Require().NoError(s.service.ResetPassword(s.ctx, user.ID, "newpassword"))

	_, _, err = s.service.Login(s.ctx, "alice", "oldpassword")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, _, err = s.service.Login(s.ctx, "alice", "newpassword")
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteUser() {
	user, _, err := s.service.Register(s.ctx, "Alice", "alice", "password123")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteUser(s.ctx, user.ID))

	_, err = s.service.GetUser(s.ctx, user.ID)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestDeleteUserNotFound() {
	s.ErrorIs(s.service.DeleteUser(s.ctx, "nope"), model.ErrUserNotFound)
}
