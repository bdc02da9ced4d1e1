package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrodgar/gymrat/internal/dependencies/clock"
	"github.com/mrodgar/gymrat/internal/dependencies/ids"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/services/token"
	"github.com/mrodgar/gymrat/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles registration, credential checks and user management.
// Passwords are stored as bcrypt hashes only.
type Service struct {
	storage storage.Storage
	tokens  *token.Service
	clock   clock.Clock
	ids     ids.Generator
}

// New creates a new auth service
func New(storage storage.Storage, tokens *token.Service, clk clock.Clock, gen ids.Generator) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		clock:   clk,
		ids:     gen,
	}
}

// Register creates a USER account with zeroed stats and issues a token.
// The username must be unique, compared case-insensitively.
func (s *Service) Register(ctx context.Context, name, username, password string) (*model.User, string, error) {
	user, err := s.createUser(ctx, name, username, password, model.RoleUser)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// Login verifies credentials and issues a token. Unknown username and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// EnsureAdmin creates the default administrator account at startup if
// no administrator exists yet. Safe to call on every boot.
func (s *Service) EnsureAdmin(ctx context.Context, name, username, password string) (*model.User, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			return u, nil
		}
	}

	return s.createUser(ctx, name, username, password, model.RoleAdmin)
}

// CreateUser creates an account with the given role (admin operation)
func (s *Service) CreateUser(ctx context.Context, name, username, password string, role model.Role) (*model.User, error) {
	return s.createUser(ctx, name, username, password, role)
}

// ListUsers returns every account (admin operation)
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// GetUser returns a single account
func (s *Service) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// UpdateParams holds optional profile fields for an admin edit. Nil
// fields are left unchanged; stats and accessory state are never
// touched by profile edits.
type UpdateParams struct {
	Name     *string
	Username *string
	Role     *model.Role
}

// UpdateUser applies a partial profile edit (admin operation)
func (s *Service) UpdateUser(ctx context.Context, id model.UserID, params UpdateParams) (*model.User, error) {
	if params.Username != nil {
		existing, err := s.storage.GetUserByUsername(ctx, *params.Username)
		if err != nil && !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, model.ErrUsernameTaken
		}
	}

	return s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		if params.Name != nil {
			u.Name = *params.Name
		}
		if params.Username != nil {
			u.Username = *params.Username
		}
		if params.Role != nil {
			u.Role = *params.Role
		}
		u.UpdatedAt = s.clock.Now()
		return nil, nil, nil
	})
}

// ChangeRole sets the account role (admin operation). The change is
// picked up on the user's next request; tokens are not re-issued.
func (s *Service) ChangeRole(ctx context.Context, id model.UserID, role model.Role) (*model.User, error) {
	return s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		u.Role = role
		u.UpdatedAt = s.clock.Now()
		return nil, nil, nil
	})
}

// ResetPassword replaces the account password (admin operation)
func (s *Service) ResetPassword(ctx context.Context, id model.UserID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		u.PasswordHash = string(hash)
		u.UpdatedAt = s.clock.Now()
		return nil, nil, nil
	})
	return err
}

// DeleteUser removes an account (admin operation)
func (s *Service) DeleteUser(ctx context.Context, id model.UserID) error {
	return s.storage.DeleteUser(ctx, id)
}

func (s *Service) createUser(ctx context.Context, name, username, password string, role model.Role) (*model.User, error) {
	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	user := &model.User{
		ID:           model.UserID(s.ids.NewID("u_")),
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
