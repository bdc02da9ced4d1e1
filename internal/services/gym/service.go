package gym

import (
	"context"
	"fmt"

	"github.com/mrodgar/gymrat/internal/dependencies/clock"
	"github.com/mrodgar/gymrat/internal/dependencies/ids"
	"github.com/mrodgar/gymrat/internal/model"
	"github.com/mrodgar/gymrat/internal/storage"
)

// Service runs the training progression: bounded stat changes, the
// one-shot accessory purchase, and the audit log those produce. Every
// stat mutation and its audit entry are committed in one storage
// transaction.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ids     ids.Generator
}

func New(storage storage.Storage, clk clock.Clock, gen ids.Generator) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		ids:     gen,
	}
}

// Train raises one stat by amount, clamped at the stat ceiling, and
// records an audit entry for it
func (s *Service) Train(ctx context.Context, id model.UserID, stat model.Stat, amount int) (*model.User, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}
	if _, err := model.ParseStat(string(stat)); err != nil {
		return nil, err
	}

	return s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		if err := u.ApplyStatDelta(stat, amount); err != nil {
			return nil, nil, err
		}
		u.UpdatedAt = s.clock.Now()
		return s.newSession(id, fmt.Sprintf("Trained %s by %d", stat, amount)), nil, nil
	})
}

// Rest lowers all three stats by amount, each clamped at zero, and
// records a single audit entry
func (s *Service) Rest(ctx context.Context, id model.UserID, amount int) (*model.User, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	return s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		for _, stat := range model.Stats {
			if err := u.ApplyStatDelta(stat, -amount); err != nil {
				return nil, nil, err
			}
		}
		u.UpdatedAt = s.clock.Now()
		return s.newSession(id, fmt.Sprintf("Rested by %d", amount)), nil, nil
	})
}

// Purchase claims the accessory. It succeeds only when every stat is
// maxed and no accessory has been purchased before; the user flag and
// the accessory record are persisted together. The same error covers
// both an ineligible user and a repeat purchase.
func (s *Service) Purchase(ctx context.Context, id model.UserID, accessoryName string) (*model.User, *model.Accessory, error) {
	var acc *model.Accessory

	user, err := s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		if u.AccessoryPurchased || !u.StatsMaxed() {
			return nil, nil, model.ErrPurchaseDenied
		}

		acc = &model.Accessory{
			ID:          model.AccessoryID(s.ids.NewID("acc_")),
			Name:        accessoryName,
			UserID:      id,
			PurchasedAt: s.clock.Now(),
		}
		u.AccessoryPurchased = true
		u.AccessoryName = accessoryName
		u.UpdatedAt = s.clock.Now()
		return nil, acc, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, acc, nil
}

// Record appends a free-text audit entry for the user
func (s *Service) Record(ctx context.Context, id model.UserID, description string) (*model.TrainingSession, error) {
	var sess *model.TrainingSession

	_, err := s.storage.UpdateUser(ctx, id, func(u *model.User) (*model.TrainingSession, *model.Accessory, error) {
		sess = s.newSession(id, description)
		return sess, nil, nil
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Sessions returns the user's audit log, oldest entry first
func (s *Service) Sessions(ctx context.Context, id model.UserID) ([]*model.TrainingSession, error) {
	return s.storage.ListSessions(ctx, id)
}

func (s *Service) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

func (s *Service) newSession(id model.UserID, description string) *model.TrainingSession {
	return &model.TrainingSession{
		ID:          model.SessionID(s.ids.NewID("ts_")),
		UserID:      id,
		Description: description,
		Timestamp:   s.clock.Now(),
	}
}
