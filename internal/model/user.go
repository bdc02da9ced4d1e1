package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// Role controls what a user is allowed to do
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts a string to a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// MaxStat is the upper bound for every training stat
const MaxStat = 100

// User is an account plus its training progression state.
// Stats are always within [0, MaxStat]; AccessoryPurchased is a
// one-shot latch that no operation resets.
type User struct {
	ID           UserID
	Name         string
	Username     string // unique, compared case-insensitively
	PasswordHash string // bcrypt hash
	Role         Role

	Strength    int
	Endurance   int
	Flexibility int

	AccessoryPurchased bool
	AccessoryName      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyStatDelta adds delta to the named stat, clamped into [0, MaxStat].
// A stat already at a bound is left there, not treated as an error.
func (u *User) ApplyStatDelta(stat Stat, delta int) error {
	switch stat {
	case StatStrength:
		u.Strength = clampStat(u.Strength + delta)
	case StatEndurance:
		u.Endurance = clampStat(u.Endurance + delta)
	case StatFlexibility:
		u.Flexibility = clampStat(u.Flexibility + delta)
	default:
		return ErrInvalidStat
	}
	return nil
}

// StatsMaxed reports whether every stat is at MaxStat
func (u *User) StatsMaxed() bool {
	return u.Strength == MaxStat && u.Endurance == MaxStat && u.Flexibility == MaxStat
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
