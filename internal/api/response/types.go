package response

import (
	"time"

	"github.com/mrodgar/gymrat/internal/model"
)

// User represents a user in API responses. The password hash is never
// serialized.
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Username           string    `json:"username"`
	Role               string    `json:"role"`
	Strength           int       `json:"strength"`
	Endurance          int       `json:"endurance"`
	Flexibility        int       `json:"flexibility"`
	AccessoryPurchased bool      `json:"accessory_purchased"`
	AccessoryName      string    `json:"accessory_name,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:                 string(u.ID),
		Name:               u.Name,
		Username:           u.Username,
		Role:               string(u.Role),
		Strength:           u.Strength,
		Endurance:          u.Endurance,
		Flexibility:        u.Flexibility,
		AccessoryPurchased: u.AccessoryPurchased,
		AccessoryName:      u.AccessoryName,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// AuthResponse is the response for authentication endpoints. The
// account fields sit at the top level next to the token.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// AuthResponseFromModel builds an AuthResponse for the given user and
// token
func AuthResponseFromModel(u *model.User, token string) AuthResponse {
	return AuthResponse{
		ID:       string(u.ID),
		Username: u.Username,
		Name:     u.Name,
		Role:     string(u.Role),
		Token:    token,
	}
}

// TrainingSession represents an audit entry in API responses
type TrainingSession struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrainingSessionFromModel converts model.TrainingSession
func TrainingSessionFromModel(s *model.TrainingSession) TrainingSession {
	return TrainingSession{
		ID:          string(s.ID),
		UserID:      string(s.UserID),
		Description: s.Description,
		Timestamp:   s.Timestamp,
	}
}

// TrainingSessionsFromModel converts a slice of sessions, preserving
// order
func TrainingSessionsFromModel(sessions []*model.TrainingSession) []TrainingSession {
	out := make([]TrainingSession, len(sessions))
	for i, s := range sessions {
		out[i] = TrainingSessionFromModel(s)
	}
	return out
}

// Accessory represents a purchased accessory in API responses
type Accessory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UserID      string    `json:"user_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// AccessoryFromModel converts model.Accessory
func AccessoryFromModel(a *model.Accessory) Accessory {
	return Accessory{
		ID:          string(a.ID),
		Name:        a.Name,
		UserID:      string(a.UserID),
		PurchasedAt: a.PurchasedAt,
	}
}

// Exercise represents a catalog exercise in API responses
type Exercise struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	StrengthImpact    int    `json:"strength_impact"`
	EnduranceImpact   int    `json:"endurance_impact"`
	FlexibilityImpact int    `json:"flexibility_impact"`
}

// ExerciseFromModel converts model.Exercise
func ExerciseFromModel(e *model.Exercise) Exercise {
	return Exercise{
		ID:                string(e.ID),
		Name:              e.Name,
		Description:       e.Description,
		Category:          e.Category,
		StrengthImpact:    e.StrengthImpact,
		EnduranceImpact:   e.EnduranceImpact,
		FlexibilityImpact: e.FlexibilityImpact,
	}
}

// ExercisesFromModel converts a slice of exercises
func ExercisesFromModel(exercises []*model.Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	for i, e := range exercises {
		out[i] = ExerciseFromModel(e)
	}
	return out
}

// Routine represents a routine in API responses
type Routine struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	UserID      string   `json:"user_id"`
	ExerciseIDs []string `json:"exercise_ids"`
}

// RoutineFromModel converts model.Routine
func RoutineFromModel(r *model.Routine) Routine {
	exerciseIDs := make([]string, len(r.ExerciseIDs))
	for i, id := range r.ExerciseIDs {
		exerciseIDs[i] = string(id)
	}
	return Routine{
		ID:          string(r.ID),
		Name:        r.Name,
		UserID:      string(r.UserID),
		ExerciseIDs: exerciseIDs,
	}
}

// RoutinesFromModel converts a slice of routines
func RoutinesFromModel(routines []*model.Routine) []Routine {
	out := make([]Routine, len(routines))
	for i, r := range routines {
		out[i] = RoutineFromModel(r)
	}
	return out
}

// UsersFromModel converts a slice of users
func UsersFromModel(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
