package model

// RoutineID uniquely identifies a routine
type RoutineID string

// Routine is a user-owned, ordered selection of catalog exercises.
// The child holds the owning user id; ownership is enforced by looking
// routines up by (id, owner).
type Routine struct {
	ID          RoutineID
	Name        string
	UserID      UserID
	ExerciseIDs []ExerciseID
}
