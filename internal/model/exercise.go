package model

// ExerciseID uniquely identifies a catalog exercise
type ExerciseID string

// Exercise is a catalog entry. The impact fields are descriptive data
// served to clients; train/rest take an explicit stat and amount and
// never consult them.
type Exercise struct {
	ID          ExerciseID
	Name        string // unique, compared case-insensitively
	Description string
	Category    string

	StrengthImpact    int
	EnduranceImpact   int
	FlexibilityImpact int
}
