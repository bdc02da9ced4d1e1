package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TrainRequest is the request body for training a stat
type TrainRequest struct {
	Stat   string `json:"stat"`
	Amount int    `json:"amount"`
}

// RestRequest is the request body for resting
type RestRequest struct {
	Amount int `json:"amount"`
}

// PurchaseRequest is the request body for purchasing the accessory
type PurchaseRequest struct {
	AccessoryName string `json:"accessory_name"`
}

// CreateSessionRequest is the request body for recording a session
type CreateSessionRequest struct {
	Description string `json:"description"`
}

// ExerciseRequest is the request body for creating or updating an exercise
type ExerciseRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Category          string `json:"category,omitempty"`
	StrengthImpact    int    `json:"strength_impact,omitempty"`
	EnduranceImpact   int    `json:"endurance_impact,omitempty"`
	FlexibilityImpact int    `json:"flexibility_impact,omitempty"`
}

// RoutineRequest is the request body for creating or updating a routine
type RoutineRequest struct {
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exercise_ids"`
}

// CreateUserRequest is the request body for an admin creating a user
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequest is the request body for an admin profile edit.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// SetRoleRequest is the request body for changing a user's role
type SetRoleRequest struct {
	Role string `json:"role"`
}

// ResetPasswordRequest is the request body for resetting a user's password
type ResetPasswordRequest struct {
	Password string `json:"password"`
}
