package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrInvalidRole   = errors.New("invalid role")

	// Stat progression errors
	ErrInvalidStat   = errors.New("invalid stat")
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// Accessory errors
	ErrPurchaseDenied = errors.New("user does not meet requirements to purchase accessory or accessory already purchased")

	// Session errors
	ErrSessionNotFound = errors.New("training session not found")

	// Catalog errors
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrExerciseNameTaken = errors.New("exercise with this name already exists")
	ErrRoutineNotFound   = errors.New("routine not found or access denied")

	// Storage errors
	ErrConcurrentUpdate = errors.New("user record changed concurrently")
)
