package model

import "time"

// AccessoryID uniquely identifies an accessory
type AccessoryID string

// Accessory is the one-time cosmetic unlock, created exactly once per
// user at the moment eligibility is satisfied
type Accessory struct {
	ID          AccessoryID
	Name        string
	UserID      UserID
	PurchasedAt time.Time
}
