package model

import "time"

// SessionID uniquely identifies a training session record
type SessionID string

// TrainingSession is an immutable audit record of a progression event.
// It holds a back-reference to its owner; the user side exposes no live
// collection, only a query by owner on the storage layer.
type TrainingSession struct {
	ID          SessionID
	UserID      UserID
	Description string
	Timestamp   time.Time
}
