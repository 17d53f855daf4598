package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents a user in the system.
type User struct {
	// ID unique identifier of the user. It is a time-ordered UUID (version 7).
	ID uuid.UUID `json:"id"`

	// Name is the user display name.
	Name string `json:"name"`

	// CreatedAt is the time at which the user was created in the system.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the time at which the user was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// UserEvent collects a user change. It can represent creation, update and deletion of a user.
type UserEvent struct {
	// ID is the event id.
	ID string

	// Before is the user state before the event. It will be nil in case of user-creations.
	Before *User

	// After is the user state after the event. It will be nil in case of deletions.
	After *User
}

// Op names the mutation described by the event.
func (e UserEvent) Op() string {
	switch {
	case e.Before == nil && e.After != nil:
		return "create"
	case e.Before != nil && e.After != nil:
		return "update"
	case e.Before != nil && e.After == nil:
		return "delete"
	default:
		return "unknown"
	}
}

// NewUserID issues a fresh user identifier.
func NewUserID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error generating user id: %w", err)
	}
	return id, nil
}

// Timestamp normalizes t to the precision kept by every storage backend: UTC, microseconds.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NextUpdatedAt returns the updated_at value for a user previously updated at prev.
// The result is never before now and always strictly after prev.
func NextUpdatedAt(prev, now time.Time) time.Time {
	now = Timestamp(now)
	if floor := prev.Add(time.Microsecond); now.Before(floor) {
		return Timestamp(floor)
	}
	return now
}
