package entity

import (
	"context"
	"time"
)

// User is the minimal profile tied to the session identity. The ID comes
// from the session collaborator, not from this service.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type UserRepository interface {
	// FindByID returns the profile or ErrNotFound.
	FindByID(ctx context.Context, id string) (*User, error)

	// Upsert inserts the profile or, when the id already exists,
	// overwrites the mutable fields and refreshes updated_at.
	Upsert(ctx context.Context, user *User) error
}
