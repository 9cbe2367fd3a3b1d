package entity

import (
	"context"
	"time"
)

// Dentist is the practice profile a logged-in user can attach to their
// account from the dashboard.
type Dentist struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	PracticeName  string    `json:"practiceName"`
	LicenseNumber string    `json:"licenseNumber,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	ZipCode       string    `json:"zipCode,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DentistRepository interface {
	// Create inserts the profile and populates ID and CreatedAt. A
	// duplicate license number surfaces as ErrConflict.
	Create(ctx context.Context, d *Dentist) error

	// FindByUserID returns the practice profile for a user, or ErrNotFound.
	FindByUserID(ctx context.Context, userID string) (*Dentist, error)
}
