package entity

import (
	"context"
	"time"
)

// Demo request lifecycle statuses. The core does not constrain transitions;
// any status may follow any other.
const (
	DemoStatusPending   = "pending"
	DemoStatusContacted = "contacted"
	DemoStatusScheduled = "scheduled"
	DemoStatusCompleted = "completed"
)

// DemoRequestStatuses is the full enumerated status set, in lifecycle order.
var DemoRequestStatuses = []string{
	DemoStatusPending,
	DemoStatusContacted,
	DemoStatusScheduled,
	DemoStatusCompleted,
}

// IsValidDemoStatus reports whether s is one of the enumerated statuses.
func IsValidDemoStatus(s string) bool {
	for _, v := range DemoRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Practice size buckets offered on the demo request form.
var PracticeSizes = []string{"1-5", "6-15", "16-50", "50+"}

// Primary challenges a prospect can pick on the demo request form.
var PrimaryChallenges = []string{
	"patient-scheduling",
	"insurance-claims",
	"patient-communication",
	"billing",
	"record-keeping",
	"other",
}

// Preferred contact time slots offered on the demo request form.
var PreferredContactTimes = []string{"morning", "afternoon", "evening"}

type DemoRequest struct {
	ID                   string    `json:"id"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	PracticeName         string    `json:"practiceName,omitempty"`
	PracticeSize         string    `json:"practiceSize,omitempty"`
	CurrentSoftware      string    `json:"currentSoftware,omitempty"`
	PrimaryChallenge     string    `json:"primaryChallenge,omitempty"`
	PreferredContactTime string    `json:"preferredContactTime,omitempty"`
	Message              string    `json:"message,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
}

type DemoRequestRepository interface {
	// Create inserts the request and populates ID, Status and CreatedAt
	// from the database. Duplicate emails are allowed; every accepted
	// submission yields its own row.
	Create(ctx context.Context, req *DemoRequest) error

	// List returns all demo requests in storage order.
	List(ctx context.Context) ([]*DemoRequest, error)

	// UpdateStatus sets the status on the request with the given id and
	// returns the updated row, or ErrNotFound if no such id exists.
	UpdateStatus(ctx context.Context, id, status string) (*DemoRequest, error)
}
