package entity

import (
	"context"
	"time"
)

// Newsletter is a standing opt-in record, keyed by email. There is at most
// one row per address for the lifetime of the table: re-subscribing
// reactivates the existing row instead of creating a second one.
type Newsletter struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName,omitempty"`
	IsActive     bool      `json:"isActive"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type NewsletterRepository interface {
	// Subscribe inserts a row for a new email or reactivates the existing
	// one (is_active=true, subscribed_at refreshed, first name enriched if
	// newly provided), preserving its ID. The upsert is a single atomic
	// statement so concurrent first subscribes for the same email still
	// leave exactly one row.
	Subscribe(ctx context.Context, sub *Newsletter) error

	// Unsubscribe sets is_active=false for the email. Unknown emails are a
	// no-op, not an error.
	Unsubscribe(ctx context.Context, email string) error

	// ListActive returns all subscriptions with is_active=true.
	ListActive(ctx context.Context) ([]*Newsletter, error)
}
