package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dentalhub/leads-api/internal/entity"
)

type NewsletterRepository struct {
	DB *sql.DB
}

func NewNewsletterRepository(db *sql.DB) *NewsletterRepository {
	return &NewsletterRepository{DB: db}
}

var _ entity.NewsletterRepository = (*NewsletterRepository)(nil)

// Subscribe is a single atomic upsert keyed by email. A fresh address gets a
// new row; a known one is reactivated in place with subscribed_at refreshed
// and the first name enriched when the new submission carries one. Two
// concurrent first subscribes race on the unique index and the loser falls
// into the DO UPDATE arm, so exactly one row survives either way.
func (r *NewsletterRepository) Subscribe(ctx context.Context, sub *entity.Newsletter) error {
	query := `
		INSERT INTO newsletters (email, first_name)
		VALUES ($1, $2)
		ON CONFLICT (email)
		DO UPDATE SET
			is_active = TRUE,
			subscribed_at = NOW(),
			first_name = COALESCE(EXCLUDED.first_name, newsletters.first_name)
		RETURNING id, email, COALESCE(first_name, ''), is_active, subscribed_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		sub.Email,
		nullString(sub.FirstName),
	).Scan(
		&sub.ID,
		&sub.Email,
		&sub.FirstName,
		&sub.IsActive,
		&sub.SubscribedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert newsletter subscription: %w", mapError(err))
	}

	return nil
}

// Unsubscribe flips is_active off. Zero matched rows is fine; unsubscribe is
// idempotent end to end.
func (r *NewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE newsletters SET is_active = FALSE WHERE email = $1`,
		email,
	)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe newsletter: %w", mapError(err))
	}
	return nil
}

func (r *NewsletterRepository) ListActive(ctx context.Context) ([]*entity.Newsletter, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, email, COALESCE(first_name, ''), is_active, subscribed_at
		 FROM newsletters WHERE is_active = TRUE`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletter subscribers: %w", mapError(err))
	}
	defer rows.Close()

	var subs []*entity.Newsletter
	for rows.Next() {
		var s entity.Newsletter
		if err := rows.Scan(&s.ID, &s.Email, &s.FirstName, &s.IsActive, &s.SubscribedAt); err != nil {
			return nil, fmt.Errorf("failed to scan newsletter subscription: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
