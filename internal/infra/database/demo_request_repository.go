package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dentalhub/leads-api/internal/entity"
)

type DemoRequestRepository struct {
	DB *sql.DB
}

func NewDemoRequestRepository(db *sql.DB) *DemoRequestRepository {
	return &DemoRequestRepository{DB: db}
}

var _ entity.DemoRequestRepository = (*DemoRequestRepository)(nil)

const demoRequestColumns = `
	id,
	first_name,
	last_name,
	email,
	COALESCE(phone, ''),
	COALESCE(practice_name, ''),
	COALESCE(practice_size, ''),
	COALESCE(current_software, ''),
	COALESCE(primary_challenge, ''),
	COALESCE(preferred_contact_time, ''),
	COALESCE(message, ''),
	status,
	created_at`

func scanDemoRequest(row interface{ Scan(...any) error }, req *entity.DemoRequest) error {
	return row.Scan(
		&req.ID,
		&req.FirstName,
		&req.LastName,
		&req.Email,
		&req.Phone,
		&req.PracticeName,
		&req.PracticeSize,
		&req.CurrentSoftware,
		&req.PrimaryChallenge,
		&req.PreferredContactTime,
		&req.Message,
		&req.Status,
		&req.CreatedAt,
	)
}

// Create inserts a new demo request. ID, status and created_at come back
// from the database so the returned record is the stored one.
func (r *DemoRequestRepository) Create(ctx context.Context, req *entity.DemoRequest) error {
	query := `
		INSERT INTO demo_requests (
			first_name, last_name, email, phone, practice_name,
			practice_size, current_software, primary_challenge,
			preferred_contact_time, message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, status, created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		req.FirstName,
		req.LastName,
		req.Email,
		nullString(req.Phone),
		nullString(req.PracticeName),
		nullString(req.PracticeSize),
		nullString(req.CurrentSoftware),
		nullString(req.PrimaryChallenge),
		nullString(req.PreferredContactTime),
		nullString(req.Message),
	).Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert demo request: %w", mapError(err))
	}

	return nil
}

func (r *DemoRequestRepository) List(ctx context.Context) ([]*entity.DemoRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+demoRequestColumns+` FROM demo_requests`)
	if err != nil {
		return nil, fmt.Errorf("failed to list demo requests: %w", mapError(err))
	}
	defer rows.Close()

	var reqs []*entity.DemoRequest
	for rows.Next() {
		var req entity.DemoRequest
		if err := scanDemoRequest(rows, &req); err != nil {
			return nil, fmt.Errorf("failed to scan demo request: %w", err)
		}
		reqs = append(reqs, &req)
	}
	return reqs, rows.Err()
}

// UpdateStatus sets the status and returns the updated row. The enumerated
// set is enforced a layer up; the column itself accepts any label.
func (r *DemoRequestRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.DemoRequest, error) {
	query := `
		UPDATE demo_requests SET status = $2 WHERE id = $1
		RETURNING ` + demoRequestColumns

	var req entity.DemoRequest
	if err := scanDemoRequest(r.DB.QueryRowContext(ctx, query, id, status), &req); err != nil {
		err = mapError(err)
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update demo request status: %w", err)
	}

	return &req, nil
}
