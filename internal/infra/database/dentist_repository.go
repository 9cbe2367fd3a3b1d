package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dentalhub/leads-api/internal/entity"
)

type DentistRepository struct {
	DB *sql.DB
}

func NewDentistRepository(db *sql.DB) *DentistRepository {
	return &DentistRepository{DB: db}
}

var _ entity.DentistRepository = (*DentistRepository)(nil)

func (r *DentistRepository) Create(ctx context.Context, d *entity.Dentist) error {
	query := `
		INSERT INTO dentists (user_id, practice_name, license_number, phone, address, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		d.UserID,
		d.PracticeName,
		nullString(d.LicenseNumber),
		nullString(d.Phone),
		nullString(d.Address),
		nullString(d.City),
		nullString(d.State),
		nullString(d.ZipCode),
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		err = mapError(err)
		if errors.Is(err, entity.ErrConflict) {
			return entity.ErrConflict
		}
		return fmt.Errorf("failed to insert dentist: %w", err)
	}

	return nil
}

func (r *DentistRepository) FindByUserID(ctx context.Context, userID string) (*entity.Dentist, error) {
	var d entity.Dentist
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, practice_name, COALESCE(license_number, ''), COALESCE(phone, ''),
		        COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''),
		        created_at
		 FROM dentists WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(
		&d.ID,
		&d.UserID,
		&d.PracticeName,
		&d.LicenseNumber,
		&d.Phone,
		&d.Address,
		&d.City,
		&d.State,
		&d.ZipCode,
		&d.CreatedAt,
	)
	if err != nil {
		err = mapError(err)
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dentist: %w", err)
	}

	return &d, nil
}
