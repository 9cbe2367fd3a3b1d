package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
)

// DentistProfileUseCase manages the practice profile attached to a
// logged-in account.
type DentistProfileUseCase struct {
	Repo   entity.DentistRepository
	Logger *zap.Logger
}

func NewDentistProfileUseCase(repo entity.DentistRepository, logger *zap.Logger) *DentistProfileUseCase {
	return &DentistProfileUseCase{Repo: repo, Logger: logger}
}

func (uc *DentistProfileUseCase) Create(ctx context.Context, userID string, input CreateDentistInput) (*entity.Dentist, error) {
	if fields := ValidateCreateDentistInput(input); len(fields) > 0 {
		return nil, validationFailed(fields)
	}

	d := &entity.Dentist{
		UserID:        userID,
		PracticeName:  input.PracticeName,
		LicenseNumber: input.LicenseNumber,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
	}

	if err := uc.Repo.Create(ctx, d); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, &DomainError{
				Code:    CodeValidation,
				Message: "license number is already registered",
				Fields:  []ValidationError{{"licenseNumber", "is already registered"}},
			}
		}
		uc.Logger.Error("failed to create dentist profile", zap.String("user_id", userID), zap.Error(err))
		return nil, storageFailed()
	}

	return d, nil
}

func (uc *DentistProfileUseCase) GetByUserID(ctx context.Context, userID string) (*entity.Dentist, error) {
	d, err := uc.Repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: CodeNotFound, Message: "dentist profile not found"}
		}
		uc.Logger.Error("failed to fetch dentist profile", zap.String("user_id", userID), zap.Error(err))
		return nil, storageFailed()
	}
	return d, nil
}
