package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
)

// DemoRequestAdminUseCase backs the dashboard views over captured demo
// requests: listing and moving a request through the contact pipeline.
type DemoRequestAdminUseCase struct {
	Repo   entity.DemoRequestRepository
	Logger *zap.Logger
}

func NewDemoRequestAdminUseCase(repo entity.DemoRequestRepository, logger *zap.Logger) *DemoRequestAdminUseCase {
	return &DemoRequestAdminUseCase{Repo: repo, Logger: logger}
}

func (uc *DemoRequestAdminUseCase) List(ctx context.Context) ([]*entity.DemoRequest, error) {
	reqs, err := uc.Repo.List(ctx)
	if err != nil {
		uc.Logger.Error("failed to list demo requests", zap.Error(err))
		return nil, storageFailed()
	}
	return reqs, nil
}

// UpdateStatus moves a demo request to another status in the enumerated
// set. The legacy behavior accepted arbitrary strings; the set is now
// enforced here so the pipeline columns on the dashboard stay meaningful.
func (uc *DemoRequestAdminUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.DemoRequest, error) {
	status = strings.TrimSpace(status)
	if !entity.IsValidDemoStatus(status) {
		return nil, &DomainError{
			Code:    CodeInvalidStatus,
			Message: "status must be one of: " + strings.Join(entity.DemoRequestStatuses, ", "),
			Fields:  []ValidationError{{"status", "is not a known status"}},
		}
	}

	// A malformed id can never match a row; report it the same way as a
	// missing one instead of letting the uuid cast blow up in the driver.
	if _, err := uuid.Parse(id); err != nil {
		return nil, &DomainError{Code: CodeNotFound, Message: "demo request not found"}
	}

	req, err := uc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: CodeNotFound, Message: "demo request not found"}
		}
		uc.Logger.Error("failed to update demo request status", zap.String("id", id), zap.Error(err))
		return nil, storageFailed()
	}

	return req, nil
}
