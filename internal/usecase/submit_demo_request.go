package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
	"github.com/dentalhub/leads-api/internal/infra/queue"
)

// SubmitDemoRequestUseCase is the public intake path for demo requests:
// validate, persist, then announce the lead to the CRM pipeline.
type SubmitDemoRequestUseCase struct {
	Repo      entity.DemoRequestRepository
	Publisher LeadEventPublisher
	Logger    *zap.Logger
}

func NewSubmitDemoRequestUseCase(
	repo entity.DemoRequestRepository,
	publisher LeadEventPublisher,
	logger *zap.Logger,
) *SubmitDemoRequestUseCase {
	return &SubmitDemoRequestUseCase{
		Repo:      repo,
		Publisher: publisher,
		Logger:    logger,
	}
}

func (uc *SubmitDemoRequestUseCase) Execute(ctx context.Context, input SubmitDemoRequestInput) (*entity.DemoRequest, error) {
	if fields := ValidateSubmitDemoRequestInput(input); len(fields) > 0 {
		return nil, validationFailed(fields)
	}

	req := &entity.DemoRequest{
		FirstName:            strings.TrimSpace(input.FirstName),
		LastName:             strings.TrimSpace(input.LastName),
		Email:                strings.TrimSpace(input.Email),
		Phone:                input.Phone,
		PracticeName:         input.PracticeName,
		PracticeSize:         input.PracticeSize,
		CurrentSoftware:      input.CurrentSoftware,
		PrimaryChallenge:     input.PrimaryChallenge,
		PreferredContactTime: input.PreferredContactTime,
		Message:              input.Message,
	}

	if err := uc.Repo.Create(ctx, req); err != nil {
		uc.Logger.Error("failed to create demo request", zap.Error(err))
		return nil, storageFailed()
	}

	// Best-effort: the submission already succeeded, a broker hiccup only
	// delays the CRM.
	if uc.Publisher != nil {
		go func(r entity.DemoRequest) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := uc.Publisher.PublishLeadCaptured(ctx, queue.LeadCapturedPayload{
				LeadID:       r.ID,
				Source:       queue.SourceDemoRequest,
				Email:        r.Email,
				FirstName:    r.FirstName,
				LastName:     r.LastName,
				Phone:        r.Phone,
				PracticeName: r.PracticeName,
				CapturedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
			})
			if err != nil {
				uc.Logger.Warn("failed to publish lead event", zap.String("lead_id", r.ID), zap.Error(err))
			}
		}(*req)
	}

	return req, nil
}
