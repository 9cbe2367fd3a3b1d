package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dentalhub/leads-api/internal/entity"
	"github.com/dentalhub/leads-api/internal/infra/queue"
)

// NewsletterUseCase covers the opt-in side of the newsletter: subscribe
// (which reactivates a lapsed subscription in place) and unsubscribe.
type NewsletterUseCase struct {
	Repo      entity.NewsletterRepository
	Publisher LeadEventPublisher
	Logger    *zap.Logger
}

func NewNewsletterUseCase(
	repo entity.NewsletterRepository,
	publisher LeadEventPublisher,
	logger *zap.Logger,
) *NewsletterUseCase {
	return &NewsletterUseCase{
		Repo:      repo,
		Publisher: publisher,
		Logger:    logger,
	}
}

func (uc *NewsletterUseCase) Subscribe(ctx context.Context, input SubscribeNewsletterInput) (*entity.Newsletter, error) {
	if fields := ValidateSubscribeNewsletterInput(input); len(fields) > 0 {
		return nil, validationFailed(fields)
	}

	sub := &entity.Newsletter{
		Email:     strings.TrimSpace(input.Email),
		FirstName: strings.TrimSpace(input.FirstName),
	}

	if err := uc.Repo.Subscribe(ctx, sub); err != nil {
		uc.Logger.Error("failed to subscribe newsletter", zap.Error(err))
		return nil, storageFailed()
	}

	if uc.Publisher != nil {
		go func(s entity.Newsletter) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := uc.Publisher.PublishLeadCaptured(ctx, queue.LeadCapturedPayload{
				LeadID:     s.ID,
				Source:     queue.SourceNewsletter,
				Email:      s.Email,
				FirstName:  s.FirstName,
				CapturedAt: s.SubscribedAt.UTC().Format(time.RFC3339),
			})
			if err != nil {
				uc.Logger.Warn("failed to publish lead event", zap.String("lead_id", s.ID), zap.Error(err))
			}
		}(*sub)
	}

	return sub, nil
}

// Unsubscribe is deliberately permissive: the only rejected input is a
// missing email. Unknown addresses and repeat calls report success so that
// unsubscribe links stay safe to click more than once.
func (uc *NewsletterUseCase) Unsubscribe(ctx context.Context, input UnsubscribeNewsletterInput) error {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return validationFailed([]ValidationError{{"email", "is required"}})
	}

	if err := uc.Repo.Unsubscribe(ctx, email); err != nil {
		uc.Logger.Error("failed to unsubscribe newsletter", zap.Error(err))
		return storageFailed()
	}

	return nil
}

// ListActiveSubscribers returns everyone currently opted in.
func (uc *NewsletterUseCase) ListActiveSubscribers(ctx context.Context) ([]*entity.Newsletter, error) {
	subs, err := uc.Repo.ListActive(ctx)
	if err != nil {
		uc.Logger.Error("failed to list newsletter subscribers", zap.Error(err))
		return nil, storageFailed()
	}
	return subs, nil
}
