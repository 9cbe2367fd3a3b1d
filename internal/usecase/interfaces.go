package usecase

import (
	"context"

	"github.com/dentalhub/leads-api/internal/infra/queue"
)

// LeadEventPublisher notifies the downstream CRM pipeline about captured
// leads. Publishing is best-effort: a broker outage must never fail a
// submission, so use cases call it from a goroutine and only log failures.
type LeadEventPublisher interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
