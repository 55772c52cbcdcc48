package usecase

import (
	"context"

	"leaddesk/internal/infra/queue"
)

// QueueProducerInterface publishes outreach dispatches when a lead
// transitions to contacted. Implementations must not block beyond the
// publish round trip.
type QueueProducerInterface interface {
	PublishOutreach(ctx context.Context, payload queue.OutreachPayload) error
}
