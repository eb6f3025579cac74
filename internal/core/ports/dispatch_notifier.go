package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// DispatchNotifier surfaces urgency escalations to the dispatch side.
// Like wallet credits, notification delivery is best-effort: a failed
// notification is the collaborator's retry problem, not the engine's.
type DispatchNotifier interface {
	// NotifyOverdue reports an order classified as late or urgent,
	// together with how far past the deadline it is rendered for display.
	NotifyOverdue(ctx context.Context, orderID kernel.UUID, bucket services.UrgencyBucket, overdueBy string)
}
