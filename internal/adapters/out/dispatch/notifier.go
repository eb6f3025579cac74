// Package dispatch provides the outbound adapter surfacing urgency
// escalations. Delivery of a notification is best-effort; the dispatch side
// re-reads the active view on its own schedule regardless.
package dispatch

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// SlogDispatchNotifier implements ports.DispatchNotifier over structured logs.
type SlogDispatchNotifier struct {
	logger *slog.Logger
}

var _ ports.DispatchNotifier = (*SlogDispatchNotifier)(nil)

// NewSlogDispatchNotifier creates a notifier writing to the given logger.
func NewSlogDispatchNotifier(logger *slog.Logger) *SlogDispatchNotifier {
	return &SlogDispatchNotifier{
		logger: logger.With("component", "dispatch_notifier"),
	}
}

// NotifyOverdue reports an order classified late or urgent.
func (n *SlogDispatchNotifier) NotifyOverdue(ctx context.Context, orderID kernel.UUID, bucket services.UrgencyBucket, overdueBy string) {
	n.logger.WarnContext(ctx, "order needs dispatch attention",
		"order_id", orderID.String(),
		"urgency", bucket.String(),
		"overdue_by", overdueBy,
	)
}
