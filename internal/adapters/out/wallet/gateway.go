// Package wallet provides the outbound adapter emitting worker fee credits.
// The engine treats credit emission as fire-and-forget: the order transition
// is already committed when Credit runs, and the wallet collaborator owns
// retries for anything that fails past this boundary.
package wallet

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// SlogWalletGateway implements ports.WalletGateway by logging each credit
// event in a structured form the wallet collaborator consumes downstream.
type SlogWalletGateway struct {
	logger *slog.Logger
}

// NewSlogWalletGateway creates a wallet gateway writing to the given logger.
func NewSlogWalletGateway(logger *slog.Logger) *SlogWalletGateway {
	return &SlogWalletGateway{
		logger: logger.With("component", "wallet_gateway"),
	}
}

// Credit emits the given credit events. Nothing is returned: a failed
// emission is a warning for operators, never a reason to touch order state.
func (g *SlogWalletGateway) Credit(ctx context.Context, events []ports.CreditEvent) {
	for _, event := range events {
		g.logger.InfoContext(ctx, "wallet credit emitted",
			"order_id", event.OrderID.String(),
			"worker_id", event.WorkerID.String(),
			"kind", string(event.Kind),
			"amount", event.Amount.String(),
		)
	}
}
