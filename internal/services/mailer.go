package services

import (
	"context"
	"log/slog"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

// Mailer sends the order-confirmation notification. It is fire-and-forget
// from the workflow's point of view: a failure is logged and softened to a
// warning, never a rolled-back order.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail string, order *model.Order) error
}

// LogMailer stands in when no mail provider is configured (local runs).
type LogMailer struct {
	Log *slog.Logger
}

func (m LogMailer) SendOrderConfirmation(_ context.Context, toEmail string, order *model.Order) error {
	m.Log.Info("order confirmation (mail disabled)", "to", toEmail, "orderid", order.OrderID)
	return nil
}
