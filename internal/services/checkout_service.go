package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/cart"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

// OrderStore is what the workflow needs from the persistence collaborator.
type OrderStore interface {
	Insert(ctx context.Context, o *model.Order) error
}

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
)

const maxInstructionsRunes = 500

// CheckoutService runs the order-placement workflow: totals, tax, wait
// estimate, pickup time, persistence, notification, cart clear. A submission
// moves Idle -> Submitting -> Succeeded/Failed; the in-flight set guarantees
// at most one Submitting per cart session.
type CheckoutService struct {
	orders  OrderStore
	mailer  Mailer
	carts   *cart.Manager
	taxRate float64
	log     *slog.Logger

	inflight sync.Map // sessionID -> struct{}
	now      func() time.Time
}

func NewCheckoutService(orders OrderStore, mailer Mailer, carts *cart.Manager, taxRate float64, log *slog.Logger) *CheckoutService {
	return &CheckoutService{
		orders:  orders,
		mailer:  mailer,
		carts:   carts,
		taxRate: taxRate,
		log:     log,
		now:     time.Now,
	}
}

// TaxRate is the single canonical rate; totals shown anywhere come from here.
func (s *CheckoutService) TaxRate() float64 {
	return s.taxRate
}

// CheckoutResult is carried to the confirmation view.
type CheckoutResult struct {
	Order *model.Order `json:"order"`
	// NotificationSent is false when the order was placed but the
	// confirmation email could not be sent.
	NotificationSent bool `json:"notification_sent"`
}

// Submit places the order for one cart session. On any error the cart is left
// untouched so the customer can retry without re-entering items.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, contact Contact, specialInstructions string) (*CheckoutResult, error) {
	if _, loaded := s.inflight.LoadOrStore(sessionID, struct{}{}); loaded {
		return nil, ErrSubmissionInFlight
	}
	defer s.inflight.Delete(sessionID)

	if contact.Guest {
		if err := ValidateGuestContact(contact); err != nil {
			return nil, err
		}
	} else if contact.Email == "" {
		return nil, errors.New("member contact is missing an email")
	}

	store := s.carts.Session(ctx, sessionID)
	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := snap.TotalCents
	tax := TaxCents(subtotal, s.taxRate)
	grand := subtotal + tax
	wait := EstimatedWaitMinutes(grand)
	now := s.now()

	order := &model.Order{
		CustomerID:           contact.CustomerID,
		Guest:                contact.Guest,
		Email:                contact.Email,
		FirstName:            contact.FirstName,
		LastName:             contact.LastName,
		Phone:                contact.Phone,
		Items:                snap.Items,
		SubtotalCents:        subtotal,
		TaxCents:             tax,
		GrandTotalCents:      grand,
		SpecialInstructions:  SanitizeInstructions(specialInstructions),
		Status:               model.OrderStatusPending,
		EstimatedWaitMinutes: wait,
		PickupTime:           now.Add(time.Duration(wait) * time.Minute),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		s.log.Error("order insert failed", "session", sessionID, "error", err)
		return nil, fmt.Errorf("order could not be placed: %w", err)
	}

	sent := true
	if err := s.mailer.SendOrderConfirmation(ctx, contact.Email, order); err != nil {
		sent = false
		s.log.Warn("order confirmation email failed", "orderid", order.OrderID, "error", err)
	}

	store.Clear()

	return &CheckoutResult{Order: order, NotificationSent: sent}, nil
}

// TaxCents rounds subtotal * rate to whole cents.
func TaxCents(subtotalCents int64, rate float64) int64 {
	return int64(math.Round(float64(subtotalCents) * rate))
}

// EstimatedWaitMinutes is the tiered wait estimate over the grand total.
// Upper bounds are inclusive: up to $40 is 15 minutes, up to $70 is 20,
// larger orders are 40.
func EstimatedWaitMinutes(grandTotalCents int64) int {
	switch {
	case grandTotalCents <= 40_00:
		return 15
	case grandTotalCents <= 70_00:
		return 20
	default:
		return 40
	}
}

var markupStripper = strings.NewReplacer("<", "", ">", "", "&", "", "\"", "", "`", "")

// SanitizeInstructions strips characters that could read as markup and caps
// the text at 500 characters before it is persisted.
func SanitizeInstructions(s string) string {
	s = strings.TrimSpace(markupStripper.Replace(s))
	runes := []rune(s)
	if len(runes) > maxInstructionsRunes {
		s = string(runes[:maxInstructionsRunes])
	}
	return s
}
