package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is a point-in-time snapshot of the cart at checkout submission, not a
// live reference. Items are stored as jsonb; status is mutated only through
// the admin endpoints.
type Order struct {
	OrderID              int64       `json:"orderid"`
	CustomerID           *int64      `json:"customerid,omitempty"`
	Guest                bool        `json:"guest"`
	Email                string      `json:"email"`
	FirstName            string      `json:"first_name"`
	LastName             string      `json:"last_name"`
	Phone                string      `json:"phone"`
	Items                []LineItem  `json:"items"`
	SubtotalCents        int64       `json:"subtotal_cents"`
	TaxCents             int64       `json:"tax_cents"`
	GrandTotalCents      int64       `json:"grand_total_cents"`
	SpecialInstructions  string      `json:"special_instructions,omitempty"`
	Status               OrderStatus `json:"status"`
	EstimatedWaitMinutes int         `json:"estimated_wait_minutes"`
	PickupTime           time.Time   `json:"pickup_time"`
	CreatedAt            *time.Time  `json:"created_at,omitempty"`
}
