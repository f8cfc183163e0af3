package model

import "time"

// Customer is the profile row behind a member account. Phone is what checkout
// attaches to member orders; LoyaltyPoints only accrue on non-guest orders
// (accrual itself runs elsewhere).
type Customer struct {
	CustomerID    int64      `json:"customerid"`
	AuthID        int64      `json:"authid"`
	Email         string     `json:"email"`
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	LoyaltyPoints int64      `json:"loyalty_points"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}
