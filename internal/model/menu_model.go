package model

import "time"

// MenuItem represents an entry in the menuitems table. Prices here are
// authoritative: cart drafts are always priced from this row, never from
// client-supplied values.
type MenuItem struct {
	MenuItemID  int64      `json:"menuitemid"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price_cents"`
	Category    string     `json:"category"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Available   bool       `json:"available"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Customization is a priced modifier attached to a line item (e.g. add bacon,
// +$2.50). Category groups mutually-exclusive choices in the presentation
// layer; the core only sums prices.
type Customization struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Category   string `json:"category"`
}
