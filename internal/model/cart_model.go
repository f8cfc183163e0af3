package model

// LineItem is one configured product instance in the cart: a menu item plus
// chosen customizations and a quantity. A fresh ID is minted on every add, so
// two identical configurations stay as separate line items (they are not
// merged).
type LineItem struct {
	ID             string          `json:"id"`
	MenuItemID     int64           `json:"menuitemid"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	BasePriceCents int64           `json:"base_price_cents"`
	Quantity       int             `json:"quantity"`
	Customizations []Customization `json:"customizations,omitempty"`
	TotalCents     int64           `json:"total_cents"`
	Category       string          `json:"category,omitempty"`
}

// LineItemDraft is what a handler builds from an add-to-cart request after
// pricing it against the menu. The cart store mints the ID and computes the
// total.
type LineItemDraft struct {
	MenuItemID     int64
	Name           string
	Description    string
	BasePriceCents int64
	Quantity       int
	Customizations []Customization
	Category       string
}

// CartState holds the cart line items in insertion order plus aggregates
// derived from them. TotalCents and ItemCount are recomputed from Items after
// every mutation and are never set independently.
type CartState struct {
	Items      []LineItem `json:"items"`
	TotalCents int64      `json:"total_cents"`
	ItemCount  int        `json:"item_count"`
}
