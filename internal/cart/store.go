package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

// Action is the tagged union consumed by Reduce. Handlers never build actions
// directly; they go through the Store methods, which mint IDs and price items
// so the reducer itself stays pure.
type Action interface {
	isAction()
}

type addItem struct {
	item model.LineItem
}

type updateQuantity struct {
	id       string
	quantity int
}

type removeItem struct {
	id string
}

type clearCart struct{}

type loadCart struct {
	state model.CartState
}

func (addItem) isAction()        {}
func (updateQuantity) isAction() {}
func (removeItem) isAction()     {}
func (clearCart) isAction()      {}
func (loadCart) isAction()       {}

// Reduce applies one action and returns the next state. It never mutates its
// input; aggregates are always recomputed from the resulting item list.
func Reduce(s model.CartState, a Action) model.CartState {
	switch act := a.(type) {
	case addItem:
		items := make([]model.LineItem, 0, len(s.Items)+1)
		items = append(items, s.Items...)
		items = append(items, act.item)
		return recompute(items)

	case updateQuantity:
		if act.quantity <= 0 {
			return Reduce(s, removeItem{id: act.id})
		}
		items := make([]model.LineItem, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].ID == act.id {
				items[i].Quantity = act.quantity
				items[i].TotalCents = LineItemTotal(items[i].BasePriceCents, items[i].Customizations, act.quantity)
				return recompute(items)
			}
		}
		// unknown id: stale UI reference, not an error
		return s

	case removeItem:
		items := make([]model.LineItem, 0, len(s.Items))
		for _, it := range s.Items {
			if it.ID != act.id {
				items = append(items, it)
			}
		}
		if len(items) == len(s.Items) {
			return s
		}
		return recompute(items)

	case clearCart:
		return emptyState()

	case loadCart:
		if act.state.Items == nil {
			return emptyState()
		}
		return recompute(act.state.Items)
	}
	return s
}

func recompute(items []model.LineItem) model.CartState {
	return model.CartState{
		Items:      items,
		TotalCents: CartTotal(items),
		ItemCount:  ItemCount(items),
	}
}

func emptyState() model.CartState {
	return model.CartState{Items: []model.LineItem{}}
}

// Store owns one session's CartState. Every transition runs to completion
// under the mutex, so aggregates are never observed stale relative to items.
type Store struct {
	mu       sync.Mutex
	state    model.CartState
	onChange func(model.CartState)
}

func NewStore() *Store {
	return &Store{state: emptyState()}
}

// OnChange registers the observer notified after every mutation. The
// persistence adapter hangs off this hook; the store itself does no I/O.
func (s *Store) OnChange(fn func(model.CartState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Add mints a fresh line-item ID, computes the item total and appends it.
// Duplicate configurations are kept as separate line items.
func (s *Store) Add(draft model.LineItemDraft) model.CartState {
	item := model.LineItem{
		ID:             uuid.NewString(),
		MenuItemID:     draft.MenuItemID,
		Name:           draft.Name,
		Description:    draft.Description,
		BasePriceCents: draft.BasePriceCents,
		Quantity:       draft.Quantity,
		Customizations: draft.Customizations,
		Category:       draft.Category,
	}
	item.TotalCents = LineItemTotal(item.BasePriceCents, item.Customizations, item.Quantity)
	return s.dispatch(addItem{item: item})
}

// UpdateQuantity sets the quantity for a line item; 0 or less removes it.
func (s *Store) UpdateQuantity(id string, quantity int) model.CartState {
	return s.dispatch(updateQuantity{id: id, quantity: quantity})
}

// Remove deletes a line item. Unknown IDs are a no-op.
func (s *Store) Remove(id string) model.CartState {
	return s.dispatch(removeItem{id: id})
}

// Clear resets the cart to its initial empty state.
func (s *Store) Clear() model.CartState {
	return s.dispatch(clearCart{})
}

// Load replaces the state wholesale. Only the persistence adapter calls this,
// at rehydration; a state without an item slice is rejected and the cart stays
// empty. Load does not fire the change hook, so rehydration never writes back.
func (s *Store) Load(state model.CartState) model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, loadCart{state: state})
	return copyState(s.state)
}

// State returns a snapshot of the current state.
func (s *Store) State() model.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Snapshot is a deep copy for order building: the returned items share no
// memory with the store, so the order stays frozen even if the cart mutates
// afterwards.
func (s *Store) Snapshot() model.CartState {
	return s.State()
}

func (s *Store) dispatch(a Action) model.CartState {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := copyState(s.state)
	hook := s.onChange
	s.mu.Unlock()

	if hook != nil {
		hook(next)
	}
	return next
}

func copyState(s model.CartState) model.CartState {
	items := make([]model.LineItem, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].Customizations != nil {
			cs := make([]model.Customization, len(items[i].Customizations))
			copy(cs, items[i].Customizations)
			items[i].Customizations = cs
		}
	}
	return model.CartState{Items: items, TotalCents: s.TotalCents, ItemCount: s.ItemCount}
}
