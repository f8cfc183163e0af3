package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

func burgerDraft() model.LineItemDraft {
	return model.LineItemDraft{
		MenuItemID:     1,
		Name:           "Flame Burger",
		BasePriceCents: 12_99,
		Quantity:       2,
		Category:       "Burgers",
	}
}

func cheesesteakDraft() model.LineItemDraft {
	return model.LineItemDraft{
		MenuItemID:     2,
		Name:           "Cheesesteak",
		BasePriceCents: 5_99,
		Quantity:       1,
		Customizations: []model.Customization{{ID: 7, Name: "Add Bacon", PriceCents: 1_50, Category: "Extras"}},
		Category:       "Sandwiches",
	}
}

// requireInvariants checks the derived aggregates against the item list; the
// store must uphold this after every single transition.
func requireInvariants(t *testing.T, s model.CartState) {
	t.Helper()
	require.Equal(t, CartTotal(s.Items), s.TotalCents)
	require.Equal(t, ItemCount(s.Items), s.ItemCount)
}

func TestStoreAdd(t *testing.T) {
	s := NewStore()

	st := s.Add(burgerDraft())
	requireInvariants(t, st)
	require.Len(t, st.Items, 1)
	assert.NotEmpty(t, st.Items[0].ID)
	assert.Equal(t, int64(25_98), st.Items[0].TotalCents)

	st = s.Add(cheesesteakDraft())
	requireInvariants(t, st)
	require.Len(t, st.Items, 2)
	assert.Equal(t, int64(33_47), st.TotalCents)
	assert.Equal(t, 3, st.ItemCount)
}

func TestStoreAddDuplicateConfigurationsStaySeparate(t *testing.T) {
	s := NewStore()
	s.Add(burgerDraft())
	st := s.Add(burgerDraft())

	require.Len(t, st.Items, 2)
	assert.NotEqual(t, st.Items[0].ID, st.Items[1].ID)
	requireInvariants(t, st)
}

func TestStoreUpdateQuantityRecomputesItemTotal(t *testing.T) {
	s := NewStore()
	st := s.Add(cheesesteakDraft())
	id := st.Items[0].ID

	st = s.UpdateQuantity(id, 4)
	requireInvariants(t, st)
	assert.Equal(t, 4, st.Items[0].Quantity)
	assert.Equal(t, int64(29_96), st.Items[0].TotalCents)
}

func TestStoreUpdateQuantityZeroEqualsRemove(t *testing.T) {
	s := NewStore()
	st := s.Add(burgerDraft())
	st = s.Add(cheesesteakDraft())
	id := st.Items[1].ID

	viaUpdate := Reduce(st, updateQuantity{id: id, quantity: 0})
	viaRemove := Reduce(st, removeItem{id: id})
	assert.Equal(t, viaRemove, viaUpdate)

	st = s.UpdateQuantity(id, 0)
	requireInvariants(t, st)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "Flame Burger", st.Items[0].Name)
}

func TestStoreUnknownIDIsNoOp(t *testing.T) {
	s := NewStore()
	before := s.Add(burgerDraft())

	afterUpdate := s.UpdateQuantity("no-such-id", 5)
	assert.Equal(t, before, afterUpdate)

	afterRemove := s.Remove("no-such-id")
	assert.Equal(t, before, afterRemove)
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Add(burgerDraft())
	s.Add(cheesesteakDraft())

	st := s.Clear()
	requireInvariants(t, st)
	assert.Empty(t, st.Items)
	assert.Equal(t, int64(0), st.TotalCents)
	assert.Equal(t, 0, st.ItemCount)
}

func TestStoreInvariantsHoldThroughSequence(t *testing.T) {
	s := NewStore()

	st := s.Add(burgerDraft())
	requireInvariants(t, st)
	st = s.Add(cheesesteakDraft())
	requireInvariants(t, st)
	st = s.UpdateQuantity(st.Items[0].ID, 7)
	requireInvariants(t, st)
	st = s.Remove(st.Items[1].ID)
	requireInvariants(t, st)
	st = s.Add(burgerDraft())
	requireInvariants(t, st)
	st = s.Clear()
	requireInvariants(t, st)
}

func TestStoreLoadRejectsMissingItems(t *testing.T) {
	s := NewStore()
	st := s.Load(model.CartState{Items: nil, TotalCents: 99_99, ItemCount: 42})
	assert.Empty(t, st.Items)
	assert.Equal(t, int64(0), st.TotalCents)
	assert.Equal(t, 0, st.ItemCount)
}

func TestStoreLoadRecomputesAggregates(t *testing.T) {
	// persisted aggregates are never trusted; they are derived again
	items := []model.LineItem{{ID: "a", Name: "Flame Burger", BasePriceCents: 12_99, Quantity: 2, TotalCents: 25_98}}
	s := NewStore()
	st := s.Load(model.CartState{Items: items, TotalCents: 1, ItemCount: 99})
	requireInvariants(t, st)
	assert.Equal(t, int64(25_98), st.TotalCents)
	assert.Equal(t, 2, st.ItemCount)
}

func TestStoreSnapshotDoesNotAliasStore(t *testing.T) {
	s := NewStore()
	s.Add(cheesesteakDraft())

	snap := s.Snapshot()
	s.UpdateQuantity(snap.Items[0].ID, 9)
	s.Clear()

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, int64(7_49), snap.TotalCents)
}

func TestStoreOnChangeObservesEveryMutation(t *testing.T) {
	s := NewStore()
	var seen []model.CartState
	s.OnChange(func(st model.CartState) { seen = append(seen, st) })

	st := s.Add(burgerDraft())
	s.UpdateQuantity(st.Items[0].ID, 1)
	s.Clear()

	require.Len(t, seen, 3)
	for _, st := range seen {
		requireInvariants(t, st)
	}
	assert.Empty(t, seen[2].Items)
}
