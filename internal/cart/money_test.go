package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

func TestLineItemTotal(t *testing.T) {
	tests := []struct {
		name           string
		base           int64
		customizations []model.Customization
		quantity       int
		want           int64
	}{
		{
			name:     "no customizations",
			base:     12_99,
			quantity: 2,
			want:     25_98,
		},
		{
			name: "base plus customizations times quantity",
			base: 10_00,
			customizations: []model.Customization{
				{Name: "Add Bacon", PriceCents: 1_50},
				{Name: "Extra Cheese", PriceCents: 2_00},
			},
			quantity: 3,
			want:     40_50,
		},
		{
			name:     "single unit",
			base:     5_99,
			quantity: 1,
			customizations: []model.Customization{
				{Name: "Add Bacon", PriceCents: 1_50},
			},
			want: 7_49,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineItemTotal(tt.base, tt.customizations, tt.quantity))
		})
	}
}

func TestCartTotalAndItemCount(t *testing.T) {
	items := []model.LineItem{
		{BasePriceCents: 12_99, Quantity: 2, TotalCents: 25_98},
		{BasePriceCents: 5_99, Quantity: 1, TotalCents: 7_49,
			Customizations: []model.Customization{{Name: "Add Bacon", PriceCents: 1_50}}},
	}

	assert.Equal(t, int64(33_47), CartTotal(items))
	assert.Equal(t, 3, ItemCount(items))

	// order independent
	reversed := []model.LineItem{items[1], items[0]}
	assert.Equal(t, CartTotal(items), CartTotal(reversed))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, int64(0), CartTotal(nil))
	assert.Equal(t, 0, ItemCount(nil))
}
