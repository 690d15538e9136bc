package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name  string
		items []Item
		want  float64
	}{
		{"empty", nil, 0},
		{"single taxed line", []Item{{UnitPrice: 100, Quantity: 2, TaxRate: 20}}, 240.00},
		{"mixed tax", []Item{{UnitPrice: 10, Quantity: 3}, {UnitPrice: 5, Quantity: 1, TaxRate: 10}}, 35.50},
		{"float noise is rounded away", []Item{{UnitPrice: 0.1, Quantity: 3}}, 0.30},
		{"zero quantity", []Item{{UnitPrice: 99, Quantity: 0, TaxRate: 5}}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeTotal(tc.items))
		})
	}
}

func TestItemsFromRequest_Defaults(t *testing.T) {
	price := 12.5
	items := itemsFromRequest([]ItemRequest{{Name: "Setup", UnitPrice: &price}})

	assert.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, 0.0, items[0].TaxRate)
	assert.Equal(t, 12.5, items[0].UnitPrice)
}
