package services

import (
	"testing"

	"cafesync/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  float64
	}{
		{
			name:  "single item, quantity two",
			items: []models.OrderItem{{Price: 100, Quantity: 2}},
			want:  200,
		},
		{
			name: "multiple items",
			items: []models.OrderItem{
				{Price: 120.50, Quantity: 1},
				{Price: 80, Quantity: 3},
				{Price: 45.25, Quantity: 2},
			},
			want: 120.50 + 80*3 + 45.25*2,
		},
		{
			name:  "zero quantity contributes nothing",
			items: []models.OrderItem{{Price: 999, Quantity: 0}},
			want:  0,
		},
		{
			name:  "no items",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.items))
		})
	}
}

// Discount and tax snapshots never feed into the stored total; the total is
// items-only by contract.
func TestComputeTotal_IgnoresDiscountAndTax(t *testing.T) {
	items := []models.OrderItem{{Price: 100, Quantity: 2}}
	order := models.Order{
		Items:           items,
		TotalPrice:      ComputeTotal(items),
		DiscountPercent: 10,
		TaxRate:         5,
	}
	assert.Equal(t, 200.0, order.TotalPrice)
}
