package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrder_TakeawayHasNoTable(t *testing.T) {
	order := Order{
		ID:            primitive.NewObjectID(),
		CustomOrderID: "ORD-2026-31-08-1",
		Items:         []OrderItem{{Product: primitive.NewObjectID(), Quantity: 2, Price: 100}},
		TotalPrice:    200,
		Status:        StatusPending,
		PaymentMethod: PaymentCash,
		CreatedAt:     time.Now(),
	}

	assert.Nil(t, order.Table)

	raw, err := json.Marshal(order)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"table"`)
}

func TestAllStatuses(t *testing.T) {
	assert.Equal(t, []string{"pending", "preparing", "served", "cancelled"}, AllStatuses)
}
