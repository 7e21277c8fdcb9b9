package services

import (
	"testing"

	"cafesync/models"

	"github.com/stretchr/testify/assert"
)

func makeOrders(n int) []models.Order {
	orders := make([]models.Order, n)
	return orders
}

func TestPaginateOrders(t *testing.T) {
	orders := makeOrders(25)

	page, p := PaginateOrders(orders, 1, 10)
	assert.Len(t, page, 10)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	page, _ = PaginateOrders(orders, 3, 10)
	assert.Len(t, page, 5)
}

func TestPaginateOrders_OutOfRangePage(t *testing.T) {
	orders := makeOrders(5)

	page, p := PaginateOrders(orders, 4, 10)
	assert.Empty(t, page)
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginateOrders_DefaultsForBadInput(t *testing.T) {
	orders := makeOrders(12)

	page, p := PaginateOrders(orders, 0, -1)
	assert.Len(t, page, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestPaginateOrders_Empty(t *testing.T) {
	page, p := PaginateOrders(nil, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
}
