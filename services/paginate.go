package services

import "cafesync/models"

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// PaginateOrders slices an already-filtered order list. The order list
// endpoint filters and pages in memory after the query, matching how the
// id-prefix search has always behaved.
func PaginateOrders(orders []models.Order, page, limit int) ([]models.Order, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(orders)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return orders[start:end], Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
