package services

import "cafesync/models"

// ComputeTotal sums unit price times quantity over all line items. It runs
// once at order creation; later updates never recompute the stored total.
// Discount and tax snapshots are stored as submitted and are not folded into
// the total here.
func ComputeTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
