package services

import (
	"context"
	"time"

	"cafesync/database"
	"cafesync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportParams struct {
	Start  time.Time
	End    time.Time
	Status string
	Search string
}

type ReportSummary struct {
	TotalOrders int     `bson:"totalOrders" json:"totalOrders"`
	TotalSales  float64 `bson:"totalSales" json:"totalSales"`
}

type StatusBreakdown struct {
	Status string  `bson:"_id" json:"status"`
	Count  int     `bson:"count" json:"count"`
	Sales  float64 `bson:"sales" json:"sales"`
}

type OrderReport struct {
	Range struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	} `json:"range"`
	Summary         ReportSummary             `json:"summary"`
	StatusBreakdown []StatusBreakdown         `json:"statusBreakdown"`
	Orders          []models.Order            `json:"orders"`
	AllData         map[string][]models.Order `json:"allData"`
	Message         string                    `json:"message,omitempty"`
}

// PartitionByStatus groups orders into a map keyed by status, preserving the
// incoming (newest-first) order within each bucket.
func PartitionByStatus(orders []models.Order) map[string][]models.Order {
	byStatus := make(map[string][]models.Order)
	for _, order := range orders {
		byStatus[order.Status] = append(byStatus[order.Status], order)
	}
	return byStatus
}

// GetOrderReport runs the date-ranged report backing the dashboard and the
// PDF export. The status breakdown is always computed over the bare date
// window; the status filter narrows only the order list and its summary.
func GetOrderReport(ctx context.Context, p ReportParams) (*OrderReport, error) {
	dateMatch := bson.M{"createdAt": bson.M{"$gte": p.Start, "$lte": p.End}}

	match := bson.M{"createdAt": bson.M{"$gte": p.Start, "$lte": p.End}}
	if p.Status != "" {
		match["status"] = p.Status
	}

	if p.Search != "" {
		if oid, err := primitive.ObjectIDFromHex(p.Search); err == nil {
			match["_id"] = oid
		} else {
			ids, err := productIDsByName(ctx, p.Search)
			if err != nil {
				return nil, err
			}
			match["items.product"] = bson.M{"$in": ids}
		}
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.OrderCollection.Find(ctx, match, findOpts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	summary, err := reportSummary(ctx, match)
	if err != nil {
		return nil, err
	}

	breakdown, err := statusBreakdown(ctx, dateMatch)
	if err != nil {
		return nil, err
	}

	report := &OrderReport{
		Summary:         summary,
		StatusBreakdown: breakdown,
		Orders:          orders,
		AllData:         PartitionByStatus(orders),
	}
	report.Range.Start = p.Start
	report.Range.End = p.End
	if len(orders) == 0 {
		report.Message = "No orders found in this date range"
	}
	return report, nil
}

func reportSummary(ctx context.Context, match bson.M) (ReportSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalOrders": bson.M{"$sum": 1},
			"totalSales":  bson.M{"$sum": "$totalPrice"},
		}}},
	}

	cursor, err := database.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return ReportSummary{}, err
	}
	defer cursor.Close(ctx)

	var rows []ReportSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return ReportSummary{}, err
	}
	if len(rows) == 0 {
		return ReportSummary{}, nil
	}
	return rows[0], nil
}

func statusBreakdown(ctx context.Context, match bson.M) ([]StatusBreakdown, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
			"sales": bson.M{"$sum": "$totalPrice"},
		}}},
	}

	cursor, err := database.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	breakdown := []StatusBreakdown{}
	if err := cursor.All(ctx, &breakdown); err != nil {
		return nil, err
	}
	return breakdown, nil
}

// productIDsByName resolves a free-text search term to product ids via a
// case-insensitive substring match on the product name.
func productIDsByName(ctx context.Context, term string) ([]primitive.ObjectID, error) {
	cursor, err := database.ProductCollection.Find(ctx, bson.M{
		"name": bson.M{"$regex": term, "$options": "i"},
	})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
