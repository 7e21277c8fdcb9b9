package services

import (
	"context"
	"time"

	"cafesync/database"
	"cafesync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderSummary always carries all four status keys, zero-valued when no
// orders exist, so consumers never have to handle missing fields.
type OrderSummary struct {
	TotalOrders int `json:"totalOrders"`
	Pending     int `json:"pending"`
	Preparing   int `json:"preparing"`
	Served      int `json:"served"`
	Cancelled   int `json:"cancelled"`
}

type statusCount struct {
	Status string `bson:"_id"`
	Count  int    `bson:"count"`
}

// DayWindow returns the inclusive local-day bounds around t,
// 00:00:00.000 through 23:59:59.999.
func DayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

func buildSummary(rows []statusCount) OrderSummary {
	var s OrderSummary
	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			s.Pending = row.Count
		case models.StatusPreparing:
			s.Preparing = row.Count
		case models.StatusServed:
			s.Served = row.Count
		case models.StatusCancelled:
			s.Cancelled = row.Count
		}
		s.TotalOrders += row.Count
	}
	return s
}

// TodayOrderSummary counts today's orders grouped by status using the
// server's local day window.
func TodayOrderSummary(ctx context.Context) (OrderSummary, error) {
	start, end := DayWindow(time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := database.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return OrderSummary{}, err
	}
	defer cursor.Close(ctx)

	var rows []statusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return OrderSummary{}, err
	}
	return buildSummary(rows), nil
}
