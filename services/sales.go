package services

import (
	"context"
	"time"

	"cafesync/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DailySales struct {
	Date        string  `bson:"_id" json:"date"`
	TotalSales  float64 `bson:"totalSales" json:"totalSales"`
	TotalOrders int     `bson:"totalOrders" json:"totalOrders"`
}

// FillMissingDays expands the sparse per-day aggregation rows into one entry
// per calendar day of the inclusive range, zero-filling days with no sales.
// The walk covers every calendar day the range touches, regardless of the
// time of day either bound carries.
func FillMissingDays(start, end time.Time, rows []DailySales) []DailySales {
	byDate := make(map[string]DailySales, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	lastDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	result := []DailySales{}
	for ; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		if row, ok := byDate[date]; ok {
			result = append(result, row)
		} else {
			result = append(result, DailySales{Date: date})
		}
	}
	return result
}

// GetDailySales returns the per-day sales series used by the dashboard chart.
func GetDailySales(ctx context.Context, start, end time.Time) ([]DailySales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}}},
		{{Key: "$group", Value: bson.M{
			"_id":         bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"totalSales":  bson.M{"$sum": "$totalPrice"},
			"totalOrders": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := database.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []DailySales
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return FillMissingDays(start, end, rows), nil
}
