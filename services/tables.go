package services

import (
	"context"

	"cafesync/database"
	"cafesync/models"

	"go.mongodb.org/mongo-driver/bson"
)

type TableStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
}

// GetTableStats counts all tables and the free ones, for the floor dashboard.
func GetTableStats(ctx context.Context) (TableStats, error) {
	total, err := database.TableCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return TableStats{}, err
	}
	available, err := database.TableCollection.CountDocuments(ctx, bson.M{"status": models.TableFree})
	if err != nil {
		return TableStats{}, err
	}
	return TableStats{Total: total, Available: available}, nil
}
