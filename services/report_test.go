package services

import (
	"testing"
	"time"

	"cafesync/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func orderWithStatus(status string, createdAt time.Time) models.Order {
	return models.Order{
		ID:        primitive.NewObjectID(),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestPartitionByStatus(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderWithStatus(models.StatusServed, now),
		orderWithStatus(models.StatusPending, now.Add(-time.Minute)),
		orderWithStatus(models.StatusServed, now.Add(-2*time.Minute)),
		orderWithStatus(models.StatusCancelled, now.Add(-3*time.Minute)),
	}

	byStatus := PartitionByStatus(orders)

	assert.Len(t, byStatus[models.StatusServed], 2)
	assert.Len(t, byStatus[models.StatusPending], 1)
	assert.Len(t, byStatus[models.StatusCancelled], 1)
	assert.NotContains(t, byStatus, models.StatusPreparing)
}

func TestPartitionByStatus_PreservesNewestFirstOrder(t *testing.T) {
	now := time.Now()
	newest := orderWithStatus(models.StatusServed, now)
	oldest := orderWithStatus(models.StatusServed, now.Add(-time.Hour))

	byStatus := PartitionByStatus([]models.Order{newest, oldest})

	served := byStatus[models.StatusServed]
	assert.Equal(t, newest.ID, served[0].ID)
	assert.Equal(t, oldest.ID, served[1].ID)
	assert.True(t, served[0].CreatedAt.After(served[1].CreatedAt))
}

func TestPartitionByStatus_Empty(t *testing.T) {
	byStatus := PartitionByStatus(nil)
	assert.Empty(t, byStatus)
}
