package controllers

import (
	"context"
	"net/http"
	"time"

	"cafesync/database"
	"cafesync/models"
	"cafesync/realtime"
	"cafesync/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type TableController struct {
	notifier realtime.Publisher
	logger   *zap.Logger
}

func NewTableController(notifier realtime.Publisher, logger *zap.Logger) *TableController {
	return &TableController{notifier: notifier, logger: logger}
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.TableCollection.Find(ctx, bson.M{})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var tables []models.Table
	if err := cursor.All(ctx, &tables); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": tables})
}

type createTableInput struct {
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}

func (tc *TableController) CreateTable(c *gin.Context) {
	var input createTableInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Seats == 0 {
		fail(c, http.StatusBadRequest, "Name and seats are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	table := models.Table{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Seats:     input.Seats,
		Status:    models.TableFree,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := database.TableCollection.InsertOne(ctx, table); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	tc.notifier.Publish(realtime.EventTableAdded, table)
	tc.publishStats(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": table})
}

type tableStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid table ID")
		return
	}

	var input tableStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Status is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": input.Status, "updatedAt": time.Now()}}

	var table models.Table
	if err := database.TableCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&table); err != nil {
		fail(c, http.StatusNotFound, "Table not found")
		return
	}

	tc.notifier.Publish(realtime.EventTableStatusUpdated, gin.H{"id": table.ID, "status": table.Status})
	tc.publishStats(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": table})
}

type updateTableInput struct {
	Name  string `json:"name"`
	Seats *int   `json:"seats"`
}

func (tc *TableController) UpdateTable(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid table ID")
		return
	}

	var input updateTableInput
	if err := c.ShouldBindJSON(&input); err != nil || (input.Name == "" && input.Seats == nil) {
		fail(c, http.StatusBadRequest, "At least one field (name or seats) is required")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Seats != nil {
		update["seats"] = *input.Seats
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var table models.Table
	if err := database.TableCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&table); err != nil {
		fail(c, http.StatusNotFound, "Table not found")
		return
	}

	tc.notifier.Publish(realtime.EventTableUpdated, table)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": table})
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid table ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.TableCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		fail(c, http.StatusNotFound, "Table not found")
		return
	}

	tc.notifier.Publish(realtime.EventTableDeleted, c.Param("id"))
	tc.publishStats(ctx)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Table deleted successfully"})
}

func (tc *TableController) GetTableStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := services.GetTableStats(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	tc.notifier.Publish(realtime.EventTableStatsUpdated, stats)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func (tc *TableController) publishStats(ctx context.Context) {
	stats, err := services.GetTableStats(ctx)
	if err != nil {
		tc.logger.Error("recompute table stats", zap.Error(err))
		return
	}
	tc.notifier.Publish(realtime.EventTableStatsUpdated, stats)
}
