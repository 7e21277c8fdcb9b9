package controllers

import (
	"context"
	"net/http"
	"time"

	"cafesync/database"
	"cafesync/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type SettingsController struct {
	logger *zap.Logger
}

func NewSettingsController(logger *zap.Logger) *SettingsController {
	return &SettingsController{logger: logger}
}

func (sc *SettingsController) GetSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.Settings
	err := database.SettingsCollection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		fail(c, http.StatusNotFound, "Settings not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSettings patches only the submitted fields of the singleton document,
// creating it from defaults first when it does not exist yet.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	delete(updates, "id")
	delete(updates, "_id")
	updates["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Settings
	err := database.SettingsCollection.FindOne(ctx, bson.M{}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		if _, err := database.SettingsCollection.InsertOne(ctx, models.DefaultSettings()); err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
	} else if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var settings models.Settings
	if err := database.SettingsCollection.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": updates}, opts).Decode(&settings); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}
