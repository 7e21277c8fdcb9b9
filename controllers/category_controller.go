package controllers

import (
	"context"
	"net/http"
	"time"

	"cafesync/database"
	"cafesync/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type CategoryController struct {
	logger *zap.Logger
}

func NewCategoryController(logger *zap.Logger) *CategoryController {
	return &CategoryController{logger: logger}
}

type categoryInput struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		fail(c, http.StatusBadRequest, "Name is required")
		return
	}

	items, err := parseObjectIDs(input.Items)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	category := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := database.CategoryCollection.InsertOne(ctx, category); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.CategoryCollection.Find(ctx, bson.M{})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var category models.Category
	if err := database.CategoryCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&category); err != nil {
		fail(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Items != nil {
		items, err := parseObjectIDs(input.Items)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid item id")
			return
		}
		update["items"] = items
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var category models.Category
	if err := database.CategoryCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": update}, opts).Decode(&category); err != nil {
		fail(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.CategoryCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if result.DeletedCount == 0 {
		fail(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, oid)
	}
	return ids, nil
}
