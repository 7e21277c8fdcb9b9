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
	"go.uber.org/zap"
)

type ProductController struct {
	logger *zap.Logger
}

func NewProductController(logger *zap.Logger) *ProductController {
	return &ProductController{logger: logger}
}

type productInput struct {
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	Available   *bool               `json:"available"`
	Sizes       models.ProductSizes `json:"sizes"`
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Category == "" {
		fail(c, http.StatusBadRequest, "Name and category are required")
		return
	}

	catID, err := primitive.ObjectIDFromHex(input.Category)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := database.CategoryCollection.FindOne(ctx, bson.M{"_id": catID}).Decode(&category); err != nil {
		fail(c, http.StatusNotFound, "Category not found")
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := time.Now()
	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Category:    catID,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Available:   available,
		Sizes:       input.Sizes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.ProductCollection.InsertOne(ctx, product); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Keep the category's item list in sync.
	_, _ = database.CategoryCollection.UpdateOne(ctx,
		bson.M{"_id": catID},
		bson.M{"$push": bson.M{"items": product.ID}},
	)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	catID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{"category": catID})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Description != "" {
		update["description"] = input.Description
	}
	if input.ImageURL != "" {
		update["imageUrl"] = input.ImageURL
	}
	if input.Available != nil {
		update["available"] = *input.Available
	}
	if input.Sizes.Small != nil || input.Sizes.Large != nil || input.Sizes.ExtraLarge != nil {
		sizes := existing.Sizes
		if input.Sizes.Small != nil {
			sizes.Small = input.Sizes.Small
		}
		if input.Sizes.Large != nil {
			sizes.Large = input.Sizes.Large
		}
		if input.Sizes.ExtraLarge != nil {
			sizes.ExtraLarge = input.Sizes.ExtraLarge
		}
		update["sizes"] = sizes
	}

	var newCatID *primitive.ObjectID
	if input.Category != "" {
		cid, err := primitive.ObjectIDFromHex(input.Category)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid category id")
			return
		}
		update["category"] = cid
		newCatID = &cid
	}

	if _, err := database.ProductCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update}); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Move the product between category item lists when the category changed.
	if newCatID != nil && *newCatID != existing.Category {
		_, _ = database.CategoryCollection.UpdateOne(ctx,
			bson.M{"_id": existing.Category},
			bson.M{"$pull": bson.M{"items": objID}},
		)
		_, _ = database.CategoryCollection.UpdateOne(ctx,
			bson.M{"_id": *newCatID},
			bson.M{"$addToSet": bson.M{"items": objID}},
		)
	}

	var product models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.ProductCollection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	// Order history keeps its reference; the UI renders "Product Deleted"
	// when the lookup no longer resolves.
	_, _ = database.CategoryCollection.UpdateOne(ctx,
		bson.M{"_id": product.Category},
		bson.M{"$pull": bson.M{"items": objID}},
	)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

func (pc *ProductController) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		fail(c, http.StatusBadRequest, "Search query is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, bson.M{
		"name": bson.M{"$regex": q, "$options": "i"},
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}
