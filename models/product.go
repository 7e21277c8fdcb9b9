package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductSizes holds per-size prices. A size left nil is not offered.
type ProductSizes struct {
	Small      *float64 `bson:"small,omitempty" json:"small,omitempty"`
	Large      *float64 `bson:"large,omitempty" json:"large,omitempty"`
	ExtraLarge *float64 `bson:"extraLarge,omitempty" json:"extraLarge,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	Sizes       ProductSizes       `bson:"sizes" json:"sizes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
