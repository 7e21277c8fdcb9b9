package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusServed    = "served"
	StatusCancelled = "cancelled"
)

// AllStatuses is the fixed order summaries and breakdowns report in.
var AllStatuses = []string{StatusPending, StatusPreparing, StatusServed, StatusCancelled}

const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
	PaymentBkash  = "bkash"
	PaymentNagod  = "nagod"
)

// OrderItem is one product/size/quantity/price tuple. Items are immutable
// once the order is created; there is no line-item edit endpoint.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Size     string             `bson:"size,omitempty" json:"size,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}

type Order struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// CustomOrderID is the human-readable per-day sequential code,
	// ORD-{year}-{day}-{month}-{n}. Assigned once at creation.
	CustomOrderID string `bson:"customOrderID" json:"customOrderID"`

	Items []OrderItem `bson:"items" json:"items"`

	// TotalPrice is computed from items at creation and never recomputed.
	TotalPrice      float64 `bson:"totalPrice" json:"totalPrice"`
	DiscountPercent float64 `bson:"discountPercent" json:"discountPercent"`
	TaxRate         float64 `bson:"taxRate" json:"taxRate"`

	Status        string              `bson:"status" json:"status"`
	PaymentMethod string              `bson:"paymentMethod" json:"paymentMethod"`
	Table         *primitive.ObjectID `bson:"table,omitempty" json:"table,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
