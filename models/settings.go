package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is a singleton business-configuration document.
type Settings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Finance
	TaxRate       float64 `bson:"taxRate" json:"taxRate"`
	DiscountRate  float64 `bson:"discountRate" json:"discountRate"`
	Currency      string  `bson:"currency" json:"currency"`
	ServiceCharge float64 `bson:"serviceCharge" json:"serviceCharge"`

	// Business info
	BusinessName string `bson:"businessName" json:"businessName"`
	Address      string `bson:"address" json:"address"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	Website      string `bson:"website,omitempty" json:"website,omitempty"`

	// Printing
	ReceiptFooter string `bson:"receiptFooter,omitempty" json:"receiptFooter,omitempty"`
	LogoURL       string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	ShowTableName bool   `bson:"showTableName" json:"showTableName"`

	// POS behavior
	EnableDiscountInput bool `bson:"enableDiscountInput" json:"enableDiscountInput"`
	EnableTaxOverride   bool `bson:"enableTaxOverride" json:"enableTaxOverride"`
	AllowNegativeStock  bool `bson:"allowNegativeStock" json:"allowNegativeStock"`

	// Shifts
	OpeningTime string   `bson:"openingTime,omitempty" json:"openingTime,omitempty"`
	ClosingTime string   `bson:"closingTime,omitempty" json:"closingTime,omitempty"`
	OffDays     []string `bson:"offDays,omitempty" json:"offDays,omitempty"`

	// Reports
	LowStockAlertLevel int     `bson:"lowStockAlertLevel" json:"lowStockAlertLevel"`
	SalesTarget        float64 `bson:"salesTarget" json:"salesTarget"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns the document created when no settings exist yet.
func DefaultSettings() Settings {
	return Settings{
		TaxRate:             5,
		DiscountRate:        0,
		Currency:            "BDT",
		ServiceCharge:       0,
		BusinessName:        "Cafe Sync",
		Address:             "Mirpur, Dhaka - 1206",
		Phone:               "012-345-6789",
		ReceiptFooter:       "Thank you, come again",
		ShowTableName:       true,
		EnableDiscountInput: true,
		EnableTaxOverride:   false,
		AllowNegativeStock:  false,
		OpeningTime:         "09:00",
		ClosingTime:         "23:00",
		OffDays:             []string{"Friday"},
		LowStockAlertLevel:  5,
		SalesTarget:         10000,
		UpdatedAt:           time.Now(),
	}
}
