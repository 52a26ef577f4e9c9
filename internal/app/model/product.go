package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Slug        string           `gorm:"uniqueIndex;not null" json:"slug"`
	Description string           `gorm:"type:text" json:"description"`
	SKU         string           `gorm:"index" json:"sku"`
	Price       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	SalePrice   *decimal.Decimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	// No gorm default so an explicit false survives the insert; the
	// service layer always sets this on create.
	IsActive  bool           `gorm:"not null" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Options  []ProductOption  `gorm:"foreignKey:ProductID" json:"options,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
