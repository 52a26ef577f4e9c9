package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductVariant is a sellable configuration of a product, either generated
// from option combinations or created manually.
type ProductVariant struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	ProductID uint             `gorm:"index;not null" json:"product_id"`
	Name      string           `gorm:"not null" json:"name"`
	SKU       *string          `gorm:"index" json:"sku"`
	Barcode   *string          `json:"barcode"`
	Price     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	SalePrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	CostPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost_price"`
	Stock     int              `gorm:"default:0" json:"stock"`
	MinStock  int              `gorm:"default:0" json:"min_stock"`
	Weight    *float64         `json:"weight"`
	Width     *float64         `json:"width"`
	Height    *float64         `json:"height"`
	Depth     *float64         `json:"depth"`
	// No gorm default so an explicit false survives the insert; the service
	// layer always sets this on create.
	IsActive  bool           `gorm:"not null" json:"is_active"`
	IsDefault bool           `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product            Product                    `gorm:"foreignKey:ProductID" json:"-"`
	OptionCombinations []VariantOptionCombination `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"option_combinations,omitempty"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

// VariantOptionCombination links a variant to one (option, value) pair.
// A variant has exactly one row per option it was generated from.
type VariantOptionCombination struct {
	ID            uint `gorm:"primarykey" json:"id"`
	VariantID     uint `gorm:"not null;uniqueIndex:idx_variant_option" json:"variant_id"`
	OptionID      uint `gorm:"not null;uniqueIndex:idx_variant_option" json:"option_id"`
	OptionValueID uint `gorm:"not null" json:"option_value_id"`

	Option      ProductOption      `gorm:"foreignKey:OptionID" json:"option,omitempty"`
	OptionValue ProductOptionValue `gorm:"foreignKey:OptionValueID" json:"option_value,omitempty"`
}

func (VariantOptionCombination) TableName() string {
	return "variant_option_combinations"
}
