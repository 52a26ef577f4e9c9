package model

import (
	"time"
)

type OptionType string

const (
	OptionTypeText  OptionType = "text"
	OptionTypeColor OptionType = "color"
)

// ProductOption is one axis of variation for a product (e.g. "Размер").
// Options and their values are hard-deleted so the (product_id, name)
// unique index stays reusable after a delete.
type ProductOption struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	ProductID uint       `gorm:"not null;uniqueIndex:idx_product_option_name" json:"product_id"`
	Name      string     `gorm:"not null;uniqueIndex:idx_product_option_name" json:"name"`
	Slug      string     `gorm:"not null" json:"slug"`
	Type      OptionType `gorm:"type:varchar(20);default:'text'" json:"type"`
	SortOrder int        `gorm:"default:0" json:"sort_order"`
	Metadata  string     `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Product Product              `gorm:"foreignKey:ProductID" json:"-"`
	Values  []ProductOptionValue `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
}

func (ProductOption) TableName() string {
	return "product_options"
}

// ProductOptionValue is one concrete value along an option's axis (e.g. "M").
type ProductOptionValue struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OptionID    uint      `gorm:"not null;uniqueIndex:idx_option_value" json:"option_id"`
	Value       string    `gorm:"not null;uniqueIndex:idx_option_value" json:"value"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	Metadata    string    `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Option ProductOption `gorm:"foreignKey:OptionID" json:"-"`
}

func (ProductOptionValue) TableName() string {
	return "product_option_values"
}
