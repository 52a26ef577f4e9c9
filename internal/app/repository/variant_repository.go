package repository

import (
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"gorm.io/gorm"
)

type VariantRepository interface {
	Create(variant *model.ProductVariant) error
	FindByID(id uint) (*model.ProductVariant, error)
	FindByProductID(productID uint) ([]model.ProductVariant, error)
	FindLowStock() ([]model.ProductVariant, error)
	Update(variant *model.ProductVariant) error
	Delete(id uint) error
	ClearDefault(productID uint) error
	FindCombinationsByVariantID(variantID uint) ([]model.VariantOptionCombination, error)
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepository {
	return &variantRepository{db: db}
}

func combinationsPreloaded(db *gorm.DB) *gorm.DB {
	return db.Preload("OptionCombinations.Option").
		Preload("OptionCombinations.OptionValue")
}

func (r *variantRepository) Create(variant *model.ProductVariant) error {
	logger.Debug("Creating product variant", map[string]interface{}{
		"product_id": variant.ProductID,
		"name":       variant.Name,
	})

	if err := r.db.Create(variant).Error; err != nil {
		logger.Error("Failed to create product variant", err, map[string]interface{}{
			"product_id": variant.ProductID,
			"name":       variant.Name,
		})
		return err
	}
	return nil
}

func (r *variantRepository) FindByID(id uint) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	if err := combinationsPreloaded(r.db).First(&variant, id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) FindByProductID(productID uint) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	if err := combinationsPreloaded(r.db).
		Where("product_id = ?", productID).
		Order("is_default DESC, id ASC").
		Find(&variants).Error; err != nil {
		logger.Error("Failed to find variants for product", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return variants, nil
}

// FindLowStock returns active variants whose stock is at or below min_stock.
func (r *variantRepository) FindLowStock() ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	if err := r.db.Preload("Product").
		Where("is_active = ? AND stock <= min_stock", true).
		Find(&variants).Error; err != nil {
		logger.Error("Failed to find low stock variants", err, nil)
		return nil, err
	}
	return variants, nil
}

func (r *variantRepository) Update(variant *model.ProductVariant) error {
	if err := r.db.Save(variant).Error; err != nil {
		logger.Error("Failed to update product variant", err, map[string]interface{}{
			"variant_id": variant.ID,
		})
		return err
	}
	return nil
}

func (r *variantRepository) Delete(id uint) error {
	logger.Debug("Deleting product variant", map[string]interface{}{
		"variant_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("variant_id = ?", id).
			Delete(&model.VariantOptionCombination{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProductVariant{}, id).Error
	})
}

// ClearDefault drops the default flag from every variant of the product.
func (r *variantRepository) ClearDefault(productID uint) error {
	return r.db.Model(&model.ProductVariant{}).
		Where("product_id = ?", productID).
		Update("is_default", false).Error
}

func (r *variantRepository) FindCombinationsByVariantID(variantID uint) ([]model.VariantOptionCombination, error) {
	var combinations []model.VariantOptionCombination
	if err := r.db.Preload("Option").Preload("OptionValue").
		Where("variant_id = ?", variantID).
		Find(&combinations).Error; err != nil {
		return nil, err
	}
	return combinations, nil
}
