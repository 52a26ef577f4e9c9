package repository

import (
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"gorm.io/gorm"
)

type OptionRepository interface {
	Create(option *model.ProductOption) error
	FindByID(id uint) (*model.ProductOption, error)
	FindByProductID(productID uint) ([]model.ProductOption, error)
	FindByProductAndName(productID uint, name string) (*model.ProductOption, error)
	FindByIDsForProduct(productID uint, ids []uint) ([]model.ProductOption, error)
	Update(option *model.ProductOption) error
	Delete(id uint) error

	CreateValue(value *model.ProductOptionValue) error
	FindValueByID(id uint) (*model.ProductOptionValue, error)
	FindValueByOptionAndValue(optionID uint, value string) (*model.ProductOptionValue, error)
	NextValueSortOrder(optionID uint) (int, error)
	UpdateValue(value *model.ProductOptionValue) error
	DeleteValue(id uint) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

// valuesOrdered preloads option values in their configured order.
func valuesOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, id ASC")
}

func (r *optionRepository) Create(option *model.ProductOption) error {
	logger.Debug("Creating product option", map[string]interface{}{
		"product_id": option.ProductID,
		"name":       option.Name,
	})

	if err := r.db.Create(option).Error; err != nil {
		logger.Error("Failed to create product option", err, map[string]interface{}{
			"product_id": option.ProductID,
			"name":       option.Name,
		})
		return err
	}
	return nil
}

func (r *optionRepository) FindByID(id uint) (*model.ProductOption, error) {
	var option model.ProductOption
	if err := r.db.Preload("Values", valuesOrdered).First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *optionRepository) FindByProductID(productID uint) ([]model.ProductOption, error) {
	var options []model.ProductOption
	if err := r.db.Preload("Values", valuesOrdered).
		Where("product_id = ?", productID).
		Order("sort_order ASC, id ASC").
		Find(&options).Error; err != nil {
		logger.Error("Failed to find product options", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return options, nil
}

func (r *optionRepository) FindByProductAndName(productID uint, name string) (*model.ProductOption, error) {
	var option model.ProductOption
	if err := r.db.Where("product_id = ? AND name = ?", productID, name).
		First(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// FindByIDsForProduct resolves the requested option IDs, keeping only options
// that belong to the given product. Values come preloaded in sort order.
func (r *optionRepository) FindByIDsForProduct(productID uint, ids []uint) ([]model.ProductOption, error) {
	var options []model.ProductOption
	if err := r.db.Preload("Values", valuesOrdered).
		Where("product_id = ? AND id IN ?", productID, ids).
		Order("sort_order ASC, id ASC").
		Find(&options).Error; err != nil {
		logger.Error("Failed to resolve options for product", err, map[string]interface{}{
			"product_id": productID,
			"option_ids": ids,
		})
		return nil, err
	}
	return options, nil
}

func (r *optionRepository) Update(option *model.ProductOption) error {
	if err := r.db.Save(option).Error; err != nil {
		logger.Error("Failed to update product option", err, map[string]interface{}{
			"option_id": option.ID,
		})
		return err
	}
	return nil
}

// Delete removes the option and its values. Linkage rows of previously
// generated variants are removed as well; the variants themselves keep their
// synthesized name and SKU as historical artifacts.
func (r *optionRepository) Delete(id uint) error {
	logger.Debug("Deleting product option", map[string]interface{}{
		"option_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("option_id = ?", id).
			Delete(&model.VariantOptionCombination{}).Error; err != nil {
			return err
		}
		if err := tx.Where("option_id = ?", id).
			Delete(&model.ProductOptionValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProductOption{}, id).Error
	})
}

func (r *optionRepository) CreateValue(value *model.ProductOptionValue) error {
	logger.Debug("Creating option value", map[string]interface{}{
		"option_id": value.OptionID,
		"value":     value.Value,
	})

	if err := r.db.Create(value).Error; err != nil {
		logger.Error("Failed to create option value", err, map[string]interface{}{
			"option_id": value.OptionID,
			"value":     value.Value,
		})
		return err
	}
	return nil
}

func (r *optionRepository) FindValueByID(id uint) (*model.ProductOptionValue, error) {
	var value model.ProductOptionValue
	if err := r.db.First(&value, id).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *optionRepository) FindValueByOptionAndValue(optionID uint, value string) (*model.ProductOptionValue, error) {
	var optionValue model.ProductOptionValue
	if err := r.db.Where("option_id = ? AND value = ?", optionID, value).
		First(&optionValue).Error; err != nil {
		return nil, err
	}
	return &optionValue, nil
}

// NextValueSortOrder returns max(sort_order)+1 among the option's values.
func (r *optionRepository) NextValueSortOrder(optionID uint) (int, error) {
	var max *int
	if err := r.db.Model(&model.ProductOptionValue{}).
		Where("option_id = ?", optionID).
		Select("MAX(sort_order)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

func (r *optionRepository) UpdateValue(value *model.ProductOptionValue) error {
	if err := r.db.Save(value).Error; err != nil {
		logger.Error("Failed to update option value", err, map[string]interface{}{
			"value_id": value.ID,
		})
		return err
	}
	return nil
}

func (r *optionRepository) DeleteValue(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("option_value_id = ?", id).
			Delete(&model.VariantOptionCombination{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProductOptionValue{}, id).Error
	})
}
