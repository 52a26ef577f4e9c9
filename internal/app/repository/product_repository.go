package repository

import (
	"fmt"

	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductSort string

const (
	ProductSortName      ProductSort = "name"
	ProductSortPrice     ProductSort = "price"
	ProductSortCreatedAt ProductSort = "created_at"
)

type ProductFilter struct {
	Search         string
	ActiveOnly     bool
	SortBy         ProductSort
	SortAscending  bool
	Limit          int
	Offset         int
	IncludeOptions bool
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindWithFilter(filter ProductFilter) ([]model.Product, int64, error)
	FindByID(id uint) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product", map[string]interface{}{
		"name": product.Name,
		"sku":  product.SKU,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, int64, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"search":      filter.Search,
		"active_only": filter.ActiveOnly,
		"sort_by":     filter.SortBy,
		"limit":       filter.Limit,
		"offset":      filter.Offset,
	})

	query := r.db.Model(&model.Product{})

	if filter.IncludeOptions {
		query = query.Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).Preload("Options.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("products.name LIKE ? OR products.sku LIKE ?", like, like)
	}

	if filter.ActiveOnly {
		query = query.Where("products.is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count products", err, nil)
		return nil, 0, err
	}

	direction := "DESC"
	if filter.SortAscending {
		direction = "ASC"
	}
	switch filter.SortBy {
	case ProductSortName:
		query = query.Order("products.name " + direction)
	case ProductSortPrice:
		query = query.Order("products.price " + direction)
	case ProductSortCreatedAt:
		fallthrough
	default:
		query = query.Order("products.created_at " + direction)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, 0, err
	}

	logger.Debug("Products found", map[string]interface{}{
		"count": len(products),
		"total": total,
	})
	return products, total, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product", map[string]interface{}{
		"product_id": product.ID,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

// Delete removes the product together with its options and variants.
func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var optionIDs []uint
		if err := tx.Model(&model.ProductOption{}).
			Where("product_id = ?", id).
			Pluck("id", &optionIDs).Error; err != nil {
			return err
		}

		var variantIDs []uint
		if err := tx.Model(&model.ProductVariant{}).
			Where("product_id = ?", id).
			Pluck("id", &variantIDs).Error; err != nil {
			return err
		}

		if len(variantIDs) > 0 {
			if err := tx.Where("variant_id IN ?", variantIDs).
				Delete(&model.VariantOptionCombination{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.ProductVariant{}, variantIDs).Error; err != nil {
				return err
			}
		}

		if len(optionIDs) > 0 {
			if err := tx.Where("option_id IN ?", optionIDs).
				Delete(&model.ProductOptionValue{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.ProductOption{}, optionIDs).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&model.Product{}, id).Error; err != nil {
			logger.Error("Failed to delete product", err, map[string]interface{}{
				"product_id": id,
			})
			return err
		}
		return nil
	})
}
