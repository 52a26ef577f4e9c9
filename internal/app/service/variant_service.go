package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vitrina/vitrina-backend/internal/app/attribute"
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	ErrVariantNotFound   = errors.New("product variant not found")
	ErrNoOptionsResolved = errors.New("no options resolved for the given ids")
	ErrOptionNotOwned    = errors.New("option does not belong to this product")
	ErrVariantNotCreated = errors.New("variant row was not returned after insert")
)

// OptionCombinationRef describes one (option, value) pair of a preview
// variant.
type OptionCombinationRef struct {
	OptionID   uint   `json:"option_id"`
	OptionName string `json:"option_name"`
	ValueID    uint   `json:"value_id"`
	Value      string `json:"value"`
}

type VariantDimensions struct {
	Weight *float64 `json:"weight"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
	Depth  *float64 `json:"depth"`
}

// VariantPreview mirrors the persisted variant shape without touching the
// database. IDs are synthetic ("preview-1", "preview-2", ...).
type VariantPreview struct {
	ID                 string                            `json:"id"`
	Name               string                            `json:"name"`
	SKU                string                            `json:"sku"`
	Barcode            *string                           `json:"barcode"`
	OptionCombinations []OptionCombinationRef            `json:"option_combinations"`
	OptionGroups       map[string][]OptionCombinationRef `json:"option_groups"`
	Price              decimal.Decimal                   `json:"price"`
	SalePrice          *decimal.Decimal                  `json:"sale_price"`
	CostPrice          *decimal.Decimal                  `json:"cost_price"`
	Stock              int                               `json:"stock"`
	MinStock           int                               `json:"min_stock"`
	Dimensions         *VariantDimensions                `json:"dimensions"`
	IsActive           bool                              `json:"is_active"`
	IsDefault          bool                              `json:"is_default"`
}

type GroupedOption struct {
	ID     uint                       `json:"id"`
	Name   string                     `json:"name"`
	Group  attribute.Group            `json:"group"`
	Values []model.ProductOptionValue `json:"values"`
}

type VariantPreviewResult struct {
	Count          int              `json:"count"`
	Variants       []VariantPreview `json:"variants"`
	GroupedOptions []GroupedOption  `json:"grouped_options"`
}

type VariantGenerateResult struct {
	Count    int                    `json:"count"`
	Variants []model.ProductVariant `json:"variants"`
	Message  string                 `json:"message"`
}

type CreateVariantInput struct {
	Name      string
	SKU       *string
	Barcode   *string
	Price     decimal.Decimal
	SalePrice *decimal.Decimal
	CostPrice *decimal.Decimal
	Stock     int
	MinStock  int
	Weight    *float64
	Width     *float64
	Height    *float64
	Depth     *float64
	IsActive  *bool
	IsDefault bool
}

type UpdateVariantInput struct {
	Name      *string
	SKU       *string
	Barcode   *string
	Price     *decimal.Decimal
	SalePrice *decimal.Decimal
	CostPrice *decimal.Decimal
	Stock     *int
	MinStock  *int
	Weight    *float64
	Width     *float64
	Height    *float64
	Depth     *float64
	IsActive  *bool
}

type VariantService interface {
	PreviewVariants(productID uint, optionIDs []uint) (*VariantPreviewResult, error)
	GenerateVariants(productID uint, optionIDs []uint) (*VariantGenerateResult, error)
	ListVariants(productID uint) ([]model.ProductVariant, error)
	GetVariantByID(id uint) (*model.ProductVariant, error)
	CreateVariant(productID uint, input CreateVariantInput) (*model.ProductVariant, error)
	UpdateVariant(id uint, input UpdateVariantInput) (*model.ProductVariant, error)
	DeleteVariant(id uint) error
	SetDefaultVariant(id uint) (*model.ProductVariant, error)
	ExportVariants(productID uint) (*excelize.File, error)
	ListLowStockVariants() ([]model.ProductVariant, error)
}

type variantService struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	optionRepo  repository.OptionRepository
	variantRepo repository.VariantRepository
}

func NewVariantService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	optionRepo repository.OptionRepository,
	variantRepo repository.VariantRepository,
) VariantService {
	return &variantService{
		db:          db,
		productRepo: productRepo,
		optionRepo:  optionRepo,
		variantRepo: variantRepo,
	}
}

// resolveOptions validates the (product, optionIDs) pair and returns the
// product together with its options ordered by attribute group. Every
// requested id must resolve to an option of this product.
func (s *variantService) resolveOptions(productID uint, optionIDs []uint) (*model.Product, []model.ProductOption, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, err
	}

	seen := make(map[uint]bool, len(optionIDs))
	unique := make([]uint, 0, len(optionIDs))
	for _, id := range optionIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return nil, nil, ErrNoOptionsResolved
	}

	options, err := s.optionRepo.FindByIDsForProduct(productID, unique)
	if err != nil {
		return nil, nil, err
	}
	if len(options) == 0 {
		logger.Warn("No options resolved for variant generation", map[string]interface{}{
			"product_id": productID,
			"option_ids": optionIDs,
		})
		return nil, nil, ErrNoOptionsResolved
	}
	if len(options) != len(unique) {
		logger.Warn("Requested options do not all belong to product", map[string]interface{}{
			"product_id": productID,
			"requested":  len(unique),
			"resolved":   len(options),
		})
		return nil, nil, ErrOptionNotOwned
	}

	return product, attribute.SortOptions(options), nil
}

func combinationRefs(entries []combinationEntry) []OptionCombinationRef {
	refs := make([]OptionCombinationRef, len(entries))
	for i, entry := range entries {
		refs[i] = OptionCombinationRef{
			OptionID:   entry.Option.ID,
			OptionName: entry.Option.Name,
			ValueID:    entry.Value.ID,
			Value:      entry.Value.DisplayName,
		}
	}
	return refs
}

func groupCombinationRefs(entries []combinationEntry) map[string][]OptionCombinationRef {
	groups := make(map[string][]OptionCombinationRef)
	for _, entry := range entries {
		group := string(attribute.Classify(entry.Option.Name).Group)
		groups[group] = append(groups[group], OptionCombinationRef{
			OptionID:   entry.Option.ID,
			OptionName: entry.Option.Name,
			ValueID:    entry.Value.ID,
			Value:      entry.Value.DisplayName,
		})
	}
	return groups
}

// PreviewVariants computes what GenerateVariants would create, without any
// database writes. Price and sale price are copied from the product; stock
// starts at zero.
func (s *variantService) PreviewVariants(productID uint, optionIDs []uint) (*VariantPreviewResult, error) {
	product, options, err := s.resolveOptions(productID, optionIDs)
	if err != nil {
		return nil, err
	}

	combinations := generateCombinations(options)
	if len(combinations) == 0 {
		return nil, ErrNoOptionsResolved
	}

	previews := make([]VariantPreview, len(combinations))
	for i, combination := range combinations {
		previews[i] = VariantPreview{
			ID:                 fmt.Sprintf("preview-%d", i+1),
			Name:               buildVariantName(combination, product.Name),
			SKU:                buildVariantSKU(combination, product.SKU),
			OptionCombinations: combinationRefs(combination),
			OptionGroups:       groupCombinationRefs(combination),
			Price:              product.Price,
			SalePrice:          product.SalePrice,
			IsActive:           true,
			IsDefault:          false,
		}
	}

	grouped := make([]GroupedOption, len(options))
	for i, option := range options {
		grouped[i] = GroupedOption{
			ID:     option.ID,
			Name:   option.Name,
			Group:  attribute.Classify(option.Name).Group,
			Values: option.Values,
		}
	}

	logger.Info("Variant preview computed", map[string]interface{}{
		"product_id": productID,
		"count":      len(previews),
	})
	return &VariantPreviewResult{
		Count:          len(previews),
		Variants:       previews,
		GroupedOptions: grouped,
	}, nil
}

// GenerateVariants runs the same computation as PreviewVariants and persists
// the result. The whole call runs in a single transaction: a failure on any
// combination rolls back every variant and linkage row created before it.
func (s *variantService) GenerateVariants(productID uint, optionIDs []uint) (*VariantGenerateResult, error) {
	product, options, err := s.resolveOptions(productID, optionIDs)
	if err != nil {
		return nil, err
	}

	combinations := generateCombinations(options)
	if len(combinations) == 0 {
		return nil, ErrNoOptionsResolved
	}

	logger.Info("Generating variants", map[string]interface{}{
		"product_id":   productID,
		"options":      len(options),
		"combinations": len(combinations),
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if tx.Error != nil {
		return nil, tx.Error
	}

	variants := make([]model.ProductVariant, 0, len(combinations))
	for _, combination := range combinations {
		sku := buildVariantSKU(combination, product.SKU)
		variant := model.ProductVariant{
			ProductID: product.ID,
			Name:      buildVariantName(combination, product.Name),
			SKU:       &sku,
			Price:     product.Price,
			SalePrice: product.SalePrice,
			Stock:     0,
			IsActive:  true,
			IsDefault: false,
		}
		if err := tx.Create(&variant).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to insert generated variant", err, map[string]interface{}{
				"product_id": productID,
				"name":       variant.Name,
			})
			return nil, err
		}
		if variant.ID == 0 {
			tx.Rollback()
			return nil, ErrVariantNotCreated
		}

		for _, entry := range combination {
			link := model.VariantOptionCombination{
				VariantID:     variant.ID,
				OptionID:      entry.Option.ID,
				OptionValueID: entry.Value.ID,
			}
			if err := tx.Create(&link).Error; err != nil {
				tx.Rollback()
				logger.Error("Failed to insert variant option linkage", err, map[string]interface{}{
					"variant_id": variant.ID,
					"option_id":  entry.Option.ID,
				})
				return nil, err
			}
			link.Option = entry.Option
			link.OptionValue = entry.Value
			variant.OptionCombinations = append(variant.OptionCombinations, link)
		}

		variants = append(variants, variant)
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit variant generation", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	logger.Info("Variants generated", map[string]interface{}{
		"product_id": productID,
		"count":      len(variants),
	})
	return &VariantGenerateResult{
		Count:    len(variants),
		Variants: variants,
		Message:  fmt.Sprintf("Generated %d variants", len(variants)),
	}, nil
}

func (s *variantService) ListVariants(productID uint) ([]model.ProductVariant, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.variantRepo.FindByProductID(productID)
}

func (s *variantService) GetVariantByID(id uint) (*model.ProductVariant, error) {
	variant, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	return variant, nil
}

func (s *variantService) CreateVariant(productID uint, input CreateVariantInput) (*model.ProductVariant, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	price := input.Price
	if price.IsZero() {
		price = product.Price
	}

	variant := &model.ProductVariant{
		ProductID: product.ID,
		Name:      input.Name,
		SKU:       input.SKU,
		Barcode:   input.Barcode,
		Price:     price,
		SalePrice: input.SalePrice,
		CostPrice: input.CostPrice,
		Stock:     input.Stock,
		MinStock:  input.MinStock,
		Weight:    input.Weight,
		Width:     input.Width,
		Height:    input.Height,
		Depth:     input.Depth,
		IsActive:  isActive,
		IsDefault: input.IsDefault,
	}

	if input.IsDefault {
		if err := s.variantRepo.ClearDefault(product.ID); err != nil {
			return nil, err
		}
	}
	if err := s.variantRepo.Create(variant); err != nil {
		return nil, err
	}

	logger.Info("Variant created", map[string]interface{}{
		"variant_id": variant.ID,
		"product_id": product.ID,
	})
	return variant, nil
}

func (s *variantService) UpdateVariant(id uint, input UpdateVariantInput) (*model.ProductVariant, error) {
	variant, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		variant.Name = *input.Name
	}
	if input.SKU != nil {
		variant.SKU = input.SKU
	}
	if input.Barcode != nil {
		variant.Barcode = input.Barcode
	}
	if input.Price != nil {
		variant.Price = *input.Price
	}
	if input.SalePrice != nil {
		variant.SalePrice = input.SalePrice
	}
	if input.CostPrice != nil {
		variant.CostPrice = input.CostPrice
	}
	if input.Stock != nil {
		variant.Stock = *input.Stock
	}
	if input.MinStock != nil {
		variant.MinStock = *input.MinStock
	}
	if input.Weight != nil {
		variant.Weight = input.Weight
	}
	if input.Width != nil {
		variant.Width = input.Width
	}
	if input.Height != nil {
		variant.Height = input.Height
	}
	if input.Depth != nil {
		variant.Depth = input.Depth
	}
	if input.IsActive != nil {
		variant.IsActive = *input.IsActive
	}

	if err := s.variantRepo.Update(variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *variantService) DeleteVariant(id uint) error {
	if _, err := s.variantRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVariantNotFound
		}
		return err
	}
	return s.variantRepo.Delete(id)
}

// SetDefaultVariant makes the variant its product's single default.
func (s *variantService) SetDefaultVariant(id uint) (*model.ProductVariant, error) {
	variant, err := s.variantRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}

	if err := s.variantRepo.ClearDefault(variant.ProductID); err != nil {
		return nil, err
	}
	variant.IsDefault = true
	if err := s.variantRepo.Update(variant); err != nil {
		return nil, err
	}

	logger.Info("Default variant set", map[string]interface{}{
		"variant_id": variant.ID,
		"product_id": variant.ProductID,
	})
	return variant, nil
}

func (s *variantService) ListLowStockVariants() ([]model.ProductVariant, error) {
	return s.variantRepo.FindLowStock()
}
