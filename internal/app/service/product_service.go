package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/pkg/logger"
	"github.com/vitrina/vitrina-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateProductSlug = errors.New("product slug already exists")
)

type ProductListOptions struct {
	Search         string
	ActiveOnly     bool
	Sort           repository.ProductSort
	SortAscending  bool
	Limit          int
	Offset         int
	IncludeOptions bool
}

type CreateProductInput struct {
	Name        string
	Description string
	SKU         string
	Price       decimal.Decimal
	SalePrice   *decimal.Decimal
	IsActive    *bool
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	SKU         *string
	Price       *decimal.Decimal
	SalePrice   *decimal.Decimal
	IsActive    *bool
}

type ProductService interface {
	ListProducts(opts ProductListOptions) ([]model.Product, int64, error)
	GetProductByID(id uint) (*model.Product, error)
	CreateProduct(input CreateProductInput) (*model.Product, error)
	UpdateProduct(id uint, input UpdateProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(opts ProductListOptions) ([]model.Product, int64, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"search": opts.Search,
		"sort":   opts.Sort,
		"limit":  opts.Limit,
		"offset": opts.Offset,
	})

	return s.productRepo.FindWithFilter(repository.ProductFilter{
		Search:         opts.Search,
		ActiveOnly:     opts.ActiveOnly,
		SortBy:         opts.Sort,
		SortAscending:  opts.SortAscending,
		Limit:          opts.Limit,
		Offset:         opts.Offset,
		IncludeOptions: opts.IncludeOptions,
	})
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(input CreateProductInput) (*model.Product, error) {
	logger.Debug("Creating product", map[string]interface{}{
		"name": input.Name,
		"sku":  input.SKU,
	})

	slug := util.Slugify(input.Name)
	existing, err := s.productRepo.FindBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateProductSlug
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &model.Product{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		SKU:         input.SKU,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		IsActive:    isActive,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input UpdateProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != product.Name {
		slug := util.Slugify(*input.Name)
		existing, err := s.productRepo.FindBySlug(slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, ErrDuplicateProductSlug
		}
		product.Name = *input.Name
		product.Slug = slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.SalePrice != nil {
		product.SalePrice = input.SalePrice
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}
