package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/internal/db"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (ProductService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	return NewProductService(productRepo), testDB
}

func TestProductService_CreateProduct(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Name:        "Футболка базовая",
		Description: "Хлопок, унисекс",
		SKU:         "TSHIRT",
		Price:       decimal.NewFromInt(1990),
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "футболка-базовая", product.Slug)
	assert.True(t, product.IsActive)
}

func TestProductService_CreateProduct_DuplicateSlug(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	_, err := productService.CreateProduct(CreateProductInput{
		Name:  "Футболка",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	_, err = productService.CreateProduct(CreateProductInput{
		Name:  "Футболка",
		Price: decimal.NewFromInt(2000),
	})
	assert.ErrorIs(t, err, ErrDuplicateProductSlug)
}

func TestProductService_GetProductByID(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Name:  "Футболка",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      uint
		wantErr error
	}{
		{
			name:    "Existing product",
			id:      product.ID,
			wantErr: nil,
		},
		{
			name:    "Non-existing product",
			id:      9999,
			wantErr: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := productService.GetProductByID(tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				assert.Equal(t, product.Name, found.Name)
			}
		})
	}
}

func TestProductService_ListProducts(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	_, err := productService.CreateProduct(CreateProductInput{
		Name:  "Футболка",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	inactive := false
	_, err = productService.CreateProduct(CreateProductInput{
		Name:     "Кружка",
		Price:    decimal.NewFromInt(500),
		IsActive: &inactive,
	})
	require.NoError(t, err)

	products, total, err := productService.ListProducts(ProductListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)

	active, total, err := productService.ListProducts(ProductListOptions{Limit: 10, ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, "Футболка", active[0].Name)

	found, total, err := productService.ListProducts(ProductListOptions{Limit: 10, Search: "ружк"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, "Кружка", found[0].Name)
}

func TestProductService_UpdateProduct(t *testing.T) {
	productService, _ := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Name:  "Футболка",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	newName := "Футболка премиум"
	newPrice := decimal.NewFromInt(2990)
	updated, err := productService.UpdateProduct(product.ID, UpdateProductInput{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Футболка премиум", updated.Name)
	assert.Equal(t, "футболка-премиум", updated.Slug)
	assert.True(t, newPrice.Equal(updated.Price))

	_, err = productService.UpdateProduct(9999, UpdateProductInput{Name: &newName})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	productService, testDB := setupProductServiceTest(t)

	product, err := productService.CreateProduct(CreateProductInput{
		Name:  "Футболка",
		SKU:   "TSHIRT",
		Price: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	option := &model.ProductOption{
		ProductID: product.ID,
		Name:      "Размер",
		Slug:      "размер",
		Type:      model.OptionTypeText,
		Metadata:  "{}",
	}
	require.NoError(t, testDB.Create(option).Error)
	require.NoError(t, testDB.Create(&model.ProductOptionValue{
		OptionID:    option.ID,
		Value:       "S",
		DisplayName: "S",
		SortOrder:   1,
		Metadata:    "{}",
	}).Error)

	require.NoError(t, productService.DeleteProduct(product.ID))

	_, err = productService.GetProductByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	var optionCount int64
	require.NoError(t, testDB.Model(&model.ProductOption{}).
		Where("product_id = ?", product.ID).
		Count(&optionCount).Error)
	assert.Equal(t, int64(0), optionCount)

	assert.ErrorIs(t, productService.DeleteProduct(product.ID), ErrProductNotFound)
}
