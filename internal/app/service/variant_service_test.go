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

func setupVariantServiceTest(t *testing.T) (VariantService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	productRepo := repository.NewProductRepository(testDB)
	optionRepo := repository.NewOptionRepository(testDB)
	variantRepo := repository.NewVariantRepository(testDB)
	return NewVariantService(testDB, productRepo, optionRepo, variantRepo), testDB
}

// seedCatalog creates a product with a size option (S, M) and a color
// option (Красный, Синий) and returns the product and option ids.
func seedCatalog(t *testing.T, testDB *gorm.DB) (*model.Product, []uint) {
	product := &model.Product{
		Name:     "Футболка",
		Slug:     "futbolka",
		SKU:      "TSHIRT",
		Price:    decimal.NewFromInt(1990),
		IsActive: true,
	}
	require.NoError(t, testDB.Create(product).Error)

	size := &model.ProductOption{
		ProductID: product.ID,
		Name:      "Размер",
		Slug:      "razmer",
		Type:      model.OptionTypeText,
		Metadata:  "{}",
	}
	require.NoError(t, testDB.Create(size).Error)
	for i, v := range []string{"S", "M"} {
		require.NoError(t, testDB.Create(&model.ProductOptionValue{
			OptionID:    size.ID,
			Value:       v,
			DisplayName: v,
			SortOrder:   i + 1,
			Metadata:    "{}",
		}).Error)
	}

	color := &model.ProductOption{
		ProductID: product.ID,
		Name:      "Цвет",
		Slug:      "cvet",
		Type:      model.OptionTypeColor,
		Metadata:  "{}",
	}
	require.NoError(t, testDB.Create(color).Error)
	for i, v := range []string{"Красный", "Синий"} {
		require.NoError(t, testDB.Create(&model.ProductOptionValue{
			OptionID:    color.ID,
			Value:       v,
			DisplayName: v,
			SortOrder:   i + 1,
			Metadata:    "{}",
		}).Error)
	}

	return product, []uint{size.ID, color.ID}
}

func TestVariantService_PreviewVariants(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	result, err := variantService.PreviewVariants(product.ID, optionIDs)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Count)
	assert.Len(t, result.Variants, 4)
	assert.Len(t, result.GroupedOptions, 2)

	// Size is the leading attribute in every synthesized name.
	assert.Equal(t, "Футболка - S / Красный", result.Variants[0].Name)
	assert.Equal(t, "preview-1", result.Variants[0].ID)
	assert.Equal(t, "TSHIRT-S-КРА", result.Variants[0].SKU)

	for _, v := range result.Variants {
		assert.True(t, v.IsActive)
		assert.False(t, v.IsDefault)
		assert.Equal(t, 0, v.Stock)
		assert.True(t, product.Price.Equal(v.Price))
		assert.Len(t, v.OptionCombinations, 2)
	}
}

func TestVariantService_PreviewVariants_NoWrites(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	_, err := variantService.PreviewVariants(product.ID, optionIDs)
	require.NoError(t, err)

	var count int64
	require.NoError(t, testDB.Model(&model.ProductVariant{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestVariantService_GenerateVariants(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	result, err := variantService.GenerateVariants(product.ID, optionIDs)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Count)
	assert.Equal(t, "Generated 4 variants", result.Message)

	var variantCount int64
	require.NoError(t, testDB.Model(&model.ProductVariant{}).Count(&variantCount).Error)
	assert.Equal(t, int64(4), variantCount)

	// Every variant carries one linkage per participating option.
	var linkCount int64
	require.NoError(t, testDB.Model(&model.VariantOptionCombination{}).Count(&linkCount).Error)
	assert.Equal(t, int64(8), linkCount)

	for _, v := range result.Variants {
		assert.NotZero(t, v.ID)
		assert.Equal(t, product.ID, v.ProductID)
		require.NotNil(t, v.SKU)
		assert.Len(t, v.OptionCombinations, 2)
	}
}

func TestVariantService_PreviewGenerateParity(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	preview, err := variantService.PreviewVariants(product.ID, optionIDs)
	require.NoError(t, err)

	generated, err := variantService.GenerateVariants(product.ID, optionIDs)
	require.NoError(t, err)

	require.Equal(t, preview.Count, generated.Count)
	for i := range preview.Variants {
		assert.Equal(t, preview.Variants[i].Name, generated.Variants[i].Name)
		require.NotNil(t, generated.Variants[i].SKU)
		assert.Equal(t, preview.Variants[i].SKU, *generated.Variants[i].SKU)
	}
}

func TestVariantService_GenerateVariants_SingleOption(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	result, err := variantService.GenerateVariants(product.ID, optionIDs[:1])
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "Футболка - S", result.Variants[0].Name)
	assert.Equal(t, "Футболка - M", result.Variants[1].Name)
}

func TestVariantService_ResolveErrors(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	other := &model.Product{
		Name:     "Кружка",
		Slug:     "kruzhka",
		Price:    decimal.NewFromInt(500),
		IsActive: true,
	}
	require.NoError(t, testDB.Create(other).Error)
	foreignOption := &model.ProductOption{
		ProductID: other.ID,
		Name:      "Объём",
		Slug:      "obem",
		Type:      model.OptionTypeText,
		Metadata:  "{}",
	}
	require.NoError(t, testDB.Create(foreignOption).Error)

	tests := []struct {
		name      string
		productID uint
		optionIDs []uint
		wantErr   error
	}{
		{
			name:      "Unknown product",
			productID: 9999,
			optionIDs: optionIDs,
			wantErr:   ErrProductNotFound,
		},
		{
			name:      "Empty option list",
			productID: product.ID,
			optionIDs: nil,
			wantErr:   ErrNoOptionsResolved,
		},
		{
			name:      "No id resolves",
			productID: product.ID,
			optionIDs: []uint{9999},
			wantErr:   ErrNoOptionsResolved,
		},
		{
			name:      "Foreign option rejected",
			productID: product.ID,
			optionIDs: append([]uint{foreignOption.ID}, optionIDs...),
			wantErr:   ErrOptionNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := variantService.PreviewVariants(tt.productID, tt.optionIDs)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = variantService.GenerateVariants(tt.productID, tt.optionIDs)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVariantService_CreateUpdateDelete(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, _ := seedCatalog(t, testDB)

	sku := "TSHIRT-CUSTOM"
	variant, err := variantService.CreateVariant(product.ID, CreateVariantInput{
		Name:  "Футболка - особая",
		SKU:   &sku,
		Stock: 5,
	})
	require.NoError(t, err)
	assert.NotZero(t, variant.ID)
	// Zero price falls back to the product price.
	assert.True(t, product.Price.Equal(variant.Price))

	newStock := 12
	updated, err := variantService.UpdateVariant(variant.ID, UpdateVariantInput{
		Stock: &newStock,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Stock)

	require.NoError(t, variantService.DeleteVariant(variant.ID))
	_, err = variantService.GetVariantByID(variant.ID)
	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestVariantService_SetDefaultVariant(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	result, err := variantService.GenerateVariants(product.ID, optionIDs)
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.Count, 2)

	first := result.Variants[0]
	second := result.Variants[1]

	_, err = variantService.SetDefaultVariant(first.ID)
	require.NoError(t, err)

	_, err = variantService.SetDefaultVariant(second.ID)
	require.NoError(t, err)

	// Only one default per product survives.
	var defaults int64
	require.NoError(t, testDB.Model(&model.ProductVariant{}).
		Where("product_id = ? AND is_default = ?", product.ID, true).
		Count(&defaults).Error)
	assert.Equal(t, int64(1), defaults)

	reloaded, err := variantService.GetVariantByID(second.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDefault)
}

func TestVariantService_ListLowStockVariants(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, _ := seedCatalog(t, testDB)

	low := &model.ProductVariant{
		ProductID: product.ID,
		Name:      "Футболка - S",
		Price:     product.Price,
		Stock:     1,
		MinStock:  3,
		IsActive:  true,
	}
	ok := &model.ProductVariant{
		ProductID: product.ID,
		Name:      "Футболка - M",
		Price:     product.Price,
		Stock:     10,
		MinStock:  3,
		IsActive:  true,
	}
	inactive := &model.ProductVariant{
		ProductID: product.ID,
		Name:      "Футболка - L",
		Price:     product.Price,
		Stock:     0,
		MinStock:  3,
		IsActive:  false,
	}
	require.NoError(t, testDB.Create(low).Error)
	require.NoError(t, testDB.Create(ok).Error)
	require.NoError(t, testDB.Create(inactive).Error)

	variants, err := variantService.ListLowStockVariants()
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, low.ID, variants[0].ID)
}

func TestVariantService_ExportVariants(t *testing.T) {
	variantService, testDB := setupVariantServiceTest(t)
	product, optionIDs := seedCatalog(t, testDB)

	_, err := variantService.GenerateVariants(product.ID, optionIDs)
	require.NoError(t, err)

	file, err := variantService.ExportVariants(product.ID)
	require.NoError(t, err)

	rows, err := file.GetRows("Variants")
	require.NoError(t, err)
	// Header row plus one row per variant.
	assert.Len(t, rows, 5)
	assert.Equal(t, "Name", rows[0][1])
}
