package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitrina/vitrina-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportVariants builds an xlsx workbook with one row per variant of the
// product. Option values are joined into a single column in linkage order.
func (s *variantService) ExportVariants(productID uint) (*excelize.File, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	variants, err := s.variantRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Variants"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Name", "SKU", "Barcode", "Price", "Sale Price", "Stock", "Min Stock", "Options", "Active", "Default"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, variant := range variants {
		sku := ""
		if variant.SKU != nil {
			sku = *variant.SKU
		}
		barcode := ""
		if variant.Barcode != nil {
			barcode = *variant.Barcode
		}
		salePrice := ""
		if variant.SalePrice != nil {
			salePrice = variant.SalePrice.StringFixed(2)
		}

		optionParts := make([]string, 0, len(variant.OptionCombinations))
		for _, combination := range variant.OptionCombinations {
			optionParts = append(optionParts, fmt.Sprintf("%s=%s",
				combination.Option.Name, combination.OptionValue.DisplayName))
		}

		values := []interface{}{
			variant.ID,
			variant.Name,
			sku,
			barcode,
			variant.Price.StringFixed(2),
			salePrice,
			variant.Stock,
			variant.MinStock,
			strings.Join(optionParts, "; "),
			variant.IsActive,
			variant.IsDefault,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("Variants exported", map[string]interface{}{
		"product_id": product.ID,
		"count":      len(variants),
	})
	return f, nil
}
