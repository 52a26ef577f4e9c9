package controller

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vitrina/vitrina-backend/internal/app/service"
	"github.com/vitrina/vitrina-backend/internal/errors"
	"github.com/vitrina/vitrina-backend/internal/middleware"
)

type VariantController struct {
	variantService service.VariantService
}

func NewVariantController(variantService service.VariantService) *VariantController {
	return &VariantController{
		variantService: variantService,
	}
}

type GenerateVariantsRequest struct {
	OptionIDs []uint `json:"option_ids" binding:"required,min=1"`
}

type CreateVariantRequest struct {
	Name      string           `json:"name" binding:"required"`
	SKU       *string          `json:"sku"`
	Barcode   *string          `json:"barcode"`
	Price     decimal.Decimal  `json:"price"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Stock     int              `json:"stock" binding:"gte=0"`
	MinStock  int              `json:"min_stock" binding:"gte=0"`
	Weight    *float64         `json:"weight"`
	Width     *float64         `json:"width"`
	Height    *float64         `json:"height"`
	Depth     *float64         `json:"depth"`
	IsActive  *bool            `json:"is_active"`
	IsDefault bool             `json:"is_default"`
}

type UpdateVariantRequest struct {
	Name      *string          `json:"name"`
	SKU       *string          `json:"sku"`
	Barcode   *string          `json:"barcode"`
	Price     *decimal.Decimal `json:"price"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	Stock     *int             `json:"stock"`
	MinStock  *int             `json:"min_stock"`
	Weight    *float64         `json:"weight"`
	Width     *float64         `json:"width"`
	Height    *float64         `json:"height"`
	Depth     *float64         `json:"depth"`
	IsActive  *bool            `json:"is_active"`
}

// respondVariantResolveError maps the shared preview/generate failures.
func respondVariantResolveError(c *gin.Context, err error) bool {
	switch {
	case stderrors.Is(err, service.ErrProductNotFound):
		errors.NotFound(c, errors.ProductNotFound, "Product not found")
	case stderrors.Is(err, service.ErrNoOptionsResolved):
		errors.BadRequest(c, errors.OptionNoneResolved, "None of the given option ids resolved to options of this product")
	case stderrors.Is(err, service.ErrOptionNotOwned):
		errors.BadRequest(c, errors.OptionNotOwned, "One or more options do not belong to this product")
	default:
		return false
	}
	return true
}

// PreviewVariants computes the variants generation would create
// POST /api/v1/products/:id/variants/preview
func (ctrl *VariantController) PreviewVariants(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req GenerateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid preview request", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "option_ids must contain at least one id")
		return
	}

	result, err := ctrl.variantService.PreviewVariants(productID, req.OptionIDs)
	if err != nil {
		if respondVariantResolveError(c, err) {
			return
		}
		log.Error("Failed to preview variants", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.InternalError(c, "Failed to preview variants")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateVariants persists the full combination set
// POST /api/v1/products/:id/variants/generate
func (ctrl *VariantController) GenerateVariants(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req GenerateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid generate request", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "option_ids must contain at least one id")
		return
	}

	result, err := ctrl.variantService.GenerateVariants(productID, req.OptionIDs)
	if err != nil {
		if respondVariantResolveError(c, err) {
			return
		}
		log.Error("Failed to generate variants", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.ParseAndRespond(c, http.StatusInternalServerError, err, "variant generate")
		return
	}

	log.Info("Variants generated successfully", map[string]interface{}{
		"product_id": productID,
		"count":      result.Count,
	})

	c.JSON(http.StatusCreated, result)
}

// ListVariants returns all variants of a product
// GET /api/v1/products/:id/variants
func (ctrl *VariantController) ListVariants(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variants, err := ctrl.variantService.ListVariants(productID)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch variants", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.InternalError(c, "Failed to fetch variants")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"variants": variants,
		"count":    len(variants),
	})
}

// CreateVariant creates a single variant by hand
// POST /api/v1/products/:id/variants
func (ctrl *VariantController) CreateVariant(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	variant, err := ctrl.variantService.CreateVariant(productID, service.CreateVariantInput{
		Name:      req.Name,
		SKU:       req.SKU,
		Barcode:   req.Barcode,
		Price:     req.Price,
		SalePrice: req.SalePrice,
		CostPrice: req.CostPrice,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Weight:    req.Weight,
		Width:     req.Width,
		Height:    req.Height,
		Depth:     req.Depth,
		IsActive:  req.IsActive,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to create variant", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.InternalError(c, "Failed to create variant")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Variant created successfully",
		"variant": variant,
	})
}

// GetVariantByID returns a variant with its option combinations
// GET /api/v1/variants/:id
func (ctrl *VariantController) GetVariantByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variant, err := ctrl.variantService.GetVariantByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrVariantNotFound) {
			errors.NotFound(c, errors.VariantNotFound, "Variant not found")
			return
		}
		log.Error("Failed to fetch variant", err, map[string]interface{}{
			"variant_id": id,
		})
		errors.InternalError(c, "Failed to fetch variant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"variant": variant,
	})
}

// UpdateVariant updates a variant
// PUT /api/v1/variants/:id
func (ctrl *VariantController) UpdateVariant(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	variant, err := ctrl.variantService.UpdateVariant(id, service.UpdateVariantInput{
		Name:      req.Name,
		SKU:       req.SKU,
		Barcode:   req.Barcode,
		Price:     req.Price,
		SalePrice: req.SalePrice,
		CostPrice: req.CostPrice,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Weight:    req.Weight,
		Width:     req.Width,
		Height:    req.Height,
		Depth:     req.Depth,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrVariantNotFound) {
			errors.NotFound(c, errors.VariantNotFound, "Variant not found")
			return
		}
		log.Error("Failed to update variant", err, map[string]interface{}{
			"variant_id": id,
		})
		errors.InternalError(c, "Failed to update variant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Variant updated successfully",
		"variant": variant,
	})
}

// DeleteVariant deletes a variant and its option linkages
// DELETE /api/v1/variants/:id
func (ctrl *VariantController) DeleteVariant(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.variantService.DeleteVariant(id); err != nil {
		if stderrors.Is(err, service.ErrVariantNotFound) {
			errors.NotFound(c, errors.VariantNotFound, "Variant not found")
			return
		}
		log.Error("Failed to delete variant", err, map[string]interface{}{
			"variant_id": id,
		})
		errors.InternalError(c, "Failed to delete variant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Variant deleted successfully",
	})
}

// SetDefaultVariant makes a variant its product's default
// PUT /api/v1/variants/:id/default
func (ctrl *VariantController) SetDefaultVariant(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	variant, err := ctrl.variantService.SetDefaultVariant(id)
	if err != nil {
		if stderrors.Is(err, service.ErrVariantNotFound) {
			errors.NotFound(c, errors.VariantNotFound, "Variant not found")
			return
		}
		log.Error("Failed to set default variant", err, map[string]interface{}{
			"variant_id": id,
		})
		errors.InternalError(c, "Failed to set default variant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default variant updated successfully",
		"variant": variant,
	})
}

// ExportVariants streams the product's variants as an xlsx workbook
// GET /api/v1/products/:id/variants/export
func (ctrl *VariantController) ExportVariants(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := ctrl.variantService.ExportVariants(productID)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to export variants", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.InternalError(c, "Failed to export variants")
		return
	}

	filename := fmt.Sprintf("variants-%d.xlsx", productID)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		log.Error("Failed to write export file", err, map[string]interface{}{
			"product_id": productID,
		})
	}
}
