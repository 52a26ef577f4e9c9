package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/internal/app/service"
	"github.com/vitrina/vitrina-backend/internal/errors"
	"github.com/vitrina/vitrina-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	SKU         string           `json:"sku"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	SKU         *string          `json:"sku"`
	Price       *decimal.Decimal `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	IsActive    *bool            `json:"is_active"`
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// ListProducts returns products with search, sorting and pagination
// GET /api/v1/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	opts := service.ProductListOptions{
		Search:         c.Query("search"),
		ActiveOnly:     c.Query("active") == "true",
		Sort:           repository.ProductSort(c.DefaultQuery("sort", "created_at")),
		SortAscending:  c.Query("order") == "asc",
		Limit:          limit,
		Offset:         offset,
		IncludeOptions: c.Query("include_options") == "true",
	}

	products, total, err := ctrl.productService.ListProducts(opts)
	if err != nil {
		log.Error("Failed to fetch products", err, nil)
		errors.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"total":    total,
	})
}

// GetProductByID returns a product by ID
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// CreateProduct creates a new product
// POST /api/v1/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	product, err := ctrl.productService.CreateProduct(service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrDuplicateProductSlug) {
			errors.Conflict(c, errors.ProductSlugExists, "A product with this name already exists")
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		errors.ParseAndRespond(c, http.StatusInternalServerError, err, "product create")
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct updates an existing product
// PUT /api/v1/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	product, err := ctrl.productService.UpdateProduct(id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrProductNotFound):
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
		case stderrors.Is(err, service.ErrDuplicateProductSlug):
			errors.Conflict(c, errors.ProductSlugExists, "A product with this name already exists")
		default:
			log.Error("Failed to update product", err, map[string]interface{}{
				"product_id": id,
			})
			errors.ParseAndRespond(c, http.StatusInternalServerError, err, "product update")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct deletes a product with its options, values and variants
// DELETE /api/v1/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteProduct(id); err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		errors.InternalError(c, "Failed to delete product")
		return
	}

	log.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
