package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/service"
	"github.com/vitrina/vitrina-backend/internal/errors"
	"github.com/vitrina/vitrina-backend/internal/middleware"
)

type OptionController struct {
	optionService service.OptionService
}

func NewOptionController(optionService service.OptionService) *OptionController {
	return &OptionController{
		optionService: optionService,
	}
}

type CreateOptionRequest struct {
	Name      string           `json:"name" binding:"required"`
	Type      model.OptionType `json:"type"`
	SortOrder int              `json:"sort_order"`
	Metadata  string           `json:"metadata"`
}

type UpdateOptionRequest struct {
	Name      *string           `json:"name"`
	Type      *model.OptionType `json:"type"`
	SortOrder *int              `json:"sort_order"`
	Metadata  *string           `json:"metadata"`
}

type CreateOptionValueRequest struct {
	Value       string `json:"value" binding:"required"`
	DisplayName string `json:"display_name"`
	Metadata    string `json:"metadata"`
}

type UpdateOptionValueRequest struct {
	Value       *string `json:"value"`
	DisplayName *string `json:"display_name"`
	SortOrder   *int    `json:"sort_order"`
	Metadata    *string `json:"metadata"`
}

// ListOptions returns all options of a product with their values
// GET /api/v1/products/:id/options
func (ctrl *OptionController) ListOptions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	options, err := ctrl.optionService.ListOptions(productID)
	if err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch options", err, map[string]interface{}{
			"product_id": productID,
		})
		errors.InternalError(c, "Failed to fetch options")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"options": options,
		"count":   len(options),
	})
}

// CreateOption creates a new option for a product
// POST /api/v1/products/:id/options
func (ctrl *OptionController) CreateOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid option creation request", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	option, err := ctrl.optionService.CreateOption(productID, service.CreateOptionInput{
		Name:      req.Name,
		Type:      req.Type,
		SortOrder: req.SortOrder,
		Metadata:  req.Metadata,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrProductNotFound):
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
		case stderrors.Is(err, service.ErrDuplicateOptionName):
			errors.Conflict(c, errors.OptionNameExists, "An option with this name already exists for the product")
		default:
			log.Error("Failed to create option", err, map[string]interface{}{
				"product_id": productID,
				"name":       req.Name,
			})
			errors.ParseAndRespond(c, http.StatusInternalServerError, err, "option create")
		}
		return
	}

	log.Info("Option created successfully", map[string]interface{}{
		"option_id":  option.ID,
		"product_id": productID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Option created successfully",
		"option":  option,
	})
}

// UpdateOption updates an option
// PUT /api/v1/options/:id
func (ctrl *OptionController) UpdateOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	optionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	option, err := ctrl.optionService.UpdateOption(optionID, service.UpdateOptionInput{
		Name:      req.Name,
		Type:      req.Type,
		SortOrder: req.SortOrder,
		Metadata:  req.Metadata,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrOptionNotFound):
			errors.NotFound(c, errors.OptionNotFound, "Option not found")
		case stderrors.Is(err, service.ErrDuplicateOptionName):
			errors.Conflict(c, errors.OptionNameExists, "An option with this name already exists for the product")
		default:
			log.Error("Failed to update option", err, map[string]interface{}{
				"option_id": optionID,
			})
			errors.InternalError(c, "Failed to update option")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Option updated successfully",
		"option":  option,
	})
}

// DeleteOption deletes an option, its values and variant linkages
// DELETE /api/v1/options/:id
func (ctrl *OptionController) DeleteOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	optionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.optionService.DeleteOption(optionID); err != nil {
		if stderrors.Is(err, service.ErrOptionNotFound) {
			errors.NotFound(c, errors.OptionNotFound, "Option not found")
			return
		}
		log.Error("Failed to delete option", err, map[string]interface{}{
			"option_id": optionID,
		})
		errors.InternalError(c, "Failed to delete option")
		return
	}

	log.Info("Option deleted successfully", map[string]interface{}{
		"option_id": optionID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Option deleted successfully",
	})
}

// AddOptionValue appends a value to an option
// POST /api/v1/options/:id/values
func (ctrl *OptionController) AddOptionValue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	optionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreateOptionValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid option value request", map[string]interface{}{
			"option_id": optionID,
			"error":     err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	value, err := ctrl.optionService.AddOptionValue(optionID, service.CreateOptionValueInput{
		Value:       req.Value,
		DisplayName: req.DisplayName,
		Metadata:    req.Metadata,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrOptionNotFound):
			errors.NotFound(c, errors.OptionNotFound, "Option not found")
		case stderrors.Is(err, service.ErrDuplicateOptionValue):
			errors.Conflict(c, errors.OptionValueExists, "This value already exists for the option")
		default:
			log.Error("Failed to add option value", err, map[string]interface{}{
				"option_id": optionID,
				"value":     req.Value,
			})
			errors.ParseAndRespond(c, http.StatusInternalServerError, err, "option value create")
		}
		return
	}

	log.Info("Option value added successfully", map[string]interface{}{
		"value_id":  value.ID,
		"option_id": optionID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Option value added successfully",
		"value":   value,
	})
}

// UpdateOptionValue updates an option value
// PUT /api/v1/option-values/:id
func (ctrl *OptionController) UpdateOptionValue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	valueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOptionValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, err.Error())
		return
	}

	value, err := ctrl.optionService.UpdateOptionValue(valueID, service.UpdateOptionValueInput{
		Value:       req.Value,
		DisplayName: req.DisplayName,
		SortOrder:   req.SortOrder,
		Metadata:    req.Metadata,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrOptionValueNotFound):
			errors.NotFound(c, errors.OptionValueNotFound, "Option value not found")
		case stderrors.Is(err, service.ErrDuplicateOptionValue):
			errors.Conflict(c, errors.OptionValueExists, "This value already exists for the option")
		default:
			log.Error("Failed to update option value", err, map[string]interface{}{
				"value_id": valueID,
			})
			errors.InternalError(c, "Failed to update option value")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Option value updated successfully",
		"value":   value,
	})
}

// DeleteOptionValue deletes an option value and its variant linkages
// DELETE /api/v1/option-values/:id
func (ctrl *OptionController) DeleteOptionValue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	valueID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.optionService.DeleteOptionValue(valueID); err != nil {
		if stderrors.Is(err, service.ErrOptionValueNotFound) {
			errors.NotFound(c, errors.OptionValueNotFound, "Option value not found")
			return
		}
		log.Error("Failed to delete option value", err, map[string]interface{}{
			"value_id": valueID,
		})
		errors.InternalError(c, "Failed to delete option value")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Option value deleted successfully",
	})
}
