package errors

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo is a parsed error: a stable code plus a message safe to show.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps database errors to user-facing codes without leaking
// driver details. The context string hints at the entity being handled
// ("product", "option", "variant").
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{InternalServerError, "An internal error occurred"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{ResourceNotFound, notFoundMessage(context)}
	}

	errStr := strings.ToLower(err.Error())

	// Postgres unique violation (23505)
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// Postgres foreign key violation (23503)
	if strings.Contains(errStr, "foreign key constraint") {
		if strings.Contains(errStr, "still referenced") {
			return ErrorInfo{ResourceConflict, "Referenced data prevents this delete"}
		}
		return ErrorInfo{ResourceNotFound, "Referenced data does not exist"}
	}

	// Postgres not-null violation (23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{ValidationRequired, "A required field is missing"}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{InternalDatabaseError, "Storage is unavailable, please try again later"}
	}

	return ErrorInfo{InternalServerError, "An internal error occurred, please try again later"}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	switch {
	case strings.Contains(errStr, "idx_product_option_name"):
		return ErrorInfo{OptionNameExists, "An option with this name already exists for the product"}
	case strings.Contains(errStr, "idx_option_value"):
		return ErrorInfo{OptionValueExists, "This value already exists for the option"}
	case strings.Contains(errStr, "idx_variant_option"):
		return ErrorInfo{ResourceConflict, "The variant already has a value for this option"}
	case strings.Contains(errStr, "slug"):
		return ErrorInfo{ProductSlugExists, "A product with this slug already exists"}
	case strings.Contains(errStr, "email"):
		return ErrorInfo{ResourceAlreadyExists, "This email is already in use"}
	default:
		return ErrorInfo{ResourceAlreadyExists, "This record already exists"}
	}
}

// ParseAndRespond parses the error and writes the standard envelope.
func ParseAndRespond(c *gin.Context, statusCode int, err error, context string) {
	info := ParseError(err, context)
	RespondWithError(c, statusCode, info.Code, info.Message)
}

func notFoundMessage(context string) string {
	switch {
	case strings.Contains(context, "product"):
		return "Product not found"
	case strings.Contains(context, "option value"):
		return "Option value not found"
	case strings.Contains(context, "option"):
		return "Option not found"
	case strings.Contains(context, "variant"):
		return "Variant not found"
	case strings.Contains(context, "user"):
		return "User not found"
	default:
		return "The requested data was not found"
	}
}
