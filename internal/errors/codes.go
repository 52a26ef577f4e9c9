package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The admin frontend maps these codes to localized messages.

const (
	// Authentication (AUTH_)
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"

	// Authorization (AUTHZ_)
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// Resources (RESOURCE_)
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// Products (PRODUCT_)
	ProductNotFound   = "PRODUCT_NOT_FOUND"
	ProductSlugExists = "PRODUCT_SLUG_EXISTS"

	// Options (OPTION_)
	OptionNotFound      = "OPTION_NOT_FOUND"
	OptionNameExists    = "OPTION_NAME_EXISTS"
	OptionValueNotFound = "OPTION_VALUE_NOT_FOUND"
	OptionValueExists   = "OPTION_VALUE_EXISTS"
	OptionNotOwned      = "OPTION_NOT_OWNED_BY_PRODUCT"
	OptionNoneResolved  = "OPTION_NONE_RESOLVED"

	// Variants (VARIANT_)
	VariantNotFound = "VARIANT_NOT_FOUND"

	// Internal (INTERNAL_)
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
