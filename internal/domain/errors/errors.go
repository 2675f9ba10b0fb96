package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors sharing the same business code, so that a copy carrying
// details still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode && e.httpCode == other.httpCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Access errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Authentication credentials were not provided or are invalid",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"You do not have permission to perform this action",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"A user with this email already exists",
		"",
	)

	ErrPhoneTaken = NewBaseError(
		http.StatusBadRequest,
		"PHONE_TAKEN",
		"A user with this phone number already exists",
		"",
	)

	ErrInvalidGender = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GENDER",
		"Gender must be male or female",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"User account is disabled",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Refresh token is invalid or expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password must be at least 8 characters and contain letters and digits",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Shop-related errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrShopNameTaken = NewBaseError(
		http.StatusBadRequest,
		"SHOP_NAME_TAKEN",
		"A shop with this name already exists",
		"",
	)

	ErrShopHasProducts = NewBaseError(
		http.StatusConflict,
		"SHOP_HAS_PRODUCTS",
		"Shop still has products and cannot be deleted",
		"",
	)

	ErrShopOwnershipRequired = NewBaseError(
		http.StatusForbidden,
		"SHOP_OWNERSHIP_REQUIRED",
		"You can only add products to a shop you own",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCategoryNameTaken = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_NAME_TAKEN",
		"A category with this name already exists",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CATEGORY",
		"One or more categories do not exist",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductNameTaken = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NAME_TAKEN",
		"A product with this name already exists",
		"",
	)

	ErrProductInUse = NewBaseError(
		http.StatusConflict,
		"PRODUCT_IN_USE",
		"Product is referenced by existing orders and cannot be deleted",
		"",
	)

	ErrUnknownProduct = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PRODUCT",
		"Referenced product does not exist",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Price must be a non-negative amount with at most 2 decimal places and 8 integer digits",
		"",
	)

	ErrInvalidDiscount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT",
		"Discount must be between 0 and 100",
		"",
	)

	ErrInvalidOrdering = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDERING",
		"Unsupported ordering field",
		"",
	)

	// Cart-related errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be an integer between 1 and 32767",
		"",
	)

	ErrCartFieldNotEditable = NewBaseError(
		http.StatusBadRequest,
		"CART_FIELD_NOT_EDITABLE",
		"Only quantity can be changed on a cart item",
		"",
	)

	// Order-related errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart is empty, nothing to order",
		"",
	)

	ErrAmountOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"AMOUNT_OUT_OF_RANGE",
		"Order amount exceeds 99999999.99",
		"",
	)

	ErrCheckoutConflict = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_CONFLICT",
		"Cart changed during checkout, please retry",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_ITEM_NOT_FOUND",
		"Order item not found",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"Order status must be one of pending, processing, paid, shipped, delivered, canceled, returned",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrInvalidGrade = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GRADE",
		"Grade must be between 1 and 5",
		"",
	)

	// Media-related errors
	ErrUnsupportedMedia = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MEDIA",
		"Uploaded file must be a PNG, JPEG, GIF or WebP image within the size limit",
		"",
	)

	ErrMediaStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_STORAGE_FAILED",
		"Failed to store uploaded file",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"QR code payload does not reference a shop",
		"",
	)

	ErrQRCodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_FAILED",
		"Failed to generate QR code",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
