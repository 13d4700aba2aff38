package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPaymentNotFound is returned when a ledger account is not found.
	ErrPaymentNotFound = errors.New("payment account not found")
	// ErrCarNotFound is returned when a car is not found.
	ErrCarNotFound = errors.New("car not found")
	// ErrRentalNotFound is returned when a rental is not found.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrDuplicateCard is returned when the card number is already registered.
	ErrDuplicateCard = errors.New("card number already exists")
	// ErrInvalidCardInfo is returned when the presented card fields do not
	// match a stored account exactly.
	ErrInvalidCardInfo = errors.New("card information is incorrect")
	// ErrInsufficientBalance is returned when a debit exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrCarUnavailable is returned when the car is rented or in maintenance.
	ErrCarUnavailable = errors.New("car is not available")
	// ErrRentalCarChange is returned when an update tries to move a rental
	// to a different car. No reservation logic runs on update, so the car
	// reference is immutable through that path.
	ErrRentalCarChange = errors.New("rental car reference cannot be changed")
	// ErrInvalidCard is returned when card fields fail format validation.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidAmount is returned when amount is invalid.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrPaymentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PAYMENT_NOT_FOUND")
	case ErrCarNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CAR_NOT_FOUND")
	case ErrRentalNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "RENTAL_NOT_FOUND")
	case ErrInvoiceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "INVOICE_NOT_FOUND")
	case ErrDuplicateCard:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_CARD")
	case ErrInvalidCardInfo:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CARD_INFO")
	case ErrInsufficientBalance:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_BALANCE")
	case ErrCarUnavailable:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CAR_UNAVAILABLE")
	case ErrRentalCarChange:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "RENTAL_CAR_CHANGE")
	case ErrInvalidCard:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CARD")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
