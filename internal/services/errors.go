// internal/services/errors.go
package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// into HTTP status codes and localized messages.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username or email already registered")
	ErrUserNotFound       = errors.New("user not found")

	ErrArtworkNotFound = errors.New("artwork not found")
	ErrNotArtworkOwner = errors.New("artwork belongs to another seller")
	ErrArtworkInactive = errors.New("artwork is not available")
	ErrArtworkNoStock  = errors.New("artwork is out of stock")

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrNotCartOwner     = errors.New("cart item belongs to another user")
	ErrEmptyCart        = errors.New("cart is empty")

	ErrOrderNotFound     = errors.New("order not found")
	ErrNotOrderOwner     = errors.New("order belongs to another user")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotPayable   = errors.New("order is not awaiting payment")

	ErrEventNotFound = errors.New("event not found")

	ErrSellerOnly = errors.New("seller account required")
)
