// internal/services/errors.go
package services

import "errors"

// Sentinel errors crossing the service boundary. Handlers map these to
// structured API error codes with errors.Is; raw errors never reach the
// client.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrBelowMinimumOrder  = errors.New("order total below minimum")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrCategoryInUse      = errors.New("category has products")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
