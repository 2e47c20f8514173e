package models

import "errors"

// Domain errors
var (
	ErrStockNotFound = errors.New("stock not found")
	ErrUnknownSource = errors.New("unknown source")
	ErrInvalidMarket = errors.New("invalid market")
)

// IsNotFoundError checks if the error is a not found error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrStockNotFound) || errors.Is(err, ErrUnknownSource)
}
