package core

import "errors"

// Error taxonomy for registry and session operations. All of these are
// recovered locally: the session renders a message and keeps running.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateProduct     = errors.New("product already exists")
	ErrCapacityExceeded     = errors.New("capacity reached")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrOutOfStock           = errors.New("out of stock")
	ErrInsufficientFunds    = errors.New("insufficient wallet balance")
	ErrAuthenticationFailed = errors.New("incorrect username or password")
)
