package app

import (
	"context"
)

// ApplicationService is the single interface UI adapters call. It decouples
// presentation from registry logic. Implementations must contain no
// fmt.Println and no display logic of any kind; they return taxonomy errors
// for the adapter to render.
type ApplicationService interface {
	// Authenticate checks a username/password pair against the registry.
	// Wrong password and unknown username both return
	// core.ErrAuthenticationFailed, leaking nothing about which field failed.
	Authenticate(ctx context.Context, username, password string) (*SessionResult, error)

	// Balance reports a user's current wallet value.
	Balance(ctx context.Context, username string) (int, error)

	// ShowProduct returns a read view of one catalog record.
	ShowProduct(ctx context.Context, name string) (*ProductResult, error)

	// BuyProduct purchases one unit for the given user. Checks run in order:
	// product exists, quantity > 0, wallet >= price. Nothing mutates when a
	// check fails.
	BuyProduct(ctx context.Context, username, name string) (*PurchaseResult, error)

	// AddProduct inserts a new product with the fixed initial quantity of 10.
	AddProduct(ctx context.Context, name string, price int) error

	// RemoveProduct deletes a product, preserving the order of the remainder.
	RemoveProduct(ctx context.Context, name string) error

	// RenameProduct changes a product's name without collision checking.
	RenameProduct(ctx context.Context, name, newName string) error

	// SetPrice overwrites a product's price.
	SetPrice(ctx context.Context, name string, price int) error

	// CreditWallet adds amount to a user's wallet. Amount may be negative.
	CreditWallet(ctx context.Context, username string, amount int) error

	// BulkAdjust applies one (item, qty) pair of a bulk command: an existing
	// product's quantity is adjusted by qty (which may be negative), a
	// missing product is created at the fixed default price of 100.
	BulkAdjust(ctx context.Context, name string, qty int) (*BulkResult, error)

	// ListProducts returns all active products in insertion order.
	ListProducts(ctx context.Context) ([]ProductResult, error)
}
