package app

// SessionResult describes a successfully authenticated principal. The
// username doubles as the registry key the session stays bound to.
type SessionResult struct {
	Username string
	IsAdmin  bool
}

// ProductResult is a read view of one catalog record.
type ProductResult struct {
	Name     string
	Price    int
	Quantity int
}

// PurchaseResult reports a completed buy.
type PurchaseResult struct {
	Product string
	Price   int
	Wallet  int // balance after the purchase
}

// BulkResult reports the effect of one applied bulk pair.
type BulkResult struct {
	Product  string
	Quantity int
	Created  bool // true when the product was created rather than adjusted
}
