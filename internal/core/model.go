package core

// User is an account known to the registry. Accounts are created only at
// process start from seed data and are never destroyed during a run.
// Password is an opaque string compared exact-match. Wallet is held in the
// smallest currency unit.
type User struct {
	Username string
	Password string
	Wallet   int
	IsAdmin  bool
}

// Product is an active catalog record. Names are unique among active
// products and compared case-sensitively.
type Product struct {
	Name     string
	Price    int
	Quantity int
}
