package core

import "fmt"

// Registry owns the mutable user and product collections. Capacity is
// bounded: insertion beyond the configured limits fails with
// ErrCapacityExceeded instead of growing the collections.
//
// Field mutators (SetPrice, AdjustQuantity, AdjustWallet) perform no
// clamping. Callers must check that the resulting value stays non-negative
// before calling, where that invariant applies.
//
// Products keep their insertion order. Removal compacts the remaining
// records without reordering them, so listings and snapshots are stable.
// Renaming deliberately skips collision checks; when a rename makes two
// records share a name, lookups resolve to the earlier record.
type Registry struct {
	maxUsers    int
	maxProducts int

	users    map[string]*User
	products []*Product
	index    map[string]int // product name -> first position in products
}

// NewRegistry returns an empty registry with the given capacity limits.
func NewRegistry(maxUsers, maxProducts int) *Registry {
	return &Registry{
		maxUsers:    maxUsers,
		maxProducts: maxProducts,
		users:       make(map[string]*User),
		index:       make(map[string]int),
	}
}

// AddUser registers an account. Intended for startup seeding only.
func (r *Registry) AddUser(u User) error {
	if len(r.users) >= r.maxUsers {
		return ErrCapacityExceeded
	}
	if _, exists := r.users[u.Username]; exists {
		return fmt.Errorf("user %q already registered", u.Username)
	}
	user := u
	r.users[u.Username] = &user
	return nil
}

// FindUser looks up an account by exact username.
func (r *Registry) FindUser(username string) (*User, bool) {
	u, ok := r.users[username]
	return u, ok
}

// FindProduct looks up the first active product with the given name.
func (r *Registry) FindProduct(name string) (*Product, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.products[i], true
}

// InsertProduct appends a new product record.
func (r *Registry) InsertProduct(name string, price, quantity int) error {
	if _, exists := r.index[name]; exists {
		return ErrDuplicateProduct
	}
	if len(r.products) >= r.maxProducts {
		return ErrCapacityExceeded
	}
	r.products = append(r.products, &Product{Name: name, Price: price, Quantity: quantity})
	r.index[name] = len(r.products) - 1
	return nil
}

// RemoveProduct deletes the first record with the given name, preserving
// the relative order of the remaining records.
func (r *Registry) RemoveProduct(name string) error {
	i, ok := r.index[name]
	if !ok {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	r.reindex()
	return nil
}

// RenameProduct changes a product's name. No collision check: if newName
// already belongs to another record, both records coexist and lookups
// resolve to the one earlier in insertion order.
func (r *Registry) RenameProduct(name, newName string) error {
	i, ok := r.index[name]
	if !ok {
		return ErrProductNotFound
	}
	r.products[i].Name = newName
	r.reindex()
	return nil
}

// SetPrice overwrites a product's price.
func (r *Registry) SetPrice(name string, price int) error {
	p, ok := r.FindProduct(name)
	if !ok {
		return ErrProductNotFound
	}
	p.Price = price
	return nil
}

// AdjustQuantity adds delta to a product's quantity without clamping.
func (r *Registry) AdjustQuantity(name string, delta int) error {
	p, ok := r.FindProduct(name)
	if !ok {
		return ErrProductNotFound
	}
	p.Quantity += delta
	return nil
}

// AdjustWallet adds delta to a user's wallet without clamping.
func (r *Registry) AdjustWallet(username string, delta int) error {
	u, ok := r.FindUser(username)
	if !ok {
		return ErrUserNotFound
	}
	u.Wallet += delta
	return nil
}

// Products returns a copy of the active records in insertion order.
func (r *Registry) Products() []Product {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out
}

// ReplaceProducts swaps the whole catalog, used when restoring a snapshot.
// Records beyond capacity are dropped; later duplicates stay unreachable by
// name lookup, same as after a colliding rename.
func (r *Registry) ReplaceProducts(products []Product) {
	r.products = r.products[:0]
	for _, p := range products {
		if len(r.products) >= r.maxProducts {
			break
		}
		record := p
		r.products = append(r.products, &record)
	}
	r.reindex()
}

func (r *Registry) reindex() {
	r.index = make(map[string]int, len(r.products))
	for i, p := range r.products {
		if _, exists := r.index[p.Name]; !exists {
			r.index[p.Name] = i
		}
	}
}
