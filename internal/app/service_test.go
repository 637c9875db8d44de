package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"warehouse-manager/internal/app"
	"warehouse-manager/internal/core"
)

func newTestService(t *testing.T) (app.ApplicationService, *core.Registry) {
	t.Helper()
	registry := core.NewRegistry(5, 50)
	users := []core.User{
		{Username: "admin", Password: "admin", Wallet: 0, IsAdmin: true},
		{Username: "user1", Password: "user1", Wallet: 1000},
		{Username: "user2", Password: "user2", Wallet: 500},
	}
	for _, u := range users {
		if err := registry.AddUser(u); err != nil {
			t.Fatalf("AddUser(%s): %v", u.Username, err)
		}
	}
	if err := registry.InsertProduct("apple", 50, 20); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}
	if err := registry.InsertProduct("banana", 30, 15); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}
	return app.NewService(registry, zerolog.Nop()), registry
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	principal, err := svc.Authenticate(ctx, "admin", "admin")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !principal.IsAdmin {
		t.Error("admin principal must have IsAdmin set")
	}

	// Wrong password and unknown username must be indistinguishable.
	_, errWrongPassword := svc.Authenticate(ctx, "user1", "nope")
	_, errUnknownUser := svc.Authenticate(ctx, "ghost", "whatever")
	if !errors.Is(errWrongPassword, core.ErrAuthenticationFailed) {
		t.Errorf("wrong password err = %v, want ErrAuthenticationFailed", errWrongPassword)
	}
	if !errors.Is(errUnknownUser, core.ErrAuthenticationFailed) {
		t.Errorf("unknown user err = %v, want ErrAuthenticationFailed", errUnknownUser)
	}
	if errWrongPassword.Error() != errUnknownUser.Error() {
		t.Error("failure modes must not leak which field was wrong")
	}
}

func TestBuyProduct_CheckOrderAndEffects(t *testing.T) {
	svc, registry := newTestService(t)
	ctx := context.Background()

	result, err := svc.BuyProduct(ctx, "user1", "apple")
	if err != nil {
		t.Fatalf("BuyProduct: %v", err)
	}
	if result.Wallet != 950 {
		t.Errorf("wallet after buy = %d, want 950", result.Wallet)
	}
	p, _ := registry.FindProduct("apple")
	if p.Quantity != 19 {
		t.Errorf("quantity after buy = %d, want 19", p.Quantity)
	}

	if _, err := svc.BuyProduct(ctx, "user1", "ghost"); !errors.Is(err, core.ErrProductNotFound) {
		t.Errorf("missing product err = %v, want ErrProductNotFound", err)
	}

	// Out-of-stock wins over insufficient funds: an empty product owned by a
	// broke user reports OutOfStock.
	if err := registry.InsertProduct("gold", 10000, 0); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}
	if _, err := svc.BuyProduct(ctx, "admin", "gold"); !errors.Is(err, core.ErrOutOfStock) {
		t.Errorf("empty stock err = %v, want ErrOutOfStock", err)
	}
}

func TestBuyProduct_RejectionLeavesStateUnchanged(t *testing.T) {
	svc, registry := newTestService(t)
	ctx := context.Background()

	// admin has wallet 0, apple costs 50.
	_, err := svc.BuyProduct(ctx, "admin", "apple")
	if !errors.Is(err, core.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	u, _ := registry.FindUser("admin")
	if u.Wallet != 0 {
		t.Errorf("wallet mutated on rejection: %d", u.Wallet)
	}
	p, _ := registry.FindProduct("apple")
	if p.Quantity != 20 {
		t.Errorf("quantity mutated on rejection: %d", p.Quantity)
	}
}

func TestAddProduct_ThenShow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.AddProduct(ctx, "cherry", 25); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	p, err := svc.ShowProduct(ctx, "cherry")
	if err != nil {
		t.Fatalf("ShowProduct: %v", err)
	}
	if p.Price != 25 || p.Quantity != 10 {
		t.Errorf("cherry = %+v, want price 25 and the fixed initial quantity 10", *p)
	}

	if err := svc.AddProduct(ctx, "apple", 99); !errors.Is(err, core.ErrDuplicateProduct) {
		t.Errorf("duplicate add err = %v, want ErrDuplicateProduct", err)
	}
}

func TestCreditWallet_AcceptsNegativeAmounts(t *testing.T) {
	svc, registry := newTestService(t)
	ctx := context.Background()

	if err := svc.CreditWallet(ctx, "user2", -600); err != nil {
		t.Fatalf("CreditWallet: %v", err)
	}
	u, _ := registry.FindUser("user2")
	if u.Wallet != -100 {
		t.Errorf("wallet = %d, want -100 (negative credit applies unclamped)", u.Wallet)
	}

	if err := svc.CreditWallet(ctx, "ghost", 10); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
}

func TestBulkAdjust(t *testing.T) {
	svc, registry := newTestService(t)
	ctx := context.Background()

	result, err := svc.BulkAdjust(ctx, "apple", 5)
	if err != nil {
		t.Fatalf("BulkAdjust existing: %v", err)
	}
	if result.Created {
		t.Error("existing product reported as created")
	}
	p, _ := registry.FindProduct("apple")
	if p.Quantity != 25 {
		t.Errorf("quantity = %d, want 25", p.Quantity)
	}

	result, err = svc.BulkAdjust(ctx, "mango", 7)
	if err != nil {
		t.Fatalf("BulkAdjust new: %v", err)
	}
	if !result.Created {
		t.Error("new product not reported as created")
	}
	p, _ = registry.FindProduct("mango")
	if p.Price != 100 || p.Quantity != 7 {
		t.Errorf("mango = %+v, want default price 100 quantity 7", *p)
	}

	// Negative quantities apply unclamped to existing products.
	if _, err := svc.BulkAdjust(ctx, "banana", -20); err != nil {
		t.Fatalf("BulkAdjust negative: %v", err)
	}
	p, _ = registry.FindProduct("banana")
	if p.Quantity != -5 {
		t.Errorf("quantity = %d, want -5", p.Quantity)
	}
}
