package app

import (
	"context"

	"github.com/rs/zerolog"

	"warehouse-manager/internal/core"
)

const (
	// Quantity assigned to products created through add.
	initialQuantity = 10
	// Price assigned to products created through bulk.
	bulkDefaultPrice = 100
)

type appService struct {
	registry *core.Registry
	logger   zerolog.Logger
}

// NewService constructs an appService that satisfies ApplicationService.
func NewService(registry *core.Registry, logger zerolog.Logger) ApplicationService {
	return &appService{
		registry: registry,
		logger:   logger.With().Str("component", "app").Logger(),
	}
}

func (s *appService) Authenticate(_ context.Context, username, password string) (*SessionResult, error) {
	u, ok := s.registry.FindUser(username)
	if !ok || u.Password != password {
		s.logger.Warn().Str("username", username).Msg("authentication failed")
		return nil, core.ErrAuthenticationFailed
	}
	s.logger.Info().Str("username", username).Bool("admin", u.IsAdmin).Msg("authenticated")
	return &SessionResult{Username: u.Username, IsAdmin: u.IsAdmin}, nil
}

func (s *appService) Balance(_ context.Context, username string) (int, error) {
	u, ok := s.registry.FindUser(username)
	if !ok {
		return 0, core.ErrUserNotFound
	}
	return u.Wallet, nil
}

func (s *appService) ShowProduct(_ context.Context, name string) (*ProductResult, error) {
	p, ok := s.registry.FindProduct(name)
	if !ok {
		return nil, core.ErrProductNotFound
	}
	return &ProductResult{Name: p.Name, Price: p.Price, Quantity: p.Quantity}, nil
}

// BuyProduct checks in order: product exists, in stock, funds cover the
// price. The wallet and quantity mutations happen together only after every
// check has passed, so a rejected buy leaves both records untouched.
func (s *appService) BuyProduct(_ context.Context, username, name string) (*PurchaseResult, error) {
	p, ok := s.registry.FindProduct(name)
	if !ok {
		return nil, core.ErrProductNotFound
	}
	if p.Quantity <= 0 {
		return nil, core.ErrOutOfStock
	}
	u, ok := s.registry.FindUser(username)
	if !ok {
		return nil, core.ErrUserNotFound
	}
	if u.Wallet < p.Price {
		return nil, core.ErrInsufficientFunds
	}

	if err := s.registry.AdjustWallet(username, -p.Price); err != nil {
		return nil, err
	}
	if err := s.registry.AdjustQuantity(name, -1); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("username", username).Str("product", p.Name).
		Int("price", p.Price).Int("wallet", u.Wallet).Msg("purchase")
	return &PurchaseResult{Product: p.Name, Price: p.Price, Wallet: u.Wallet}, nil
}

func (s *appService) AddProduct(_ context.Context, name string, price int) error {
	if err := s.registry.InsertProduct(name, price, initialQuantity); err != nil {
		return err
	}
	s.logger.Debug().Str("product", name).Int("price", price).Msg("product added")
	return nil
}

func (s *appService) RemoveProduct(_ context.Context, name string) error {
	if err := s.registry.RemoveProduct(name); err != nil {
		return err
	}
	s.logger.Debug().Str("product", name).Msg("product removed")
	return nil
}

func (s *appService) RenameProduct(_ context.Context, name, newName string) error {
	if err := s.registry.RenameProduct(name, newName); err != nil {
		return err
	}
	s.logger.Debug().Str("product", name).Str("new_name", newName).Msg("product renamed")
	return nil
}

func (s *appService) SetPrice(_ context.Context, name string, price int) error {
	if err := s.registry.SetPrice(name, price); err != nil {
		return err
	}
	s.logger.Debug().Str("product", name).Int("price", price).Msg("price changed")
	return nil
}

func (s *appService) CreditWallet(_ context.Context, username string, amount int) error {
	if err := s.registry.AdjustWallet(username, amount); err != nil {
		return err
	}
	s.logger.Debug().Str("username", username).Int("amount", amount).Msg("wallet credited")
	return nil
}

func (s *appService) BulkAdjust(_ context.Context, name string, qty int) (*BulkResult, error) {
	if _, ok := s.registry.FindProduct(name); ok {
		if err := s.registry.AdjustQuantity(name, qty); err != nil {
			return nil, err
		}
		s.logger.Debug().Str("product", name).Int("qty", qty).Msg("bulk adjust")
		return &BulkResult{Product: name, Quantity: qty}, nil
	}
	if err := s.registry.InsertProduct(name, bulkDefaultPrice, qty); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("product", name).Int("qty", qty).Msg("bulk create")
	return &BulkResult{Product: name, Quantity: qty, Created: true}, nil
}

func (s *appService) ListProducts(_ context.Context) ([]ProductResult, error) {
	products := s.registry.Products()
	out := make([]ProductResult, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResult{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	return out, nil
}
