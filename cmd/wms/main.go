package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"warehouse-manager/internal/adapters/repl"
	"warehouse-manager/internal/app"
	"warehouse-manager/internal/audit"
	"warehouse-manager/internal/config"
	"warehouse-manager/internal/core"
	"warehouse-manager/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Flag values override their environment counterparts when set.
type overrides struct {
	seedPath    string
	auditPath   string
	catalogPath string
}

func newRootCmd() *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "wms",
		Short: "Interactive warehouse inventory and wallet manager",
		Long: `wms runs an interactive, session-based inventory and wallet manager.
Users authenticate, inspect the product catalog, and purchase items against
a personal wallet balance; administrators mutate the catalog and other
users' balances. Sessions are audited to a log file and the catalog is
written to a snapshot file on exit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVar(&o.seedPath, "seed", "", "YAML seed file for users and products (default: built-in seed)")
	cmd.Flags().StringVar(&o.auditPath, "audit-log", "", "audit log file (default: $WMS_AUDIT_LOG or log.txt)")
	cmd.Flags().StringVar(&o.catalogPath, "catalog", "", "catalog snapshot file (default: $WMS_CATALOG_FILE or products.txt)")

	cmd.AddCommand(newCatalogCmd())
	return cmd
}

func run(ctx context.Context, o overrides) error {
	cfg, err := loadConfig(ctx, o)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	catalog := store.NewCatalog(cfg.CatalogPath)
	if cfg.RestoreCatalog {
		products, err := catalog.Load()
		if err != nil {
			return err
		}
		if len(products) > 0 {
			registry.ReplaceProducts(products)
			logger.Info().Int("count", len(products)).Msg("catalog restored from snapshot")
		}
	}

	sink := audit.NewFileSink(cfg.AuditLogPath, logger)
	svc := app.NewService(registry, logger)

	repl.Run(ctx, svc, sink, logger, bufio.NewReader(os.Stdin), os.Stdout)

	if err := catalog.Save(registry.Products()); err != nil {
		logger.Error().Err(err).Msg("catalog snapshot failed")
	}
	fmt.Println("\nExiting the program. Goodbye!")
	return nil
}

// newCatalogCmd inspects the last saved catalog snapshot without starting a
// session.
func newCatalogCmd() *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the last saved catalog snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Context(), o)
			if err != nil {
				return err
			}
			products, err := store.NewCatalog(cfg.CatalogPath).Load()
			if err != nil {
				return err
			}
			printCatalog(cfg.CatalogPath, products)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.catalogPath, "catalog", "", "catalog snapshot file (default: $WMS_CATALOG_FILE or products.txt)")
	return cmd
}

func loadConfig(ctx context.Context, o overrides) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if o.seedPath != "" {
		cfg.SeedPath = o.seedPath
	}
	if o.auditPath != "" {
		cfg.AuditLogPath = o.auditPath
	}
	if o.catalogPath != "" {
		cfg.CatalogPath = o.catalogPath
	}
	return cfg, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	// Diagnostics go to stderr so the interactive console stays clean.
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func buildRegistry(cfg *config.Config) (*core.Registry, error) {
	seed := config.DefaultSeed()
	if cfg.SeedPath != "" {
		loaded, err := config.LoadSeed(cfg.SeedPath)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	registry := core.NewRegistry(cfg.MaxUsers, cfg.MaxProducts)
	for _, u := range seed.Users {
		if err := registry.AddUser(core.User{
			Username: u.Username,
			Password: u.Password,
			Wallet:   u.Wallet,
			IsAdmin:  u.Admin,
		}); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}
	for _, p := range seed.Products {
		if err := registry.InsertProduct(p.Name, p.Price, p.Quantity); err != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	return registry, nil
}

func printCatalog(path string, products []core.Product) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 52))
	fmt.Printf("  CATALOG SNAPSHOT — %s\n", path)
	fmt.Println(strings.Repeat("=", 52))
	if len(products) == 0 {
		fmt.Println("  No products found.")
		fmt.Println(strings.Repeat("=", 52))
		return
	}
	fmt.Printf("  %-25s %10s %10s\n", "NAME", "PRICE", "QUANTITY")
	fmt.Println(strings.Repeat("-", 52))
	for _, p := range products {
		fmt.Printf("  %-25s %10d %10d\n", p.Name, p.Price, p.Quantity)
	}
	fmt.Println(strings.Repeat("=", 52))
}
