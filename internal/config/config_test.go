package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"warehouse-manager/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AuditLogPath != "log.txt" {
		t.Errorf("AuditLogPath = %q, want log.txt", cfg.AuditLogPath)
	}
	if cfg.CatalogPath != "products.txt" {
		t.Errorf("CatalogPath = %q, want products.txt", cfg.CatalogPath)
	}
	if cfg.MaxUsers != 5 || cfg.MaxProducts != 50 {
		t.Errorf("capacity = %d/%d, want 5/50", cfg.MaxUsers, cfg.MaxProducts)
	}
	if cfg.RestoreCatalog {
		t.Error("RestoreCatalog must default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WMS_AUDIT_LOG", "/tmp/audit.log")
	t.Setenv("WMS_MAX_PRODUCTS", "7")

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AuditLogPath != "/tmp/audit.log" {
		t.Errorf("AuditLogPath = %q", cfg.AuditLogPath)
	}
	if cfg.MaxProducts != 7 {
		t.Errorf("MaxProducts = %d, want 7", cfg.MaxProducts)
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := config.DefaultSeed()

	var admins, funded int
	for _, u := range seed.Users {
		if u.Admin {
			admins++
			if u.Wallet != 0 {
				t.Errorf("admin %s wallet = %d, want 0", u.Username, u.Wallet)
			}
		} else if u.Wallet > 0 {
			funded++
		}
	}
	if admins != 1 {
		t.Errorf("admin count = %d, want 1", admins)
	}
	if funded != 2 {
		t.Errorf("funded non-admin count = %d, want 2", funded)
	}
	if len(seed.Products) != 2 {
		t.Errorf("seed product count = %d, want 2", len(seed.Products))
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `users:
  - username: root
    password: secret
    wallet: 0
    admin: true
  - username: alice
    password: hunter2
    wallet: 250
products:
  - name: mango
    price: 80
    quantity: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	seed, err := config.LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if len(seed.Users) != 2 || len(seed.Products) != 1 {
		t.Fatalf("seed = %d users / %d products, want 2/1", len(seed.Users), len(seed.Products))
	}
	if !seed.Users[0].Admin || seed.Users[0].Username != "root" {
		t.Errorf("users[0] = %+v", seed.Users[0])
	}
	if seed.Products[0] != (config.SeedProduct{Name: "mango", Price: 80, Quantity: 4}) {
		t.Errorf("products[0] = %+v", seed.Products[0])
	}

	if _, err := config.LoadSeed(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing seed file must return an error")
	}
}
