package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed holds the fixed account and catalog set the registry starts with.
type Seed struct {
	Users    []SeedUser    `yaml:"users"`
	Products []SeedProduct `yaml:"products"`
}

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Wallet   int    `yaml:"wallet"`
	Admin    bool   `yaml:"admin"`
}

type SeedProduct struct {
	Name     string `yaml:"name"`
	Price    int    `yaml:"price"`
	Quantity int    `yaml:"quantity"`
}

// DefaultSeed returns the built-in data set: one admin with an empty wallet
// and two funded regular accounts, plus two catalog records.
func DefaultSeed() *Seed {
	return &Seed{
		Users: []SeedUser{
			{Username: "admin", Password: "admin", Wallet: 0, Admin: true},
			{Username: "user1", Password: "user1", Wallet: 1000},
			{Username: "user2", Password: "user2", Wallet: 500},
		},
		Products: []SeedProduct{
			{Name: "apple", Price: 50, Quantity: 20},
			{Name: "banana", Price: 30, Quantity: 15},
		},
	}
}

// LoadSeed reads a YAML seed file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &seed, nil
}
