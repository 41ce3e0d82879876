package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type AuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret"`
	AccessTTLMin int    `yaml:"access_ttl_minutes"`
	BcryptCost   int    `yaml:"bcrypt_cost"`
}

func (a AuthConfig) AccessTTL() time.Duration {
	return time.Duration(a.AccessTTLMin) * time.Minute
}

type BookingConfig struct {
	PaymentDelayMS int    `yaml:"payment_delay_ms"`
	RefPrefix      string `yaml:"ref_prefix"`
}

func (b BookingConfig) PaymentDelay() time.Duration {
	return time.Duration(b.PaymentDelayMS) * time.Millisecond
}

type SnapshotConfig struct {
	Path string `yaml:"path"`
}

type CatalogConfig struct {
	SeedPath string `yaml:"seed_path"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Auth.AccessTTLMin == 0 {
		c.Auth.AccessTTLMin = 60
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Booking.PaymentDelayMS == 0 {
		c.Booking.PaymentDelayMS = 2500
	}
	if c.Booking.RefPrefix == "" {
		c.Booking.RefPrefix = "DB-"
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = "devbus_state.json"
	}
	if c.Catalog.SeedPath == "" {
		c.Catalog.SeedPath = "catalog.yaml"
	}
}
