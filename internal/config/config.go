// Package config loads the process configuration once at start-up.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// DevJWTSecret is used when no secret is configured. It is only suitable for local development.
const DevJWTSecret = "finance-tracker-dev-secret"

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Seed     Seed     `yaml:"seed"`
}

// Server settings.
type Server struct {
	Port string `yaml:"port"`
}

// Database settings.
type Database struct {
	Path string `yaml:"path"`
}

// Auth holds the token signing and password hashing parameters.
type Auth struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

// Seed describes a user created on first start when the database has no users.
type Seed struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Enabled reports whether a seed user was configured.
func (s Seed) Enabled() bool {
	return s.Email != "" && s.Password != ""
}

// Default returns configuration with sensible defaults.
func Default() Config {
	return Config{
		Server:   Server{Port: "3000"},
		Database: Database{Path: "finance.db"},
		Auth: Auth{
			TokenTTL:   time.Hour,
			BcryptCost: 10,
		},
		Seed: Seed{Name: "Admin"},
	}
}

// Load builds the configuration from defaults, the YAML file named by
// CONFIG_FILE (if any) and environment variables, in increasing precedence.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	setString(&cfg.Server.Port, getenv("PORT"))
	setString(&cfg.Database.Path, getenv("DB_PATH"))
	setString(&cfg.Auth.JWTSecret, getenv("JWT_SECRET"))
	setString(&cfg.Seed.Name, getenv("SEED_NAME"))
	setString(&cfg.Seed.Email, getenv("SEED_EMAIL"))
	setString(&cfg.Seed.Password, getenv("SEED_PASSWORD"))

	if v := getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: TOKEN_TTL: %v", ErrInvalid, err)
		}
		cfg.Auth.TokenTTL = ttl
	}
	if v := getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: BCRYPT_COST: %v", ErrInvalid, err)
		}
		cfg.Auth.BcryptCost = cost
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%w: server port is empty", ErrInvalid)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database path is empty", ErrInvalid)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive, got %s", ErrInvalid, c.Auth.TokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be between %d and %d, got %d",
			ErrInvalid, bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	return nil
}

// UsesDevSecret reports whether no JWT secret was configured.
func (c Config) UsesDevSecret() bool {
	return c.Auth.JWTSecret == ""
}

// Secret returns the configured JWT secret, falling back to DevJWTSecret.
func (a Auth) Secret() string {
	if a.JWTSecret == "" {
		return DevJWTSecret
	}
	return a.JWTSecret
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
