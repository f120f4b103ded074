// Package config loads process configuration and the event catalog.
//
// Configuration layers, lowest to highest precedence: built-in
// defaults, a YAML file named by CLUETRAIL_CONFIG, then environment
// variables prefixed CLUETRAIL_. The event catalog only comes from the
// YAML file; env vars override the flat scalar settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cluetrail/cluetrail/internal/models"
)

// EventConfig describes one scavenger hunt in the config file
type EventConfig struct {
	// ID is the URL-facing event identifier
	ID string `koanf:"id"`

	// Title is the display title
	Title string `koanf:"title"`

	// Description is shown on the start page
	Description string `koanf:"description"`

	// Host is the organization running the event
	Host string `koanf:"host"`

	// Codes holds the clue codes in redemption order
	Codes []string `koanf:"codes"`

	// Clues maps each code to its clue text
	Clues map[string]string `koanf:"clues"`
}

// Config contains process configuration
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080"
	Addr string `koanf:"addr"`

	// BaseURL is the absolute URL prefix encoded into printed QR codes
	BaseURL string `koanf:"base_url"`

	// RedisAddr is the Redis host:port
	RedisAddr string `koanf:"redis_addr"`

	// RedisPassword is the Redis password, empty for none
	RedisPassword string `koanf:"redis_password"`

	// DatabaseURL selects the Postgres race store when set; races live
	// in Redis otherwise
	DatabaseURL string `koanf:"database_url"`

	// AdminKey gates the /admin endpoints
	AdminKey string `koanf:"admin_key"`

	// Events is the hunt catalog
	Events []EventConfig `koanf:"events"`
}

// New returns a Config with defaults applied
func New() *Config {
	return &Config{
		Addr:      ":8080",
		BaseURL:   "http://localhost:8080",
		RedisAddr: "localhost:6379",
	}
}

// Load builds a Config by layering defaults, optional file, and env vars
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CLUETRAIL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: CLUETRAIL_ADDR, CLUETRAIL_REDIS_ADDR, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CLUETRAIL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "cluetrail_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.AdminKey == "" {
		return nil, errors.New("admin_key must be set")
	}

	return &cfg, nil
}

// EventCatalog validates the configured events and builds the immutable
// catalog the hunt service reads from. Codes are normalized to
// uppercase.
func (c *Config) EventCatalog() (map[string]*models.Event, error) {
	if len(c.Events) == 0 {
		return nil, errors.New("at least one event must be configured")
	}

	catalog := make(map[string]*models.Event, len(c.Events))
	for _, ec := range c.Events {
		if ec.ID == "" {
			return nil, errors.New("event id must not be empty")
		}
		if _, exists := catalog[ec.ID]; exists {
			return nil, fmt.Errorf("duplicate event id %q", ec.ID)
		}
		if len(ec.Codes) == 0 {
			return nil, fmt.Errorf("event %q has no codes", ec.ID)
		}

		event := &models.Event{
			ID:           ec.ID,
			Title:        ec.Title,
			Description:  ec.Description,
			Host:         ec.Host,
			OrderedCodes: make([]string, 0, len(ec.Codes)),
			Clues:        make(map[string]string, len(ec.Codes)),
		}

		seen := make(map[string]bool, len(ec.Codes))
		for _, code := range ec.Codes {
			normalized := strings.ToUpper(strings.TrimSpace(code))
			if normalized == "" {
				return nil, fmt.Errorf("event %q has an empty code", ec.ID)
			}
			if seen[normalized] {
				return nil, fmt.Errorf("event %q repeats code %q", ec.ID, normalized)
			}
			seen[normalized] = true

			clue, ok := clueFor(ec.Clues, normalized)
			if !ok {
				return nil, fmt.Errorf("event %q is missing a clue for code %q", ec.ID, normalized)
			}

			event.OrderedCodes = append(event.OrderedCodes, normalized)
			event.Clues[normalized] = clue
		}

		catalog[ec.ID] = event
	}

	return catalog, nil
}

// clueFor looks up a clue tolerating whatever casing the file used
func clueFor(clues map[string]string, code string) (string, bool) {
	if clue, ok := clues[code]; ok {
		return clue, true
	}
	for key, clue := range clues {
		if strings.ToUpper(strings.TrimSpace(key)) == code {
			return clue, true
		}
	}
	return "", false
}
