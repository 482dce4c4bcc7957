package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	SiteName    string `env:"SITE_NAME" envDefault:"GIVErS"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:4321"`
	FlashSecret string `env:"FLASH_SECRET" envDefault:"dev-secret-change-in-production-32bytes"`

	// ContactRateLimit caps form submissions per client IP per minute.
	ContactRateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"10"`

	Contact ContactInfo
}

// ContactInfo is the static content shown on the contact page.
type ContactInfo struct {
	Phone        string   `env:"CONTACT_PHONE" envDefault:"+1 (555) 010-0199"`
	Email        string   `env:"CONTACT_EMAIL" envDefault:"support@givers.example"`
	Address      []string `env:"CONTACT_ADDRESS" envSeparator:"|" envDefault:"123 Market Street|San Francisco, CA 94103"`
	Hours        []string `env:"CONTACT_HOURS" envSeparator:"|" envDefault:"Monday - Friday: 9:00 AM - 6:00 PM|Saturday: 10:00 AM - 4:00 PM|Sunday: Closed"`
	MapEmbedURL  string   `env:"MAP_EMBED_URL" envDefault:"https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3153.0!2d-122.4!3d37.77"`
	HeroImageURL string   `env:"HERO_IMAGE_URL" envDefault:"/static/img/support.svg"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ContactRateLimit < 1 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", cfg.ContactRateLimit)
	}
	return &cfg, nil
}
