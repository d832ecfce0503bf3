package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"vado.sa/internal/content"
	"vado.sa/internal/models"
)

// Config holds all application configuration.
// ContactOrigin is where a statically generated contact form posts;
// empty means the page's own origin.
type Config struct {
	ServerAddr      string        `env:"VADO_SERVER_ADDR" envDefault:":8080"`
	BaseURL         string        `env:"VADO_BASE_URL" envDefault:"http://localhost:8080"`
	AssetDir        string        `env:"VADO_ASSET_DIR" envDefault:"public"`
	CatalogFile     string        `env:"VADO_CATALOG_FILE"`
	ContactOrigin   string        `env:"VADO_CONTACT_ORIGIN"`
	NATSURL         string        `env:"VADO_NATS_URL"`
	NATSSubject     string        `env:"VADO_NATS_SUBJECT" envDefault:"vado.contact.received"`
	ContactReset    time.Duration `env:"VADO_CONTACT_RESET" envDefault:"3s"`
	ShutdownTimeout time.Duration `env:"VADO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Verbose         bool          `env:"VADO_VERBOSE"`
}

// Load reads .env files and the process environment
func Load() (*Config, error) {
	LoadDotEnv()
	return parse(env.Options{})
}

// Parse reads configuration from the given variables only
func Parse(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env parsing cannot
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if c.ContactReset <= 0 {
		return fmt.Errorf("contact reset delay must be positive, got %s", c.ContactReset)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout must not be negative, got %s", c.ShutdownTimeout)
	}
	return nil
}

// LoadProjects returns the catalog from CatalogFile, or the built-in one
func (c *Config) LoadProjects() ([]models.Project, error) {
	if c.CatalogFile == "" {
		return content.Projects(), nil
	}
	if _, err := os.Stat(c.CatalogFile); err != nil {
		return nil, fmt.Errorf("catalog file: %w", err)
	}
	return content.LoadProjects(c.CatalogFile)
}
