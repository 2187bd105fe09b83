package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"5000"`

	Database struct {
		// Credentials for the managed cluster
		User     string `env:"DB_USER"`
		Password string `env:"DB_PASS"`

		// Cluster host (mongodb+srv seed list host)
		Host string `env:"DB_HOST" envDefault:"cluster0.0ujhkgt.mongodb.net"`

		// Database holding the properties and ratings collections
		Name string `env:"DB_NAME" envDefault:"homeNestDB"`

		// Full connection string override; when set, User/Password/Host
		// are ignored (useful for local mongodb:// instances and tests)
		URI string `env:"DB_URI"`

		// Connect timeout in seconds
		ConnectTimeout int `env:"DB_CONNECT_TIMEOUT" envDefault:"10"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// URI returns the connection string for the document store, building the
// Atlas URI from credentials unless an explicit override was provided.
func (c *Config) URI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?appName=Cluster0",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host)
}
