package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"

	PlacesProviderUpstream = "upstream"
	PlacesProviderGoogle   = "google"
)

// Config aggregates all application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	BizimTransfer BizimTransferConfig `yaml:"bizimtransfer"`
	Places        PlacesConfig        `yaml:"places"`
	Tools         ToolsConfig         `yaml:"tools"`
	Log           LogConfig           `yaml:"log"`
}

type ServerConfig struct {
	Name      string `yaml:"name" env:"MCP_SERVER_NAME" env-default:"BizimTransfer"`
	Version   string `yaml:"version" env:"MCP_SERVER_VERSION" env-default:"1.0.0"`
	Transport string `yaml:"transport" env:"MCP_TRANSPORT" env-default:"stdio"`
	Host      string `yaml:"host" env:"MCP_HOST" env-default:"127.0.0.1"`
	Port      int    `yaml:"port" env:"MCP_PORT" env-default:"8100"`
}

type BizimTransferConfig struct {
	BaseURL  string `yaml:"base_url" env:"BIZIMTRANSFER_BASE_URL" env-default:"http://test-api.bizimtransfer.com"`
	Username string `yaml:"username" env:"BIZIMTRANSFER_USERNAME" env-default:"test"`
	Password string `yaml:"password" env:"BIZIMTRANSFER_PASSWORD" env-default:"test"`
	// Timeout in seconds; 0 leaves it to the transport
	Timeout int `yaml:"timeout" env:"BIZIMTRANSFER_TIMEOUT" env-default:"0"`
}

type PlacesConfig struct {
	Provider     string `yaml:"provider" env:"PLACES_PROVIDER" env-default:"upstream"`
	GoogleAPIKey string `yaml:"google_api_key" env:"GOOGLE_MAPS_API_KEY"`
}

// ToolsConfig controls the helper tools registered next to the booking tools.
// Helpers are on unless disabled (a "true" env-default would override an explicit false in the file).
type ToolsConfig struct {
	DisableHelpers bool `yaml:"disable_helpers" env:"TOOLS_DISABLE_HELPERS"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the config file and environment variables
// Priority: Env Vars > Config File > Defaults
// The file is CONFIG_FILE if set, otherwise config.yaml in the working directory.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}

	// A missing file is not an error: fall back to env vars and defaults.
	if _, statErr := os.Stat(path); statErr == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the values that the rest of the program branches on
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("unknown transport %q (want %q or %q)", c.Server.Transport, TransportStdio, TransportSSE)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.BizimTransfer.BaseURL == "" {
		return fmt.Errorf("bizimtransfer base_url is required")
	}
	if c.BizimTransfer.Timeout < 0 {
		return fmt.Errorf("bizimtransfer timeout cannot be negative")
	}
	switch c.Places.Provider {
	case PlacesProviderUpstream:
	case PlacesProviderGoogle:
		if c.Places.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_MAPS_API_KEY must be set when PLACES_PROVIDER=google")
		}
	default:
		return fmt.Errorf("unknown places provider %q", c.Places.Provider)
	}
	return nil
}

// Addr is the listen address for the network transport
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
