package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"CONFIG_FILE",
	"MCP_TRANSPORT",
	"MCP_PORT",
	"BIZIMTRANSFER_BASE_URL",
	"BIZIMTRANSFER_USERNAME",
	"BIZIMTRANSFER_PASSWORD",
	"PLACES_PROVIDER",
	"GOOGLE_MAPS_API_KEY",
	"TOOLS_DISABLE_HELPERS",
	"LOG_LEVEL",
}

// clearEnv unsets the config env vars for the duration of the test
func clearEnv(t *testing.T) {
	for _, key := range configEnvVars {
		if orig, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, orig) })
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "BizimTransfer", cfg.Server.Name)
		assert.Equal(t, TransportStdio, cfg.Server.Transport)
		assert.Equal(t, 8100, cfg.Server.Port)
		assert.Equal(t, "http://test-api.bizimtransfer.com", cfg.BizimTransfer.BaseURL)
		assert.Equal(t, "test", cfg.BizimTransfer.Username)
		assert.Equal(t, "test", cfg.BizimTransfer.Password)
		assert.Equal(t, 0, cfg.BizimTransfer.Timeout)
		assert.Equal(t, PlacesProviderUpstream, cfg.Places.Provider)
		assert.False(t, cfg.Tools.DisableHelpers)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MCP_TRANSPORT", "sse")
		t.Setenv("MCP_PORT", "9100")
		t.Setenv("BIZIMTRANSFER_BASE_URL", "https://api.bizimtransfer.com")
		t.Setenv("BIZIMTRANSFER_USERNAME", "agency")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, TransportSSE, cfg.Server.Transport)
		assert.Equal(t, 9100, cfg.Server.Port)
		assert.Equal(t, "127.0.0.1:9100", cfg.Server.Addr())
		assert.Equal(t, "https://api.bizimtransfer.com", cfg.BizimTransfer.BaseURL)
		assert.Equal(t, "agency", cfg.BizimTransfer.Username)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8200\nlog:\n  level: debug\n"), 0o600))
		t.Setenv("CONFIG_FILE", path)

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 8200, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "test", cfg.BizimTransfer.Username)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:        ServerConfig{Transport: TransportStdio, Port: 8100},
			BizimTransfer: BizimTransferConfig{BaseURL: "http://localhost"},
			Places:        PlacesConfig{Provider: PlacesProviderUpstream},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"UnknownTransport", func(c *Config) { c.Server.Transport = "websocket" }, "unknown transport"},
		{"BadPort", func(c *Config) { c.Server.Port = 70000 }, "invalid port"},
		{"MissingBaseURL", func(c *Config) { c.BizimTransfer.BaseURL = "" }, "base_url is required"},
		{"GoogleWithoutKey", func(c *Config) { c.Places.Provider = PlacesProviderGoogle }, "GOOGLE_MAPS_API_KEY"},
		{"UnknownProvider", func(c *Config) { c.Places.Provider = "osm" }, "unknown places provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
