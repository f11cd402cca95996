package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/va6996/bizimtransfer-mcp/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Name:      "BizimTransfer",
			Version:   "test",
			Transport: config.TransportStdio,
			Host:      "127.0.0.1",
			Port:      8100,
		},
		BizimTransfer: config.BizimTransferConfig{
			BaseURL:  "http://127.0.0.1:1",
			Username: "test",
			Password: "test",
		},
		Places: config.PlacesConfig{Provider: config.PlacesProviderUpstream},
		Log:    config.LogConfig{Level: "info"},
	}
}

func TestSetup(t *testing.T) {
	app, err := Setup(context.Background(), testConfig())
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, []string{
		"currency_for_country",
		"get_place_details",
		"list_reservations",
		"make_reservation",
		"resolve_date",
		"search_places",
		"search_transfers",
	}, app.Registry.Names())
	assert.Len(t, app.Server.MCP.ListTools(), 7)
	assert.Same(t, app.Transfer, app.Transfer.Places)
}

func TestSetup_HelpersDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Tools.DisableHelpers = true

	app, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.Len(t, app.Registry.Names(), 5)
	assert.Nil(t, app.Server.MCP.GetTool("resolve_date"))
}

func TestSetup_GooglePlaces(t *testing.T) {
	cfg := testConfig()
	cfg.Places.Provider = config.PlacesProviderGoogle
	cfg.Places.GoogleAPIKey = "test-key"

	app, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.NotSame(t, app.Transfer, app.Transfer.Places)
}

func TestSetup_InvalidBaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.BizimTransfer.BaseURL = "not a url"

	_, err := Setup(context.Background(), cfg)
	assert.Error(t, err)
}
