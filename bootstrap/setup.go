package bootstrap

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/genkit"
	"github.com/va6996/bizimtransfer-mcp/config"
	"github.com/va6996/bizimtransfer-mcp/log"
	"github.com/va6996/bizimtransfer-mcp/mcpserver"
	"github.com/va6996/bizimtransfer-mcp/plugins/bizimtransfer"
	"github.com/va6996/bizimtransfer-mcp/plugins/core"
	"github.com/va6996/bizimtransfer-mcp/plugins/googlemaps"
	"github.com/va6996/bizimtransfer-mcp/tools"
)

// App holds the initialized components of the application
type App struct {
	Genkit   *genkit.Genkit
	Registry *tools.Registry
	Transfer *bizimtransfer.Client
	Server   *mcpserver.Server
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Genkit only defines tools here; no model plugin is needed
	gk := genkit.Init(ctx)

	// 2. Init Tools Registry
	registry := tools.NewRegistry()

	// Places provider
	var places bizimtransfer.PlacesProvider
	if cfg.Places.Provider == config.PlacesProviderGoogle {
		log.Info(ctx, "Using Google Maps places provider")
		gm, err := googlemaps.NewClient(cfg.Places.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google Maps client: %w", err)
		}
		places = gm
	}

	// Initializing the Bizim Transfer client registers its tools automatically
	transfer, err := bizimtransfer.NewClient(bizimtransfer.Options{
		BaseURL:  cfg.BizimTransfer.BaseURL,
		Username: cfg.BizimTransfer.Username,
		Password: cfg.BizimTransfer.Password,
		Timeout:  cfg.BizimTransfer.Timeout,
		Places:   places,
	}, gk, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Bizim Transfer client: %w", err)
	}

	// Core Tools
	if !cfg.Tools.DisableHelpers {
		core.NewClient(gk, registry)
	}

	// 3. MCP server over the registry
	srv, err := mcpserver.New(cfg.Server.Name, cfg.Server.Version, registry)
	if err != nil {
		transfer.Close()
		return nil, fmt.Errorf("failed to initialize MCP server: %w", err)
	}

	log.Infof(ctx, "Registered tools: %v", registry.Names())

	return &App{
		Genkit:   gk,
		Registry: registry,
		Transfer: transfer,
		Server:   srv,
	}, nil
}

// Close releases the upstream client
func (a *App) Close() {
	if a.Transfer != nil {
		a.Transfer.Close()
	}
}
