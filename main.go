package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/va6996/bizimtransfer-mcp/bootstrap"
	"github.com/va6996/bizimtransfer-mcp/config"
	"github.com/va6996/bizimtransfer-mcp/log"
)

func main() {
	// Initialize logging
	log.Init()

	app := &cli.App{
		Name:  "bizimtransfer-mcp",
		Usage: "MCP server for the Bizim Transfer booking API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "sse",
				Usage: "serve over HTTP (SSE and streamable HTTP) instead of stdio",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "port for the HTTP transport (overrides MCP_PORT)",
			},
		},
		ArgsUsage: "[port]",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf(context.Background(), "%v", err)
	}
}

func run(c *cli.Context) error {
	// .env is optional
	_ = godotenv.Load()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if err := applyFlags(cfg, c.Bool("sse"), c.Int("port"), c.Args().First()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1-3. Init App Components using Bootstrap
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}
	defer app.Close()

	// 4. Serve
	switch cfg.Server.Transport {
	case config.TransportSSE:
		return app.Server.ListenAndServe(ctx, cfg.Server.Addr())
	default:
		return app.Server.ServeStdio(ctx, os.Stdin, os.Stdout)
	}
}

// applyFlags overlays command line flags on the loaded config.
// A bare positional port is accepted after --sse.
func applyFlags(cfg *config.Config, sse bool, port int, positional string) error {
	if sse {
		cfg.Server.Transport = config.TransportSSE
	}
	if positional != "" {
		if !sse {
			return fmt.Errorf("unexpected argument %q", positional)
		}
		p, err := strconv.Atoi(positional)
		if err != nil {
			return fmt.Errorf("invalid port %q", positional)
		}
		cfg.Server.Port = p
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	return nil
}
