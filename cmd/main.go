// Command cmd runs a single registered tool against the configured API and
// prints its output, without an MCP client in between.
//
//	go run ./cmd search_places '{"query":"Antalya Airport"}'
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/va6996/bizimtransfer-mcp/bootstrap"
	"github.com/va6996/bizimtransfer-mcp/config"
	reqctx "github.com/va6996/bizimtransfer-mcp/context"
	"github.com/va6996/bizimtransfer-mcp/log"
	"github.com/va6996/bizimtransfer-mcp/tools"
)

func main() {
	log.Init()

	app := &cli.App{
		Name:      "bizimtransfer-tool",
		Usage:     "run one tool and print the result",
		ArgsUsage: "<tool> [json arguments]",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list the registered tools",
				Action: func(c *cli.Context) error {
					srv, err := setup(c.Context)
					if err != nil {
						return err
					}
					defer srv.Close()
					for _, name := range srv.Registry.Names() {
						fmt.Println(name)
					}
					return nil
				},
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.ShowAppHelp(c)
			}
			srv, err := setup(c.Context)
			if err != nil {
				return err
			}
			defer srv.Close()
			return runTool(c.Context, srv.Registry, c.Args().Get(0), c.Args().Get(1), os.Stdout)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf(context.Background(), "%v", err)
	}
}

func setup(ctx context.Context) (*bootstrap.App, error) {
	// Load .env if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return bootstrap.Setup(ctx, cfg)
}

func parseArgs(raw string) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if raw == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	return args, nil
}

func runTool(ctx context.Context, registry *tools.Registry, name, rawArgs string, out io.Writer) error {
	args, err := parseArgs(rawArgs)
	if err != nil {
		return err
	}

	ctx = reqctx.NewToolCall(ctx, name)
	log.Infof(ctx, "Running tool with %d argument(s)", len(args))

	res, err := registry.ExecuteTool(ctx, name, args)
	if err != nil {
		return err
	}

	if s, ok := res.(string); ok {
		_, err = fmt.Fprintln(out, s)
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
