// Package mcpserver exposes the tools of a tools.Registry over the
// Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	reqctx "github.com/va6996/bizimtransfer-mcp/context"
	"github.com/va6996/bizimtransfer-mcp/log"
	"github.com/va6996/bizimtransfer-mcp/tools"
)

const instructions = `Tools for booking airport and city transfers with Bizim Transfer.
Resolve addresses with search_places and get_place_details, search offers with search_transfers,
book a returned subroute with make_reservation and look bookings up with list_reservations.`

var emptyObjectSchema = json.RawMessage(`{"type":"object"}`)

// Server wraps an MCP server whose tools are backed by a registry
type Server struct {
	MCP      *server.MCPServer
	registry *tools.Registry
}

// New creates an MCP server and publishes every tool of the registry
func New(name, version string, registry *tools.Registry) (*Server, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}

	s := &Server{
		MCP: server.NewMCPServer(name, version,
			server.WithToolCapabilities(false),
			server.WithInstructions(instructions),
			server.WithRecovery(),
		),
		registry: registry,
	}

	for _, t := range registry.GetTools() {
		def := t.Definition()
		schema, err := inputSchema(def.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", def.Name, err)
		}
		s.MCP.AddTool(mcp.NewToolWithRawSchema(def.Name, def.Description, schema), s.handler(def.Name))
	}

	return s, nil
}

func inputSchema(schema map[string]any) (json.RawMessage, error) {
	if len(schema) == 0 {
		return emptyObjectSchema, nil
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input schema: %w", err)
	}
	return raw, nil
}

// handler runs one tool call under a fresh request id. Failures are returned
// to the client as text so the agent can read them.
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = reqctx.NewToolCall(ctx, name)
		log.Infof(ctx, "Tool call received")

		out, err := s.registry.ExecuteTool(ctx, name, req.GetArguments())
		if err != nil {
			log.Errorf(ctx, "Tool call failed: %v", err)
			return mcp.NewToolResultText("Error: " + err.Error()), nil
		}

		text, err := renderOutput(out)
		if err != nil {
			log.Errorf(ctx, "Tool output not renderable: %v", err)
			return mcp.NewToolResultText("Error: " + err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func renderOutput(out interface{}) (string, error) {
	switch v := out.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", nil
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool output: %w", err)
	}
	return string(b), nil
}

// ServeStdio serves a single client on in/out until in is closed or ctx is done
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.MCP)
	stdio.SetErrorLogger(log.StdLogger())

	log.Info(ctx, "Serving MCP over stdio")
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
