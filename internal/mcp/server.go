// Package mcp implements the Model Context Protocol server, exposing ms
// conversions to LLMs over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/ms/internal/config"
	"github.com/jpl-au/ms/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio. cfg supplies the default for the
// "long" argument when a client omits it; nil means short output.
func Serve(cfg *config.Config) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(cfg)

	slog.Info("ms MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with all tools and resources registered.
func NewServer(cfg *config.Config) *server.MCPServer {
	h := &handlers{}
	if cfg != nil {
		h.long = cfg.Long()
	}

	s := server.NewMCPServer(
		"ms",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers.
type handlers struct {
	long bool // default for the "long" argument
}

// registerResources exposes the embedded guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			guideURI,
			"Guide",
			mcp.WithResourceDescription("ms usage guide"),
			mcp.WithMIMEType("text/markdown"),
		),
		h.readGuide,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guideURI+"/{page}",
			"Guide Page",
			mcp.WithTemplateDescription("A named guide page (units, format)"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// registerTools exposes the conversions as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewToolWithRawSchema(
			"ms_convert",
			"Convert a duration. A string such as \"2h\" or \"1.5 days\" returns milliseconds; "+
				"a number of milliseconds returns a string such as \"2h\" (or \"2 hours\" with long=true).",
			convertSchema,
		),
		h.convert,
	)

	s.AddTool(
		mcp.NewTool("ms_parse",
			mcp.WithDescription("Parse a duration string (\"2h\", \"10 minutes\", \"-3d\") into milliseconds. Returns null when the string is not a duration."),
			mcp.WithString("value", mcp.Required(), mcp.Description("Duration string, at most 100 characters")),
		),
		h.parse,
	)

	s.AddTool(
		mcp.NewTool("ms_format",
			mcp.WithDescription("Format milliseconds as a human-readable duration"),
			mcp.WithNumber("ms", mcp.Required(), mcp.Description("Duration in milliseconds")),
			mcp.WithBoolean("long", mcp.Description("Verbose output (\"2 hours\" instead of \"2h\")")),
		),
		h.formatMillis,
	)

	s.AddTool(
		mcp.NewTool("ms_units",
			mcp.WithDescription("List the supported units with their millisecond factors and accepted spellings"),
		),
		h.units,
	)
}

// convertSchema leaves "value" untyped so that null, booleans and objects
// reach the handler and are reported the way the library reports them.
var convertSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"value": {"description": "Duration string or number of milliseconds"},
		"long": {"type": "boolean", "description": "Verbose output when value is a number"}
	},
	"required": ["value"]
}`)
