// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive: an optional parameter that is missing or of the
// wrong type yields the caller's default rather than a tool error.

package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// arguments returns the raw argument map, or nil when the client sent none.
func arguments(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	return args
}

// getBool extracts a boolean parameter. JSON booleans decode as Go bool, so
// a string "true" falls back to def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	if v, ok := arguments(req)[name].(bool); ok {
		return v
	}
	return def
}

// getNumber extracts a numeric parameter. JSON numbers decode as float64.
func getNumber(req mcp.CallToolRequest, name string) (float64, bool) {
	v, ok := arguments(req)[name].(float64)
	return v, ok
}

// jsonResult serialises v as indented JSON and wraps it in a text result.
// Marshalling failures become tool errors rather than Go errors.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// describe renders an argument for the audit log.
func describe(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}
