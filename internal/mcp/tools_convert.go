// tools_convert.go implements the conversion tools.
//
// Every call is audit-logged with source "mcp:{tool}". Conversion failures
// are returned as tool errors carrying the library's message so the client
// sees exactly what a Go caller would.

package mcp

import (
	"context"
	"errors"
	"math"

	"github.com/jpl-au/ms/duration"
	"github.com/jpl-au/ms/internal/format"
	"github.com/jpl-au/ms/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

var errMsNotNumber = errors.New("ms must be a finite number")

// convert handles ms_convert tool calls.
func (h *handlers) convert(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value := arguments(req)["value"]
	long := getBool(req, "long", h.long)

	res, err := duration.Convert(value, duration.Options{Long: long})

	l := log.Event("mcp:ms_convert", "convert").Input(describe(value)).Detail("long", long)
	if err == nil {
		l.Output(res.String())
	}
	l.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"result": res})
}

// parse handles ms_parse tool calls.
func (h *handlers) parse(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	ms, err := duration.Parse(value)
	res := duration.Result{Kind: duration.KindMillis, Millis: ms}

	l := log.Event("mcp:ms_parse", "parse").Input(value)
	if err == nil {
		l.Output(res.String())
	}
	l.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"ms": res, "matched": !math.IsNaN(ms)})
}

// formatMillis handles ms_format tool calls.
func (h *handlers) formatMillis(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ms, ok := getNumber(req, "ms")
	long := getBool(req, "long", h.long)

	l := log.Event("mcp:ms_format", "format").Input(describe(arguments(req)["ms"])).Detail("long", long)
	if !ok {
		l.Write(errMsNotNumber)
		return mcp.NewToolResultError(errMsNotNumber.Error()), nil
	}

	text := duration.Format(ms, duration.Options{Long: long})
	l.Output(text).Write(nil)

	return jsonResult(map[string]any{"text": text})
}

// units handles ms_units tool calls.
func (h *handlers) units(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Event("mcp:ms_units", "units").Write(nil)
	return jsonResult(format.UnitTable())
}
