package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/ms/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func decode(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &m))
	return m
}

func TestConvertTool(t *testing.T) {
	h := &handlers{}
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want any
	}{
		{"string", map[string]any{"value": "2h"}, 7_200_000.0},
		{"number", map[string]any{"value": 1500.0}, "2s"},
		{"long", map[string]any{"value": 5_400_000.0, "long": true}, "2 hours"},
		{"unmatched", map[string]any{"value": "banana"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := h.convert(ctx, request(tc.args))
			require.NoError(t, err)
			assert.Equal(t, tc.want, decode(t, res)["result"])
		})
	}
}

func TestConvertTool_InvalidInput(t *testing.T) {
	h := &handlers{}

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing", map[string]any{}, "value is not a string or number: value=null"},
		{"null", map[string]any{"value": nil}, "value is not a string or number: value=null"},
		{"bool", map[string]any{"value": false}, "value is not a string or number: value=false"},
		{"object", map[string]any{"value": map[string]any{"a": 1.0}}, `value is not a string or number: value={"a":1}`},
		{"empty", map[string]any{"value": ""}, `value is not a string or number: value=""`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := h.convert(context.Background(), request(tc.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Equal(t, tc.want, resultText(t, res))
		})
	}
}

func TestConvertTool_ConfigDefault(t *testing.T) {
	t.Setenv(config.EnvLong, "")
	long := true
	h := &handlers{long: (&config.Config{Format: config.Format{Long: &long}}).Long()}

	res, err := h.convert(context.Background(), request(map[string]any{"value": 60_000.0}))
	require.NoError(t, err)
	assert.Equal(t, "1 minute", decode(t, res)["result"])

	res, err = h.convert(context.Background(), request(map[string]any{"value": 60_000.0, "long": false}))
	require.NoError(t, err)
	assert.Equal(t, "1m", decode(t, res)["result"])
}

func TestParseTool(t *testing.T) {
	h := &handlers{}

	res, err := h.parse(context.Background(), request(map[string]any{"value": "1.5 Days"}))
	require.NoError(t, err)
	m := decode(t, res)
	assert.Equal(t, 129_600_000.0, m["ms"])
	assert.Equal(t, true, m["matched"])

	res, err = h.parse(context.Background(), request(map[string]any{"value": "soon"}))
	require.NoError(t, err)
	m = decode(t, res)
	assert.Nil(t, m["ms"])
	assert.Equal(t, false, m["matched"])

	res, err = h.parse(context.Background(), request(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestFormatTool(t *testing.T) {
	h := &handlers{}

	res, err := h.formatMillis(context.Background(), request(map[string]any{"ms": 259_200_000.0}))
	require.NoError(t, err)
	assert.Equal(t, "3d", decode(t, res)["text"])

	res, err = h.formatMillis(context.Background(), request(map[string]any{"ms": 259_200_000.0, "long": true}))
	require.NoError(t, err)
	assert.Equal(t, "3 days", decode(t, res)["text"])

	res, err = h.formatMillis(context.Background(), request(map[string]any{"ms": "3d"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, errMsNotNumber.Error(), resultText(t, res))
}

func TestUnitsTool(t *testing.T) {
	h := &handlers{}

	res, err := h.units(context.Background(), request(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var units []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &units))
	require.Len(t, units, 7)
	assert.Equal(t, "milliseconds", units[0]["name"])
	assert.Equal(t, 1000.0, units[1]["factor_ms"])
}

func TestReadGuide(t *testing.T) {
	h := &handlers{}

	var req mcp.ReadResourceRequest
	req.Params.URI = "ms://guide"
	contents, err := h.readGuide(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, "# ms")

	req.Params.URI = "ms://guide/units"
	contents, err = h.readGuide(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	req.Params.URI = "ms://guide/nope"
	_, err = h.readGuide(context.Background(), req)
	assert.Error(t, err)
}

func TestParseGuideURI(t *testing.T) {
	tests := []struct {
		uri     string
		page    string
		wantErr bool
	}{
		{"ms://guide", "", false},
		{"ms://guide/format", "format", false},
		{"ms://guide/", "", true},
		{"ms://guide/a/b", "", true},
		{"other://guide/x", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.uri, func(t *testing.T) {
			page, err := parseGuideURI(tc.uri)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.page, page)
		})
	}
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(nil))
	assert.NotNil(t, NewServer(&config.Config{}))
}
