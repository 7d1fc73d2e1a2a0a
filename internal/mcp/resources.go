// resources.go implements MCP resource handlers for the embedded guide.
//
// URIs follow ms://guide[/{page}]; the bare URI returns the main page,
// mirroring "ms guide" on the CLI.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/ms/guide"
	"github.com/jpl-au/ms/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

const guideURI = "ms://guide"

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

// readGuide handles ms://guide and ms://guide/{page} resource requests.
func (h *handlers) readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI

	page, err := parseGuideURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(page)
	log.Event("mcp:guide", "read").Detail("page", page).Write(err)
	if err != nil {
		return nil, fmt.Errorf("guide page %q: %w", page, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the page name; an empty name means the main page.
func parseGuideURI(uri string) (string, error) {
	if uri == guideURI {
		return "", nil
	}
	page, ok := strings.CutPrefix(uri, guideURI+"/")
	if !ok || page == "" || strings.Contains(page, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return page, nil
}
