// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/notesmith/internal/httputil"
)

// apiBase is the Notion API root. Declared as a var so tests can substitute
// an httptest server.
var apiBase = "https://api.notion.com"

// apiVersion is the Notion-Version header value the client pins.
const apiVersion = "2022-06-28"

// maxChildrenPerRequest is Notion's limit on block children per API call.
// Longer block lists are sent as one create plus follow-up appends.
const maxChildrenPerRequest = 100

// Client calls the Notion pages and blocks APIs.
type Client struct {
	Client     *http.Client
	Token      string
	MaxRetries int
}

// Page is the subset of the pages API response the pipeline uses.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type titleProperty struct {
	Title []RichText `json:"title"`
}

type createPageRequest struct {
	Parent     pageParent               `json:"parent"`
	Properties map[string]titleProperty `json:"properties"`
	Children   []Block                  `json:"children,omitempty"`
}

type appendChildrenRequest struct {
	Children []Block `json:"children"`
}

// CreatePage creates a page in the given database with the rendered blocks
// as children, in order. Children beyond Notion's per-request limit are
// appended to the created page in follow-up calls.
func (c *Client) CreatePage(ctx context.Context, databaseID, title string, children []Block) (Page, error) {
	first := children
	if len(first) > maxChildrenPerRequest {
		first = children[:maxChildrenPerRequest]
	}

	body := createPageRequest{
		Parent: pageParent{DatabaseID: databaseID},
		Properties: map[string]titleProperty{
			"Name": {Title: []RichText{{Type: "text", Text: &TextContent{Content: title}}}},
		},
		Children: first,
	}

	var page Page
	if err := c.call(ctx, http.MethodPost, apiBase+"/v1/pages", body, &page); err != nil {
		return Page{}, fmt.Errorf("creating page %q: %w", title, err)
	}

	for offset := maxChildrenPerRequest; offset < len(children); offset += maxChildrenPerRequest {
		end := offset + maxChildrenPerRequest
		if end > len(children) {
			end = len(children)
		}
		req := appendChildrenRequest{Children: children[offset:end]}
		url := fmt.Sprintf("%s/v1/blocks/%s/children", apiBase, page.ID)
		if err := c.call(ctx, http.MethodPatch, url, req, nil); err != nil {
			return Page{}, fmt.Errorf("appending blocks %d-%d to page %q: %w", offset, end, title, err)
		}
	}

	return page, nil
}

// call sends one JSON request to the Notion API, retrying on 429, and
// decodes the response into out when out is non-nil.
func (c *Client) call(ctx context.Context, method, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, c.MaxRetries)
	if err != nil {
		return fmt.Errorf("Notion API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("Notion API returned HTTP %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("Notion API returned HTTP %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing Notion response: %w", err)
	}
	return nil
}
