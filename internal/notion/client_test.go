// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdiddy/notesmith/internal/httputil"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func swapAPIBase(t *testing.T, url string) {
	t.Helper()
	old := apiBase
	apiBase = url
	t.Cleanup(func() { apiBase = old })
}

func paragraphBlocks(n int) []Block {
	blocks := make([]Block, n)
	for i := range blocks {
		blocks[i] = Block{
			Object:    "block",
			Type:      "paragraph",
			Paragraph: &RichTextBody{RichText: []RichText{{Type: "text", Text: &TextContent{Content: fmt.Sprintf("p%d", i)}}}},
		}
	}
	return blocks
}

func TestCreatePage(t *testing.T) {
	var gotReq createPageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/pages" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != apiVersion {
			t.Errorf("Notion-Version = %q, want %q", got, apiVersion)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(Page{ID: "page-1", URL: "https://notion.so/page-1"})
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	c := &Client{Client: ts.Client(), Token: "secret-token"}
	page, err := c.CreatePage(context.Background(), "db-1", "Lecture 1", paragraphBlocks(3))
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}

	if page.URL != "https://notion.so/page-1" {
		t.Errorf("page.URL = %q", page.URL)
	}
	if gotReq.Parent.DatabaseID != "db-1" {
		t.Errorf("parent database = %q, want db-1", gotReq.Parent.DatabaseID)
	}
	title := gotReq.Properties["Name"].Title
	if len(title) != 1 || title[0].Text.Content != "Lecture 1" {
		t.Errorf("title property = %+v", title)
	}
	if len(gotReq.Children) != 3 {
		t.Errorf("len(children) = %d, want 3", len(gotReq.Children))
	}
}

func TestCreatePageBatchesChildren(t *testing.T) {
	var created, appended int32
	var batchSizes []int

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/pages":
			atomic.AddInt32(&created, 1)
			var req createPageRequest
			json.NewDecoder(r.Body).Decode(&req)
			batchSizes = append(batchSizes, len(req.Children))
			json.NewEncoder(w).Encode(Page{ID: "page-1", URL: "https://notion.so/page-1"})

		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/v1/blocks/page-1/children"):
			atomic.AddInt32(&appended, 1)
			var req appendChildrenRequest
			json.NewDecoder(r.Body).Decode(&req)
			batchSizes = append(batchSizes, len(req.Children))
			w.Write([]byte("{}"))

		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	c := &Client{Client: ts.Client(), Token: "tok"}
	_, err := c.CreatePage(context.Background(), "db-1", "Big Page", paragraphBlocks(250))
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}

	if created != 1 || appended != 2 {
		t.Errorf("created=%d appended=%d, want 1 create and 2 appends", created, appended)
	}
	want := []int{100, 100, 50}
	for i, size := range want {
		if batchSizes[i] != size {
			t.Errorf("batch %d size = %d, want %d", i, batchSizes[i], size)
		}
	}
}

func TestCreatePageRetriesOn429(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(Page{ID: "page-1", URL: "https://notion.so/page-1"})
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	c := &Client{Client: ts.Client(), Token: "tok", MaxRetries: 3}
	page, err := c.CreatePage(context.Background(), "db-1", "Retry", paragraphBlocks(1))
	if err != nil {
		t.Fatalf("CreatePage: %v", err)
	}
	if page.ID != "page-1" {
		t.Errorf("page.ID = %q", page.ID)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestCreatePageAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "body failed validation"})
	}))
	defer ts.Close()
	swapAPIBase(t, ts.URL)

	c := &Client{Client: ts.Client(), Token: "tok"}
	_, err := c.CreatePage(context.Background(), "db-1", "Bad", paragraphBlocks(1))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 400") || !strings.Contains(err.Error(), "body failed validation") {
		t.Errorf("err = %v, want HTTP 400 with API message", err)
	}
}
