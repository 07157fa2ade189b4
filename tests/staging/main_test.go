//go:build staging

// Package staging smoke-tests a deployed exp-table instance.
// API_URL selects the instance; API_KEY enables the write checks.
package staging

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

const stagingProfile = "staging-smoke"

// stagingClient talks to the instance as a single profile
type stagingClient struct {
	baseURL string
	apiKey  string
	profile string
	http    *http.Client
}

var api *stagingClient

func TestMain(m *testing.M) {
	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	api = &stagingClient{
		baseURL: base,
		apiKey:  os.Getenv("API_KEY"),
		profile: stagingProfile,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	os.Exit(m.Run())
}

func (c *stagingClient) canWrite() bool { return c.apiKey != "" }

// do sends body as JSON when non-nil and returns the drained response body
func (c *stagingClient) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode %s %s: %v", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		t.Fatalf("build %s %s: %v", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Profile-ID", c.profile)
	if c.canWrite() {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s %s: %v", method, path, err)
	}
	return resp, out
}

// getJSON fails the test unless path answers 200 with a body decodable into out
func (c *stagingClient) getJSON(t *testing.T, path string, out any) {
	t.Helper()
	resp, body := c.do(t, http.MethodGet, path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d. Body: %s", path, resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("GET %s: decode: %v", path, err)
	}
}
