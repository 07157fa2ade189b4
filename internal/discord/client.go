package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// API paths used by the bot
const (
	pathHealthz   = "/healthz"
	pathTable     = "/api/v1/table"
	pathStages    = "/api/v1/stages"
	pathCashables = "/api/v1/cashables"
	pathSum       = "/api/v1/cashables/sum"

	headerAPIKey    = "X-API-Key"
	headerProfileID = "X-Profile-ID"
)

// Retry settings for server errors and transport failures
const (
	maxRetries     = 3
	retryBaseDelay = 500 * time.Millisecond
	clientTimeout  = 10 * time.Second
)

// APIClient talks to the exp-table HTTP API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
	// retryDelay is the first backoff step; tests shorten it
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: clientTimeout,
		},
		APIKey:     apiKey,
		retryDelay: retryBaseDelay,
	}
}

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// TableRequest selects the table to fetch. Empty fields use the server defaults
// and the profile's stored settings.
type TableRequest struct {
	Profile    string
	Weekday    string
	Unit       string
	Difficulty string
}

func (r TableRequest) values() url.Values {
	q := url.Values{}
	if r.Weekday != "" {
		q.Set("weekday", r.Weekday)
	}
	if r.Unit != "" {
		q.Set("unit", r.Unit)
	}
	if r.Difficulty != "" {
		q.Set("difficulty", r.Difficulty)
	}
	return q
}

// StageView is the part of a stage the bot displays
type StageView struct {
	FullName string `json:"full_name"`
	Event    string `json:"event"`
	Cost     int    `json:"cost"`
}

// RowView is one ranked row as returned by the API
type RowView struct {
	Stage            StageView `json:"stage"`
	FinalExp         int       `json:"final_exp"`
	FinalFactorLabel string    `json:"final_factor_label"`
	ExpPerCostLabel  string    `json:"exp_per_cost_label"`
	GoldPerCostLabel string    `json:"gold_per_cost_label"`
	BonusDayActive   bool      `json:"bonus_day_active"`
	UnitTypeActive   bool      `json:"unit_type_active"`
}

// TableView is the ranked table as returned by the API
type TableView struct {
	Query struct {
		Selection struct {
			Weekday  domain.Weekday `json:"weekday"`
			UnitType *string        `json:"unit_type"`
		} `json:"selection"`
		Settings struct {
			Difficulty string `json:"difficulty"`
		} `json:"settings"`
	} `json:"query"`
	Rows           []RowView `json:"rows"`
	Events         []RowView `json:"events"`
	CatalogVersion string    `json:"catalog_version"`
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(ctx context.Context, method, path, profile string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.APIKey != "" {
			req.Header.Set(headerAPIKey, c.APIKey)
		}
		if profile != "" {
			req.Header.Set(headerProfileID, profile)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		slog.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decode reads a 200 response into out, or turns anything else into an APIError
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errResp struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetTable fetches the ranked table for the request
func (c *APIClient) GetTable(ctx context.Context, req TableRequest) (*TableView, error) {
	path := pathTable
	if q := req.values(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, req.Profile, nil)
	if err != nil {
		return nil, err
	}

	var table TableView
	if err := decode(resp, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// GetCeilings returns the difficulty ceiling options offered by the catalogue
func (c *APIClient) GetCeilings(ctx context.Context) ([]domain.CeilingOption, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, pathStages, "", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Ceilings []domain.CeilingOption `json:"ceilings"`
	}
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return out.Ceilings, nil
}

// GetCashables returns the stored cashable summary for a profile
func (c *APIClient) GetCashables(ctx context.Context, profile string) (*domain.CashableSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, pathCashables, profile, nil)
	if err != nil {
		return nil, err
	}

	var summary domain.CashableSummary
	if err := decode(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SumCashables totals the given quantities, keyed by unit price, without storing them
func (c *APIClient) SumCashables(ctx context.Context, quantities map[int]int) (*domain.CashableSummary, error) {
	body := struct {
		Quantities map[string]int `json:"quantities"`
	}{Quantities: make(map[string]int, len(quantities))}
	for price, n := range quantities {
		body.Quantities[strconv.Itoa(price)] = n
	}

	resp, err := c.doRequest(ctx, http.MethodPost, pathSum, "", body)
	if err != nil {
		return nil, err
	}

	var summary domain.CashableSummary
	if err := decode(resp, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+pathHealthz, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
