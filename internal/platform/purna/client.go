// Package purna is the HTTP client for the remote recipe and SNAP store service.
package purna

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"purna/internal/wire"
)

// DefaultBaseURL is the hosted service.
const DefaultBaseURL = "https://purna-backend.vercel.app"

// API names used in status error messages.
const (
	RecipesAPI    = "Recipes"
	SnapStoresAPI = "SNAP stores"
)

// StatusError is returned when the service answers with a non-success status.
// Body is the raw response text.
type StatusError struct {
	API        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.API, e.StatusCode, e.Body)
}

// Client talks to the recipe and store endpoints. It sets no timeout of its
// own; callers bound each call through ctx.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new client for the service at baseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FetchRecipes posts the user context to /recipes.
func (c *Client) FetchRecipes(ctx context.Context, userContext string) (*wire.RecipesResponse, error) {
	reqBytes, err := json.Marshal(wire.RecipesRequest{UserContext: userContext})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recipes", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, RecipesAPI)
	if err != nil {
		return nil, err
	}

	var resp wire.RecipesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode recipes response: %w", err)
	}
	return &resp, nil
}

// FetchSnapStores lists SNAP retailers closest to zip.
func (c *Client) FetchSnapStores(ctx context.Context, zip string) ([]wire.SnapStore, error) {
	endpoint := c.baseURL + "/snap-stores/closest?zip_code=" + url.QueryEscape(strings.TrimSpace(zip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req, SnapStoresAPI)
	if err != nil {
		return nil, err
	}

	stores, err := wire.DecodeSnapStores(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snap stores response: %w", err)
	}
	return stores, nil
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(req *http.Request, api string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("%s API returned %d", api, resp.StatusCode)
		return nil, &StatusError{API: api, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
