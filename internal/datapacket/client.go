package datapacket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is used when no request timeout is configured.
const DefaultTimeout = 30 * time.Second

// ErrShapeMismatch is returned when the detailed pricing response parses but
// lacks the expected component collections. Callers fall back to the
// configurations query.
var ErrShapeMismatch = errors.New("detailed pricing response missing component collections")

// APIError is a non-2xx response from the provider API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("datapacket API error: status=%d body=%s", e.StatusCode, e.Body)
}

// GraphQL-style queries against the provider API. The detailed pricing query
// is preferred; the configurations query is the fallback when the provider
// stops serving structured component collections.
const (
	detailedPricingQuery = `query {
  components {
    cpus { id name price cores stockCount available }
    memory { id name price sizeGb stockCount available }
    storage { id name price sizeGb stockCount available }
  }
}`

	configurationsQuery = `query {
  configurations {
    id name price stockCount
    location { shortName name }
    cpu { name cores }
    memory { name sizeGb }
    storage { name sizeGb }
  }
}`

	operatingSystemsQuery = `query {
  operatingSystems { osImageId name }
}`
)

// Client talks to the provisioning provider over HTTP with a GraphQL-style
// query body and bearer auth. All calls are stateless and idempotent; retry
// policy belongs to the caller.
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewClient creates a provider client. A zero timeout falls back to
// DefaultTimeout.
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDetailedPricing requests the structured component collections with
// explicit price fields. Any error, including ErrShapeMismatch, means
// "detailed pricing unavailable" and callers must degrade to
// FetchConfigurations.
func (c *Client) FetchDetailedPricing(ctx context.Context) (*DetailedPricing, error) {
	body, err := c.query(ctx, detailedPricingQuery)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			Components *DetailedPricing `json:"components"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Data.Components == nil {
		return nil, ErrShapeMismatch
	}

	return resp.Data.Components, nil
}

// FetchConfigurations requests the provisioning configuration bundles.
func (c *Client) FetchConfigurations(ctx context.Context) ([]Configuration, error) {
	body, err := c.query(ctx, configurationsQuery)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			Configurations []Configuration `json:"configurations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return resp.Data.Configurations, nil
}

// FetchOperatingSystems requests the OS catalog (osImageId, name pairs).
func (c *Client) FetchOperatingSystems(ctx context.Context) ([]OperatingSystem, error) {
	body, err := c.query(ctx, operatingSystemsQuery)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data struct {
			OperatingSystems []OperatingSystem `json:"operatingSystems"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return resp.Data.OperatingSystems, nil
}

// query posts a GraphQL body and returns the raw response bytes. Non-2xx
// responses become *APIError.
func (c *Client) query(ctx context.Context, query string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
