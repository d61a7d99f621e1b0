package chainapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sigweihq/walletlink/pkg/constants"
)

// Client talks to an Antelope chain API node (/v1/chain endpoints). It is
// safe for concurrent use.
type Client struct {
	URL        string
	HTTPClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a chain API client for the given node URL. A nil
// logger falls back to slog.Default().
func NewClient(url string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		URL:        strings.TrimRight(url, "/"),
		HTTPClient: &http.Client{Timeout: constants.ChainAPITimeout},
		logger:     logger,
	}
}

// post is a shared helper for chain API calls with consistent error
// handling. Antelope nodes accept every chain query as a POST.
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	limitedReader := io.LimitReader(resp.Body, int64(constants.MaxResponseBodySize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(limitedReader)
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       bodyBytes,
		}
	}

	if result != nil {
		if err := json.NewDecoder(limitedReader).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// HTTPError represents a non-2xx chain API response with its body
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if len(e.Body) > 0 {
		// Antelope nodes report failures as a structured error object
		var errResp struct {
			Error struct {
				What string `json:"what"`
			} `json:"error"`
		}
		if err := json.Unmarshal(e.Body, &errResp); err == nil && errResp.Error.What != "" {
			return fmt.Sprintf("HTTP %d: %s", e.StatusCode, errResp.Error.What)
		}
		return fmt.Sprintf("HTTP %d: %s - %s", e.StatusCode, e.Status, string(e.Body))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// IsNotFound returns true if the error is a 404 Not Found error
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
