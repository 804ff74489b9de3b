// Package client is a thin HTTP client for the practice API, used by the
// terminal practice client. It implements selector.Source for word fetching
// and recorder.Sink for session ingestion.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mtb/aren-app/internal/catalog"
	"github.com/mtb/aren-app/internal/domain"
)

// Client calls the practice API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3000").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Word fetches a word drawn from all buckets.
func (c *Client) Word(ctx context.Context) (string, error) {
	var resp struct {
		Word string `json:"word"`
	}
	if err := c.getJSON(ctx, "/api/word", &resp); err != nil {
		return "", err
	}
	return resp.Word, nil
}

// WordForCount fetches a word with exactly the given syllable count.
// A 404 maps back to catalog.ErrUnknownBucket so callers can treat remote
// and in-process sources uniformly.
func (c *Client) WordForCount(ctx context.Context, count int) (string, error) {
	var resp struct {
		Word string `json:"word"`
	}
	err := c.getJSON(ctx, fmt.Sprintf("/api/word/%d", count), &resp)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return "", fmt.Errorf("%w: %d", catalog.ErrUnknownBucket, count)
		}
		return "", err
	}
	return resp.Word, nil
}

// Counts fetches the available syllable counts.
func (c *Client) Counts(ctx context.Context) ([]int, error) {
	var resp struct {
		Counts []int `json:"counts"`
	}
	if err := c.getJSON(ctx, "/api/word-counts", &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

// Ingest posts a committed session record. Implements recorder.Sink.
func (c *Client) Ingest(ctx context.Context, record *domain.SessionRecord) error {
	if err := c.postJSON(ctx, "/api/performance", record); err != nil {
		return fmt.Errorf("failed to send session record: %w", err)
	}
	return nil
}

// FlagWord marks a word for later spelling review.
func (c *Client) FlagWord(ctx context.Context, word string) error {
	payload := struct {
		Word string `json:"word"`
	}{Word: word}
	if err := c.postJSON(ctx, "/api/check-word", payload); err != nil {
		return fmt.Errorf("failed to flag word: %w", err)
	}
	return nil
}

// postJSON performs a POST with a JSON body, discarding the response body.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode, path: path}
	}

	return nil
}

// getJSON performs a GET and decodes a JSON response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode, path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// statusError reports a non-200 API response.
type statusError struct {
	code int
	path string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server returned %d for %s", e.code, e.path)
}

// statusOf extracts the HTTP status from a statusError, or 0.
func statusOf(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	return 0
}
