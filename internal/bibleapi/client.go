// Package bibleapi fetches verse texts from the remote Bible API.
package bibleapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"shuvoedward/bible_verses/internal/data"
	"strings"
	"time"
)

var ErrMissingBaseURL = errors.New("bible api base url is required")

type Config struct {
	BaseURL string
	Token   string
	// Timeout bounds a single request, connection included.
	Timeout time.Duration
}

type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *slog.Logger
}

// chapterResponse is the body of GET /verses/{version}/{abbrev}/{chapter}.
type chapterResponse struct {
	Verses []data.VerseDetail `json:"verses"`
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}, nil
}

func chapterPath(version, abbrev string, chapter int) string {
	return fmt.Sprintf("/verses/%s/%s/%d", version, abbrev, chapter)
}

func versePath(version, abbrev string, chapter, verse int) string {
	return fmt.Sprintf("/verses/%s/%s/%d/%d", version, abbrev, chapter, verse)
}

// FetchChapter returns every verse of a chapter in the order the API sends them.
func (c *Client) FetchChapter(ctx context.Context, version, abbrev string, chapter int) ([]data.VerseDetail, error) {
	var resp chapterResponse

	err := c.get(ctx, "chapter", chapterPath(version, abbrev, chapter), &resp)
	if err != nil {
		return nil, err
	}

	return resp.Verses, nil
}

func (c *Client) FetchVerse(ctx context.Context, version, abbrev string, chapter, verse int) (*data.VerseDetail, error) {
	var resp data.VerseDetail

	err := c.get(ctx, "verse", versePath(version, abbrev, chapter, verse), &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// get performs one GET request and decodes a 200 response into dst.
// 404 maps to data.ErrNotFound, any other status to data.ErrUnexpectedResponse
// and everything else to data.ErrFailure. Requests are never retried.
func (c *Client) get(ctx context.Context, operation, path string, dst any) error {
	start := time.Now()
	outcome := "failure"
	defer func() {
		fetchesTotal.WithLabelValues(operation, outcome).Inc()
		fetchDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.logger.Error("failed to build bible api request", "endpoint", path, "error", err)
		return fmt.Errorf("%w: build request for %s: %v", data.ErrFailure, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("unexpected error calling bible api", "endpoint", path, "error", err)
		return fmt.Errorf("%w: GET %s: %v", data.ErrFailure, path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		outcome = "not_found"
		c.logger.Warn("bible api returned not found", "endpoint", path, "status", res.StatusCode)
		return fmt.Errorf("%w: GET %s", data.ErrNotFound, path)

	case res.StatusCode != http.StatusOK:
		outcome = "unexpected_response"
		c.logger.Warn("bible api returned unexpected status", "endpoint", path, "status", res.StatusCode)
		return fmt.Errorf("%w: GET %s: status %d", data.ErrUnexpectedResponse, path, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		c.logger.Error("failed to decode bible api response", "endpoint", path, "error", err)
		return fmt.Errorf("%w: decode %s: %v", data.ErrFailure, path, err)
	}

	outcome = "ok"
	c.logger.Debug("bible api call", "endpoint", path, "duration", time.Since(start))

	return nil
}
