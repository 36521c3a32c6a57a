package catalog

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

const defaultBaseURL = "https://wger.de/api/v2"

// Exercise is one search result from the catalog.
type Exercise struct {
	ID   int    `json:"id"`
	Base int    `json:"exercise_base"`
	Name string `json:"name"`
}

// Image is one image descriptor attached to an exercise base.
type Image struct {
	ID     int    `json:"id"`
	Image  string `json:"image"`
	IsMain bool   `json:"is_main"`
}

type page[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// Client queries the wger exercise catalog. All calls are read-only GETs
// bounded by the client's deadline; there are no retries.
type Client struct {
	http *resty.Client
}

// NewClient creates a catalog client against baseURL (the public wger API
// when empty) with a per-call deadline. The original consumer had no
// timeout at all; here a stalled catalog call fails the single resolution
// it belongs to instead of wedging a whole batch window.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: client}
}

// NewClientWith wraps an existing resty client. Tests use this to point
// the catalog at a local server.
func NewClientWith(client *resty.Client) *Client {
	return &Client{http: client}
}

// Search looks up exercises matching term in English.
func (c *Client) Search(ctx context.Context, term string) ([]Exercise, error) {
	var body page[Exercise]
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		SetQueryParams(map[string]string{
			"language": "2",
			"limit":    "20",
			"search":   term,
		}).
		Get("/exercise/")
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog search: status %d", resp.StatusCode())
	}
	return body.Results, nil
}

// Images lists image descriptors for an exercise base. With mainOnly set,
// only images marked primary are returned.
func (c *Client) Images(ctx context.Context, baseID int, mainOnly bool) ([]Image, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("exercise_base", fmt.Sprintf("%d", baseID))
	if mainOnly {
		req.SetQueryParam("is_main", "True")
	}
	var body page[Image]
	resp, err := req.SetResult(&body).Get("/exerciseimage/")
	if err != nil {
		return nil, fmt.Errorf("catalog images: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog images: status %d", resp.StatusCode())
	}
	return body.Results, nil
}
