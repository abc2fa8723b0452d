// Package fetcher talks to the two public joke upstreams. Every method
// issues exactly one outbound GET and reshapes the JSON body into a plain
// string; there is no retry, no caching and no fallback.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"joke-mcp/internal/config"
)

const userAgent = "joke-mcp/1.0"

type Client struct {
	cfg    config.UpstreamConfig
	client *http.Client
}

func New(cfg config.UpstreamConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

type chuckJoke struct {
	Value string `json:"value"`
}

type dadJoke struct {
	Joke string `json:"joke"`
}

// RandomJoke fetches one random joke from the Chuck Norris API.
func (c *Client) RandomJoke(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.cfg.ChuckAPIURL+"/jokes/random", nil)
	if err != nil {
		return "", err
	}

	var joke chuckJoke
	if err := json.Unmarshal(body, &joke); err != nil {
		return "", fmt.Errorf("failed to decode joke response: %w", err)
	}

	return joke.Value, nil
}

// JokeByCategory fetches one random joke constrained to the given category.
// The category is passed through as-is; an unknown category yields whatever
// the upstream answers, including its own error shape.
func (c *Client) JokeByCategory(ctx context.Context, category string) (string, error) {
	q := url.Values{}
	q.Set("category", category)

	body, err := c.get(ctx, c.cfg.ChuckAPIURL+"/jokes/random?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	var joke chuckJoke
	if err := json.Unmarshal(body, &joke); err != nil {
		return "", fmt.Errorf("failed to decode joke response: %w", err)
	}

	return joke.Value, nil
}

// Categories fetches the list of joke categories, joined with ", ".
func (c *Client) Categories(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.cfg.ChuckAPIURL+"/jokes/categories", nil)
	if err != nil {
		return "", err
	}

	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		return "", fmt.Errorf("failed to decode categories response: %w", err)
	}

	return strings.Join(categories, ", "), nil
}

// DadJoke fetches one random dad joke. The upstream only answers JSON when
// sent an Accept: application/json header.
func (c *Client) DadJoke(ctx context.Context) (string, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")

	body, err := c.get(ctx, c.cfg.DadJokeAPIURL+"/", header)
	if err != nil {
		return "", err
	}

	var joke dadJoke
	if err := json.Unmarshal(body, &joke); err != nil {
		return "", fmt.Errorf("failed to decode dad joke response: %w", err)
	}

	return joke.Joke, nil
}

func (c *Client) get(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	for key, values := range header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", req.URL.Host, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
