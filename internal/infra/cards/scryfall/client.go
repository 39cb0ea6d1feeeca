package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"mtgsalty/internal/domain/cards"
)

const (
	defaultBaseURL     = "https://api.scryfall.com"
	defaultMinInterval = 75 * time.Millisecond
	defaultTimeout     = 10 * time.Second
	defaultUserAgent   = "MTG_Salty/1.0"

	// Appended to every search so only commander-eligible, commander-legal
	// cards come back.
	commanderFilter = " is:commander f:commander"
)

// Options tune the client; zero values fall back to defaults.
type Options struct {
	BaseURL     string
	MinInterval time.Duration
	Timeout     time.Duration
	UserAgent   string
}

// Client is a Scryfall API client. All outbound calls share one limiter so
// no two requests are issued closer together than the minimum interval, no
// matter how many goroutines are resolving cards at once.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient builds a rate-limited Scryfall client.
func NewClient(opts Options) *Client {
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = defaultMinInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		userAgent:   opts.UserAgent,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		rateLimiter: rate.NewLimiter(rate.Every(opts.MinInterval), 1),
	}
}

type searchResult struct {
	TotalCards int          `json:"total_cards"`
	HasMore    bool         `json:"has_more"`
	Data       []cards.Card `json:"data"`
}

// Search runs a commander-scoped full text search ordered by EDHREC rank.
// A 404 means no matches and yields an empty slice; any other non-success
// status is an error.
func (c *Client) Search(ctx context.Context, query string) ([]cards.Card, error) {
	endpoint := fmt.Sprintf("%s/cards/search?q=%s&order=edhrec",
		c.baseURL, url.QueryEscape(query+commanderFilter))

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []cards.Card{}, nil
	}
	if resp.StatusCode >= 300 {
		return nil, statusError(resp)
	}

	var result searchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return result.Data, nil
}

// CardByName resolves a card by its exact name. Any non-success status maps
// to absence, not an error: callers branch on the nil card explicitly.
func (c *Client) CardByName(ctx context.Context, name string) (*cards.Card, error) {
	endpoint := fmt.Sprintf("%s/cards/named?exact=%s", c.baseURL, url.QueryEscape(name))
	return c.getCard(ctx, endpoint)
}

// CardByID resolves a card by Scryfall ID, with the same absence contract
// as CardByName.
func (c *Client) CardByID(ctx context.Context, id string) (*cards.Card, error) {
	endpoint := fmt.Sprintf("%s/cards/%s", c.baseURL, url.PathEscape(id))
	return c.getCard(ctx, endpoint)
}

func (c *Client) getCard(ctx context.Context, endpoint string) (*cards.Card, error) {
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, nil
	}

	var card cards.Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("decode card response: %w", err)
	}
	return &card, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build scryfall request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scryfall request failed: %w", err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return fmt.Errorf("scryfall request error: status=%d body=%s", resp.StatusCode, string(body))
}

var (
	_ cards.Lookup   = (*Client)(nil)
	_ cards.Searcher = (*Client)(nil)
)
