package moxfield

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"mtgsalty/internal/domain/deck"
)

const (
	defaultBaseURL   = "https://api.moxfield.com/v2"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "MTG_Salty/1.0"
)

var deckURLRe = regexp.MustCompile(`https?://(?:www\.)?moxfield\.com/decks/([A-Za-z0-9_-]+)`)

// Options tune the client; zero values fall back to defaults.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client fetches public decks from the Moxfield API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds a Moxfield API client.
func NewClient(opts Options) *Client {
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// ResolvePublicID extracts the public deck ID from a share URL.
func (c *Client) ResolvePublicID(url string) (string, bool) {
	match := deckURLRe.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// FetchDeck downloads a public deck and normalizes it to the canonical
// shape.
func (c *Client) FetchDeck(ctx context.Context, publicID string) (deck.Deck, error) {
	endpoint := fmt.Sprintf("%s/decks/all/%s", c.baseURL, publicID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("build deck request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("deck request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return deck.Deck{}, fmt.Errorf("deck request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("read deck response: %w", err)
	}
	return normalizePayload(body)
}

type wirePayload struct {
	Commanders json.RawMessage `json:"commanders"`
	Mainboard  json.RawMessage `json:"mainboard"`
	Sideboard  json.RawMessage `json:"sideboard"`
}

type wireEntry struct {
	Quantity int `json:"quantity"`
	Card     struct {
		Name            string `json:"name"`
		Set             string `json:"set"`
		CollectorNumber string `json:"collector_number"`
	} `json:"card"`
}

// normalizePayload flattens the three keyed collections into the canonical
// deck. Only the first commander counts; boards keep the payload's own key
// order, which a plain Go map would scramble, so the objects are walked
// token by token instead.
func normalizePayload(body []byte) (deck.Deck, error) {
	var payload wirePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return deck.Deck{}, fmt.Errorf("decode deck payload: %w", err)
	}

	d := deck.NewDeck()

	commanders, err := boardEntries(payload.Commanders)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("decode commanders: %w", err)
	}
	if len(commanders) > 0 {
		d.Commander = &commanders[0]
	}

	if d.Mainboard, err = boardEntries(payload.Mainboard); err != nil {
		return deck.Deck{}, fmt.Errorf("decode mainboard: %w", err)
	}
	if d.Sideboard, err = boardEntries(payload.Sideboard); err != nil {
		return deck.Deck{}, fmt.Errorf("decode sideboard: %w", err)
	}
	return d, nil
}

func boardEntries(raw json.RawMessage) ([]deck.Entry, error) {
	entries := []deck.Entry{}
	if len(raw) == 0 || string(raw) == "null" {
		return entries, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("board is not an object")
	}

	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var entry wireEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, err
		}
		quantity := entry.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		entries = append(entries, deck.Entry{
			Quantity:        quantity,
			Name:            entry.Card.Name,
			SetCode:         entry.Card.Set,
			CollectorNumber: entry.Card.CollectorNumber,
		})
	}
	return entries, nil
}

var _ deck.Source = (*Client)(nil)
