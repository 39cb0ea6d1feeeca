package deck

import (
	"context"
	"log/slog"
	"strings"

	"mtgsalty/internal/domain/cards"
	apperrors "mtgsalty/pkg/errors"
)

// Source fetches decks from a deck hosting service.
type Source interface {
	// ResolvePublicID extracts the public deck identifier from a share URL,
	// reporting false when the URL does not match the service's link shape.
	ResolvePublicID(url string) (string, bool)
	FetchDeck(ctx context.Context, publicID string) (Deck, error)
}

// ImportRequest carries exactly one of a share URL or pasted deck text.
type ImportRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ImportResult is the imported deck plus its canonical text rendering.
type ImportResult struct {
	Deck Deck   `json:"deck"`
	Text string `json:"text"`
}

// Service exposes deck import.
type Service interface {
	Import(ctx context.Context, req ImportRequest) (ImportResult, error)
}

type service struct {
	source Source
	lookup cards.Lookup
	logger *slog.Logger
}

// NewService wires up the deck domain.
func NewService(source Source, lookup cards.Lookup, logger *slog.Logger) Service {
	return &service{
		source: source,
		lookup: lookup,
		logger: logger.With("component", "deck.service"),
	}
}

// Import normalizes a hosted deck or pasted text into the canonical shape.
// The commander, when present, is enriched with its card record on a
// best-effort basis: an unresolvable name does not fail the import.
func (s *service) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	url := strings.TrimSpace(req.URL)
	text := strings.TrimSpace(req.Text)

	var d Deck
	switch {
	case url != "":
		publicID, ok := s.source.ResolvePublicID(url)
		if !ok {
			return ImportResult{}, apperrors.Wrap("invalid_input", "not a recognized deck URL", nil)
		}
		fetched, err := s.source.FetchDeck(ctx, publicID)
		if err != nil {
			return ImportResult{}, apperrors.Wrap("deck_fetch_error", "failed to fetch hosted deck", err)
		}
		d = fetched
	case text != "":
		d = ParseText(text)
	default:
		return ImportResult{}, apperrors.Wrap("invalid_input", "provide a deck URL or deck list text", nil)
	}

	if d.Commander != nil {
		card, err := s.lookup.CardByName(ctx, d.Commander.Name)
		if err != nil {
			return ImportResult{}, apperrors.Wrap("lookup_error", "commander lookup failed", err)
		}
		if card != nil {
			d.Commander.Card = card
		}
	}

	s.logger.Info("deck imported",
		"source", importSource(url),
		"mainboard", len(d.Mainboard),
		"sideboard", len(d.Sideboard),
		"has_commander", d.Commander != nil)

	return ImportResult{Deck: d, Text: Export(d)}, nil
}

func importSource(url string) string {
	if url != "" {
		return "url"
	}
	return "text"
}
