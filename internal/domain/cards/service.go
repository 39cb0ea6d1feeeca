package cards

import (
	"context"
	"log/slog"
	"strings"

	apperrors "mtgsalty/pkg/errors"
)

// Queries shorter than this never reach the card database.
const minQueryLength = 2

// Service exposes the commander search capability.
type Service interface {
	SearchCommanders(ctx context.Context, query string) ([]Card, error)
}

type service struct {
	searcher Searcher
	logger   *slog.Logger
}

// NewService wires up the card search domain.
func NewService(searcher Searcher, logger *slog.Logger) Service {
	return &service{
		searcher: searcher,
		logger:   logger.With("component", "cards.service"),
	}
}

// SearchCommanders runs a commander search. Empty or too-short queries
// short-circuit to an empty result without an outbound call.
func (s *service) SearchCommanders(ctx context.Context, query string) ([]Card, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < minQueryLength {
		return []Card{}, nil
	}

	results, err := s.searcher.Search(ctx, trimmed)
	if err != nil {
		return nil, apperrors.Wrap("lookup_error", "commander search failed", err)
	}
	s.logger.Debug("commander search", "query", trimmed, "results", len(results))
	return results, nil
}
