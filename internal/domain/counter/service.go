package counter

import (
	"context"
	"log/slog"
	"strings"

	"mtgsalty/internal/domain/cards"
	"mtgsalty/internal/infra/llm/claude"
	apperrors "mtgsalty/pkg/errors"
)

// Service exposes the two counter-strategy operations.
type Service interface {
	RecommendCounters(ctx context.Context, req Request) (Recommendation, error)
	SuggestDeckChanges(ctx context.Context, req SuggestionRequest) (Suggestion, error)
}

// ChatClient is the slice of the Messages API the service needs.
type ChatClient interface {
	CreateMessage(ctx context.Context, req claude.MessagesRequest) (claude.MessagesResponse, error)
}

// Config carries the model parameters for completion calls.
type Config struct {
	Model     string
	MaxTokens int
}

type service struct {
	cfg       Config
	client    ChatClient
	validator *validator
	logger    *slog.Logger
}

// NewService wires up the counter domain.
func NewService(cfg Config, client ChatClient, lookup cards.Lookup, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		client:    client,
		validator: newValidator(lookup, logger),
		logger:    logger.With("component", "counter.service"),
	}
}

// RecommendCounters asks the model for counter-commanders and answer cards,
// then filters every suggestion through the card database. Optional request
// fields may be empty; they mean "no additional context", not bad input.
func (s *service) RecommendCounters(ctx context.Context, req Request) (Recommendation, error) {
	if strings.TrimSpace(req.CommanderName) == "" {
		return Recommendation{}, apperrors.Wrap("invalid_input", "commanderName is required", nil)
	}
	if !req.HateLevel.Valid() {
		return Recommendation{}, apperrors.Wrap("invalid_input", "hateLevel must be between 1 and 5", nil)
	}

	text, err := s.complete(ctx, buildCounterPrompt(req))
	if err != nil {
		return Recommendation{}, err
	}

	raw, err := parseRecommendation(text)
	if err != nil {
		return Recommendation{}, apperrors.Wrap("completion_parse_error", "completion response malformed", err)
	}
	s.logger.Info("raw recommendation received",
		"commander", req.CommanderName,
		"hate_level", int(req.HateLevel),
		"commanders", len(raw.Commanders),
		"cards", len(raw.Cards))

	commanders, err := s.validator.validateCommanders(ctx, raw.Commanders)
	if err != nil {
		return Recommendation{}, apperrors.Wrap("lookup_error", "suggestion validation failed", err)
	}
	validated, err := s.validator.validateCards(ctx, raw.Cards)
	if err != nil {
		return Recommendation{}, apperrors.Wrap("lookup_error", "suggestion validation failed", err)
	}

	return Recommendation{
		Analysis:   raw.Analysis,
		Commanders: commanders,
		Cards:      validated,
	}, nil
}

// SuggestDeckChanges asks the model for add/remove deltas against the user's
// current list. Adds are validated like counter cards; removes pass through
// untouched.
func (s *service) SuggestDeckChanges(ctx context.Context, req SuggestionRequest) (Suggestion, error) {
	if strings.TrimSpace(req.TargetCommander) == "" {
		return Suggestion{}, apperrors.Wrap("invalid_input", "targetCommander is required", nil)
	}
	if strings.TrimSpace(req.UserCommander) == "" {
		return Suggestion{}, apperrors.Wrap("invalid_input", "userCommander is required", nil)
	}
	if len(req.DeckList) == 0 {
		return Suggestion{}, apperrors.Wrap("invalid_input", "deckList is required", nil)
	}
	if req.HateLevel == 0 {
		req.HateLevel = DefaultHateLevel
	}
	if !req.HateLevel.Valid() {
		return Suggestion{}, apperrors.Wrap("invalid_input", "hateLevel must be between 1 and 5", nil)
	}

	text, err := s.complete(ctx, buildSuggestionPrompt(req))
	if err != nil {
		return Suggestion{}, err
	}

	raw, err := parseSuggestion(text)
	if err != nil {
		return Suggestion{}, apperrors.Wrap("completion_parse_error", "completion response malformed", err)
	}
	s.logger.Info("raw suggestion received",
		"target", req.TargetCommander,
		"adds", len(raw.CardsToAdd),
		"removes", len(raw.CardsToRemove))

	adds, err := s.validator.validateAdds(ctx, raw.CardsToAdd)
	if err != nil {
		return Suggestion{}, apperrors.Wrap("lookup_error", "suggestion validation failed", err)
	}

	return Suggestion{
		Explanation:   raw.Explanation,
		CardsToAdd:    adds,
		CardsToRemove: raw.CardsToRemove,
	}, nil
}

// complete sends one prompt and extracts the single expected text block.
func (s *service) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateMessage(ctx, claude.MessagesRequest{
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
		Messages:  []claude.Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", apperrors.Wrap("llm_error", "completion request failed", err)
	}
	if !resp.Usage.TokenUsage().IsZero() {
		s.logger.Debug("completion usage",
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens)
	}

	text, ok := resp.FirstText()
	if !ok {
		return "", apperrors.Wrap("completion_parse_error", "no text block in completion response", nil)
	}
	return text, nil
}
