package counter

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"mtgsalty/internal/domain/cards"
)

// Lookups for one batch of suggestions run concurrently; the shared outbound
// throttle spaces their issue times, and results are written back by index
// so the output stays in suggestion order regardless of completion order.
const maxConcurrentLookups = 4

// validator cross-checks raw model suggestions against the card database.
// Nothing reaches a response payload without surviving a real lookup:
// hallucinated names, banned cards and ineligible commanders are dropped
// silently, shrinking the list rather than failing the request.
type validator struct {
	lookup cards.Lookup
	logger *slog.Logger
}

func newValidator(lookup cards.Lookup, logger *slog.Logger) *validator {
	return &validator{lookup: lookup, logger: logger.With("component", "counter.validator")}
}

func (v *validator) validateCommanders(ctx context.Context, raw []CounterCommander) ([]CounterCommander, error) {
	results := make([]*CounterCommander, len(raw))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, suggestion := range raw {
		g.Go(func() error {
			card, err := v.lookup.CardByName(ctx, suggestion.Name)
			if err != nil {
				return err
			}
			if card == nil || !card.IsValidCommanderCandidate() || !card.IsLegalIn(cards.FormatCommander) {
				v.logger.Debug("commander suggestion dropped", "name", suggestion.Name, "found", card != nil)
				return nil
			}
			suggestion.Card = card
			suggestion.ImageURL = card.ImageURL(cards.ImageNormal)
			results[i] = &suggestion
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]CounterCommander, 0, len(raw))
	for _, r := range results {
		if r != nil {
			kept = append(kept, *r)
		}
	}
	return kept, nil
}

func (v *validator) validateCards(ctx context.Context, raw []CounterCard) ([]CounterCard, error) {
	results := make([]*CounterCard, len(raw))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, suggestion := range raw {
		g.Go(func() error {
			card, err := v.lookup.CardByName(ctx, suggestion.Name)
			if err != nil {
				return err
			}
			if card == nil || !card.IsLegalIn(cards.FormatCommander) {
				v.logger.Debug("card suggestion dropped", "name", suggestion.Name, "found", card != nil)
				return nil
			}
			suggestion.Card = card
			suggestion.ImageURL = card.ImageURL(cards.ImageNormal)
			results[i] = &suggestion
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]CounterCard, 0, len(raw))
	for _, r := range results {
		if r != nil {
			kept = append(kept, *r)
		}
	}
	return kept, nil
}

// validateAdds applies the card rule to add-suggestions. Remove-suggestions
// are never validated: they reference cards already in the user's own deck.
func (v *validator) validateAdds(ctx context.Context, raw []AddSuggestion) ([]AddSuggestion, error) {
	results := make([]*AddSuggestion, len(raw))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, suggestion := range raw {
		g.Go(func() error {
			card, err := v.lookup.CardByName(ctx, suggestion.Name)
			if err != nil {
				return err
			}
			if card == nil || !card.IsLegalIn(cards.FormatCommander) {
				v.logger.Debug("add suggestion dropped", "name", suggestion.Name, "found", card != nil)
				return nil
			}
			suggestion.Card = card
			suggestion.ImageURL = card.ImageURL(cards.ImageNormal)
			results[i] = &suggestion
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]AddSuggestion, 0, len(raw))
	for _, r := range results {
		if r != nil {
			kept = append(kept, *r)
		}
	}
	return kept, nil
}
