package counter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The model is instructed to reply with bare JSON, but fenced replies still
// happen; fences are stripped before decoding. Anything else that fails to
// decode, or decodes to the wrong shape, is rejected outright. Partial
// recovery is forbidden: a recovered-but-wrong structure would push
// ungrounded card names into the validator.

func sanitizeCompletion(raw string) string {
	sanitized := strings.TrimSpace(raw)
	sanitized = strings.TrimPrefix(sanitized, "```json")
	sanitized = strings.TrimSuffix(sanitized, "```")
	sanitized = strings.Trim(sanitized, "`")
	return strings.TrimSpace(strings.TrimPrefix(sanitized, "json"))
}

func parseRecommendation(raw string) (Recommendation, error) {
	var wire struct {
		Analysis   *string         `json:"analysis"`
		Commanders json.RawMessage `json:"commanders"`
		Cards      json.RawMessage `json:"cards"`
	}
	if err := json.Unmarshal([]byte(sanitizeCompletion(raw)), &wire); err != nil {
		return Recommendation{}, fmt.Errorf("decode recommendation: %w", err)
	}
	if wire.Analysis == nil || strings.TrimSpace(*wire.Analysis) == "" {
		return Recommendation{}, errors.New("analysis missing")
	}

	commanders, err := decodeList[CounterCommander](wire.Commanders, "commanders")
	if err != nil {
		return Recommendation{}, err
	}
	cards, err := decodeList[CounterCard](wire.Cards, "cards")
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		Analysis:   *wire.Analysis,
		Commanders: commanders,
		Cards:      cards,
	}, nil
}

func parseSuggestion(raw string) (Suggestion, error) {
	var wire struct {
		Explanation   *string         `json:"explanation"`
		CardsToAdd    json.RawMessage `json:"cardsToAdd"`
		CardsToRemove json.RawMessage `json:"cardsToRemove"`
	}
	if err := json.Unmarshal([]byte(sanitizeCompletion(raw)), &wire); err != nil {
		return Suggestion{}, fmt.Errorf("decode suggestion: %w", err)
	}
	if wire.Explanation == nil || strings.TrimSpace(*wire.Explanation) == "" {
		return Suggestion{}, errors.New("explanation missing")
	}

	adds, err := decodeList[AddSuggestion](wire.CardsToAdd, "cardsToAdd")
	if err != nil {
		return Suggestion{}, err
	}
	removes, err := decodeList[RemoveSuggestion](wire.CardsToRemove, "cardsToRemove")
	if err != nil {
		return Suggestion{}, err
	}

	return Suggestion{
		Explanation:   *wire.Explanation,
		CardsToAdd:    adds,
		CardsToRemove: removes,
	}, nil
}

// decodeList requires field to be a JSON array. A missing or null field is a
// schema violation, not an empty list.
func decodeList[T any](raw json.RawMessage, field string) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%s missing", field)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
