package counter

import "mtgsalty/internal/domain/cards"

// HateLevel is the 1-5 scale for how aggressively recommendations should
// target the opposing commander.
type HateLevel int

const (
	HateSprinkle    HateLevel = 1
	HateNudge       HateLevel = 2
	HateFocused     HateLevel = 3
	HateHardCounter HateLevel = 4
	HateMaximumSalt HateLevel = 5
)

// DefaultHateLevel applies when a request omits the level.
const DefaultHateLevel = HateFocused

var hateLevelLabels = map[HateLevel]struct{ name, description string }{
	HateSprinkle:    {"Sprinkle", "Add 2-3 answer cards to any existing deck"},
	HateNudge:       {"Nudge", "Choose a commander with a naturally good matchup"},
	HateFocused:     {"Focused", "Build a deck that specifically addresses the strategy"},
	HateHardCounter: {"Hard Counter", "Optimize the deck to shut down that commander"},
	HateMaximumSalt: {"Maximum Salt", "Go full hate, even if it means a narrow deck"},
}

// Valid reports whether the level is within the 1-5 scale.
func (h HateLevel) Valid() bool {
	_, ok := hateLevelLabels[h]
	return ok
}

// Name returns the fixed display name for the level.
func (h HateLevel) Name() string {
	return hateLevelLabels[h].name
}

// Description returns the fixed display description for the level.
func (h HateLevel) Description() string {
	return hateLevelLabels[h].description
}

// Card categories the model is asked to choose from. The set is closed on
// the prompt side but unvalidated on the response side: an unknown category
// string is preserved and labeled by its raw value.
const (
	CategoryRemoval         = "removal"
	CategoryHatePiece       = "hate_piece"
	CategoryProtection      = "protection"
	CategoryBoardWipe       = "board_wipe"
	CategoryCounterspell    = "counterspell"
	CategoryGraveyardHate   = "graveyard_hate"
	CategoryStax            = "stax"
	CategoryComboDisruption = "combo_disruption"
	CategoryOther           = "other"
)

var categoryLabels = map[string]string{
	CategoryRemoval:         "Removal",
	CategoryHatePiece:       "Hate Pieces",
	CategoryProtection:      "Protection",
	CategoryBoardWipe:       "Board Wipes",
	CategoryCounterspell:    "Counterspells",
	CategoryGraveyardHate:   "Graveyard Hate",
	CategoryStax:            "Stax",
	CategoryComboDisruption: "Combo Disruption",
	CategoryOther:           "Other",
}

// CategoryLabel returns the display label for a category, falling back to
// the raw string for categories the model invented.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// CounterCommander is a suggested commander to build against the target.
// Card and ImageURL are populated only after validation.
type CounterCommander struct {
	Name          string      `json:"name"`
	Reason        string      `json:"reason"`
	Strategy      string      `json:"strategy"`
	ColorIdentity []string    `json:"colorIdentity"`
	EstimatedCost string      `json:"estimatedCost"`
	Card          *cards.Card `json:"card,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
}

// CounterCard is a suggested individual answer card.
type CounterCard struct {
	Name     string      `json:"name"`
	Reason   string      `json:"reason"`
	Category string      `json:"category"`
	Card     *cards.Card `json:"card,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

// Recommendation is the counter-strategy output. Before validation the
// entries are raw model output and must not be trusted.
type Recommendation struct {
	Analysis   string             `json:"analysis"`
	Commanders []CounterCommander `json:"commanders"`
	Cards      []CounterCard      `json:"cards"`
}

// AddSuggestion is a card the model proposes adding to the user's deck.
type AddSuggestion struct {
	Name     string      `json:"name"`
	Reason   string      `json:"reason"`
	Card     *cards.Card `json:"card,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

// RemoveSuggestion references a card already in the user's deck; it is
// never looked up.
type RemoveSuggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Suggestion is the deck-delta output.
type Suggestion struct {
	Explanation   string             `json:"explanation"`
	CardsToAdd    []AddSuggestion    `json:"cardsToAdd"`
	CardsToRemove []RemoveSuggestion `json:"cardsToRemove"`
}

// Request asks for counter recommendations against one commander.
type Request struct {
	CommanderName     string    `json:"commanderName"`
	CommanderType     string    `json:"commanderType"`
	CommanderColors   []string  `json:"commanderColors"`
	CommanderText     string    `json:"commanderText"`
	CommanderKeywords []string  `json:"commanderKeywords"`
	HateLevel         HateLevel `json:"hateLevel"`
	UserColorIdentity []string  `json:"userColorIdentity"`
}

// SuggestionRequest asks for add/remove deltas to an existing deck.
type SuggestionRequest struct {
	TargetCommander     string    `json:"targetCommander"`
	TargetCommanderText string    `json:"targetCommanderText"`
	UserCommander       string    `json:"userCommander"`
	UserColorIdentity   []string  `json:"userColorIdentity"`
	DeckList            []string  `json:"deckList"`
	HateLevel           HateLevel `json:"hateLevel"`
}
