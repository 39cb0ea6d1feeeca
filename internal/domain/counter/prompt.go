package counter

import (
	"fmt"
	"strings"
)

// Per-level instruction tiers. Volume and intensity grow monotonically with
// the level; level 1 asks for no commander at all.
var hateLevelInstructions = map[HateLevel]string{
	HateSprinkle:    "Suggest 2-3 individual cards that answer this commander. Focus on universally useful cards that happen to be good against this strategy. No need for a dedicated counter-commander.",
	HateNudge:       "Suggest a commander that naturally has a good matchup against this strategy, even if it wasn't designed specifically to counter it. Include 5-6 individual answer cards.",
	HateFocused:     "Suggest 2-3 commanders specifically chosen to counter this strategy. Include 8-10 targeted counter-cards. The deck should meaningfully address this commander's strategy.",
	HateHardCounter: "Suggest 3-4 commanders that hard-counter this strategy. Include 12-15 hate cards. The deck should be optimized to shut this commander down while still being functional.",
	HateMaximumSalt: "Suggest 3-5 commanders that completely lock out this strategy. Include 15-20 of the most oppressive hate cards possible. Maximum salt: the goal is to make this commander unplayable. Go all out.",
}

// Instructions returns the volume/intensity tier text for the level.
func (h HateLevel) Instructions() string {
	return hateLevelInstructions[h]
}

func buildCounterPrompt(req Request) string {
	colorConstraint := "No color identity constraint - suggest the best counter-commanders regardless of color."
	if len(req.UserColorIdentity) > 0 {
		colorConstraint = fmt.Sprintf(
			"The user's commander has color identity [%s]. All suggested cards must fit within this color identity.",
			strings.Join(req.UserColorIdentity, ", "))
	}

	return fmt.Sprintf(`You are an expert Magic: The Gathering Commander/EDH player and deckbuilder.

A player needs help countering this commander:
- Name: %s
- Type: %s
- Color Identity: [%s]
- Oracle Text: %s
- Keywords: [%s]

Hate Level: %d/5
%s

%s

CRITICAL RULES:
- Only suggest cards that are legal in Commander format
- Only suggest legendary creatures or planeswalkers that explicitly say "can be your commander" as counter-commanders
- Do NOT suggest banned cards (check against the current Commander banned list)
- Do NOT repeat the same commander suggestions, vary your recommendations
- Study what makes this commander unique and dangerous, then target those specific strengths
- Be specific about WHY each suggestion counters this commander

Respond ONLY with valid JSON in this exact format (no markdown, no code fences):
{
  "analysis": "2-3 sentences explaining what makes this commander strong and what strategies counter it.",
  "commanders": [
    {
      "name": "Exact Card Name",
      "reason": "Why this commander counters the target",
      "strategy": "Brief deck strategy overview",
      "colorIdentity": ["W", "U"],
      "estimatedCost": "$50-100"
    }
  ],
  "cards": [
    {
      "name": "Exact Card Name",
      "reason": "Why this card is effective against the target",
      "category": "removal|hate_piece|protection|board_wipe|counterspell|graveyard_hate|stax|combo_disruption|other"
    }
  ]
}`,
		req.CommanderName,
		req.CommanderType,
		strings.Join(req.CommanderColors, ", "),
		req.CommanderText,
		strings.Join(req.CommanderKeywords, ", "),
		req.HateLevel,
		req.HateLevel.Instructions(),
		colorConstraint)
}

func buildSuggestionPrompt(req SuggestionRequest) string {
	deckLines := make([]string, len(req.DeckList))
	for i, card := range req.DeckList {
		deckLines[i] = "- " + card
	}
	colors := strings.Join(req.UserColorIdentity, ", ")

	return fmt.Sprintf(`You are an expert Magic: The Gathering Commander/EDH deckbuilder.

A player wants to modify their existing deck to better counter a specific commander.

Target Commander to Counter: %s
Target Commander Text: %s

Player's Commander: %s
Player's Color Identity: [%s]
Hate Level: %d/5

Current Deck List:
%s

Suggest cards to ADD and cards to REMOVE to better counter the target commander.
All suggestions must be within the player's color identity [%s].
All suggested cards must be Commander-legal and not on the banned list.

Respond ONLY with valid JSON (no markdown, no code fences):
{
  "explanation": "Overview of the suggested changes and why they help.",
  "cardsToAdd": [
    { "name": "Exact Card Name", "reason": "Why to add this card" }
  ],
  "cardsToRemove": [
    { "name": "Exact Card Name", "reason": "Why to remove this card" }
  ]
}`,
		req.TargetCommander,
		req.TargetCommanderText,
		req.UserCommander,
		colors,
		req.HateLevel,
		strings.Join(deckLines, "\n"),
		colors)
}
