package deck

import (
	"regexp"
	"strconv"
	"strings"
)

type section int

const (
	sectionCommander section = iota
	sectionMainboard
	sectionSideboard
)

// Section header aliases. Matching is case-insensitive against the whole
// trimmed line; headers are consumed, never parsed as cards.
var (
	commanderHeaders = []string{"commander", "commander:"}
	mainboardHeaders = []string{"deck", "deck:", "mainboard", "mainboard:", "library", "library:"}
	sideboardHeaders = []string{"sideboard", "sideboard:"}
	// Recognized but skipped without changing the current section.
	ignoredHeaders = []string{"companion", "companion:", "maybeboard", "maybeboard:"}
)

// Matches "1 Lightning Bolt (M21) 152", "2x Sol Ring", "1 Sol Ring".
var cardLineRe = regexp.MustCompile(`^(\d+)\s*x?\s+(.+?)(?:\s+\((\w+)\)(?:\s+(\d+))?)?$`)

// Bare card names must start with an uppercase letter to be accepted.
var bareNameRe = regexp.MustCompile(`^[A-Z]`)

// ParseText converts a freeform pasted deck list into the canonical shape.
// Unrecognized lines are dropped silently. The commander section keeps the
// last entry seen, not all of them.
func ParseText(text string) Deck {
	d := NewDeck()
	current := sectionMainboard

	for _, rawLine := range strings.Split(strings.TrimSpace(text), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if next, ok := headerSection(line); ok {
			current = next
			continue
		}
		if isIgnoredHeader(line) {
			continue
		}

		entry, ok := parseCardLine(line)
		if !ok {
			continue
		}

		switch current {
		case sectionCommander:
			e := entry
			d.Commander = &e
		case sectionSideboard:
			d.Sideboard = append(d.Sideboard, entry)
		default:
			d.Mainboard = append(d.Mainboard, entry)
		}
	}

	return d
}

func headerSection(line string) (section, bool) {
	lower := strings.ToLower(line)
	switch {
	case contains(commanderHeaders, lower):
		return sectionCommander, true
	case contains(mainboardHeaders, lower):
		return sectionMainboard, true
	case contains(sideboardHeaders, lower):
		return sectionSideboard, true
	}
	return 0, false
}

func isIgnoredHeader(line string) bool {
	return contains(ignoredHeaders, strings.ToLower(line))
}

func contains(headers []string, line string) bool {
	for _, h := range headers {
		if line == h {
			return true
		}
	}
	return false
}

func parseCardLine(line string) (Entry, bool) {
	if m := cardLineRe.FindStringSubmatch(line); m != nil {
		quantity, err := strconv.Atoi(m[1])
		if err != nil {
			return Entry{}, false
		}
		return Entry{
			Quantity:        quantity,
			Name:            strings.TrimSpace(m[2]),
			SetCode:         m[3],
			CollectorNumber: m[4],
		}, true
	}

	if bareNameRe.MatchString(line) {
		return Entry{Quantity: 1, Name: line}, true
	}

	return Entry{}, false
}
