package deck

import "mtgsalty/internal/domain/cards"

// Entry is one deck list line: a quantity and a card name, optionally pinned
// to a printing. Identity is by name; repeated entries are kept as-is.
type Entry struct {
	Quantity        int         `json:"quantity"`
	Name            string      `json:"name"`
	SetCode         string      `json:"setCode,omitempty"`
	CollectorNumber string      `json:"collectorNumber,omitempty"`
	Card            *cards.Card `json:"card,omitempty"`
}

// Deck is the canonical in-memory deck shape. A deck with no commander and
// no entries is valid; consumers must tolerate it.
type Deck struct {
	Commander *Entry  `json:"commander,omitempty"`
	Mainboard []Entry `json:"mainboard"`
	Sideboard []Entry `json:"sideboard"`
}

// NewDeck returns an empty deck with non-nil boards so serialized output
// always carries arrays.
func NewDeck() Deck {
	return Deck{Mainboard: []Entry{}, Sideboard: []Entry{}}
}
