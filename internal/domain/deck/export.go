package deck

import (
	"fmt"
	"strings"
)

// Export renders a deck back to the freeform text format ParseText accepts.
// Re-parsing the output reproduces an equivalent deck.
func Export(d Deck) string {
	var lines []string

	if d.Commander != nil {
		lines = append(lines, "Commander", formatEntry(*d.Commander), "")
	}

	if len(d.Mainboard) > 0 {
		lines = append(lines, "Deck")
		for _, entry := range d.Mainboard {
			lines = append(lines, formatEntry(entry))
		}
	}

	if len(d.Sideboard) > 0 {
		lines = append(lines, "", "Sideboard")
		for _, entry := range d.Sideboard {
			lines = append(lines, formatEntry(entry))
		}
	}

	return strings.Join(lines, "\n")
}

func formatEntry(e Entry) string {
	line := fmt.Sprintf("%d %s", e.Quantity, e.Name)
	if e.SetCode != "" {
		line += fmt.Sprintf(" (%s)", strings.ToUpper(e.SetCode))
		// The collector number is only meaningful alongside a set code.
		if e.CollectorNumber != "" {
			line += " " + e.CollectorNumber
		}
	}
	return line
}
