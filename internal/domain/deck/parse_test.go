package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTextBasicSections(t *testing.T) {
	text := "Commander\n1 Atraxa, Praetors' Voice\n\nDeck\n1 Sol Ring\n1 Arcane Signet"

	d := ParseText(text)

	require.NotNil(t, d.Commander)
	require.Equal(t, 1, d.Commander.Quantity)
	require.Equal(t, "Atraxa, Praetors' Voice", d.Commander.Name)
	require.Len(t, d.Mainboard, 2)
	require.Equal(t, Entry{Quantity: 1, Name: "Sol Ring"}, d.Mainboard[0])
	require.Equal(t, Entry{Quantity: 1, Name: "Arcane Signet"}, d.Mainboard[1])
	require.Empty(t, d.Sideboard)
}

func TestParseTextDefaultsToMainboard(t *testing.T) {
	d := ParseText("1 Sol Ring\n1 Counterspell")

	require.Nil(t, d.Commander)
	require.Len(t, d.Mainboard, 2)
}

func TestParseTextCardLineVariants(t *testing.T) {
	tests := []struct {
		line string
		want Entry
	}{
		{"1 Lightning Bolt (M21) 152", Entry{Quantity: 1, Name: "Lightning Bolt", SetCode: "M21", CollectorNumber: "152"}},
		{"2x Sol Ring", Entry{Quantity: 2, Name: "Sol Ring"}},
		{"3 Brainstorm (ice)", Entry{Quantity: 3, Name: "Brainstorm", SetCode: "ice"}},
		{"Lightning Bolt", Entry{Quantity: 1, Name: "Lightning Bolt"}},
		{"4 Ancient Tomb", Entry{Quantity: 4, Name: "Ancient Tomb"}},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			d := ParseText(tc.line)
			require.Len(t, d.Mainboard, 1)
			require.Equal(t, tc.want, d.Mainboard[0])
		})
	}
}

func TestParseTextDropsUnparseableLines(t *testing.T) {
	d := ParseText("1 Sol Ring\nlowercase junk line\n???\n1 Counterspell")

	require.Len(t, d.Mainboard, 2)
	require.Equal(t, "Sol Ring", d.Mainboard[0].Name)
	require.Equal(t, "Counterspell", d.Mainboard[1].Name)
}

func TestParseTextSectionHeadersAreCaseInsensitive(t *testing.T) {
	text := "COMMANDER:\n1 Muldrotha, the Gravetide\nDECK\n1 Sol Ring\nSideboard:\n1 Negate\nLIBRARY\n1 Brainstorm"

	d := ParseText(text)

	require.NotNil(t, d.Commander)
	require.Equal(t, "Muldrotha, the Gravetide", d.Commander.Name)
	require.Equal(t, []Entry{{Quantity: 1, Name: "Sol Ring"}, {Quantity: 1, Name: "Brainstorm"}}, d.Mainboard)
	require.Equal(t, []Entry{{Quantity: 1, Name: "Negate"}}, d.Sideboard)
}

func TestParseTextSkippedHeadersKeepSection(t *testing.T) {
	text := "Sideboard\nCompanion\n1 Yorion, Sky Nomad\nMaybeboard:\n1 Negate"

	d := ParseText(text)

	// Companion/maybeboard headers are consumed but the sideboard section
	// stays active for the lines after them.
	require.Empty(t, d.Mainboard)
	require.Equal(t, []Entry{{Quantity: 1, Name: "Yorion, Sky Nomad"}, {Quantity: 1, Name: "Negate"}}, d.Sideboard)
}

func TestParseTextLastCommanderWins(t *testing.T) {
	text := "Commander\n1 Atraxa, Praetors' Voice\n1 Muldrotha, the Gravetide"

	d := ParseText(text)

	require.NotNil(t, d.Commander)
	require.Equal(t, "Muldrotha, the Gravetide", d.Commander.Name)
	require.Empty(t, d.Mainboard)
}

func TestParseTextKeepsDuplicateEntries(t *testing.T) {
	d := ParseText("1 Sol Ring\n1 Sol Ring")

	require.Len(t, d.Mainboard, 2)
}

func TestParseTextIgnoresBlankLines(t *testing.T) {
	d := ParseText("\n\n1 Sol Ring\n\n\n1 Counterspell\n")

	require.Len(t, d.Mainboard, 2)
}

func TestParseTextEmptyInput(t *testing.T) {
	d := ParseText("")

	require.Nil(t, d.Commander)
	require.Empty(t, d.Mainboard)
	require.Empty(t, d.Sideboard)
}
