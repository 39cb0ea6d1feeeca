package cards

import (
	"strconv"
	"strings"
)

// ImageSize selects one of the card image renditions Scryfall serves.
type ImageSize string

const (
	ImageSmall  ImageSize = "small"
	ImageNormal ImageSize = "normal"
	ImageLarge  ImageSize = "large"
)

// FormatCommander is the only format this service reasons about.
const FormatCommander = "commander"

// ImageURIs carries the per-size image URL set of a card or face.
type ImageURIs struct {
	Small      string `json:"small"`
	Normal     string `json:"normal"`
	Large      string `json:"large"`
	PNG        string `json:"png,omitempty"`
	ArtCrop    string `json:"art_crop,omitempty"`
	BorderCrop string `json:"border_crop,omitempty"`
}

// Face is one side of a multi-faced card.
type Face struct {
	Name       string     `json:"name"`
	ManaCost   string     `json:"mana_cost,omitempty"`
	TypeLine   string     `json:"type_line"`
	OracleText string     `json:"oracle_text,omitempty"`
	ImageURIs  *ImageURIs `json:"image_uris,omitempty"`
}

// Prices holds the USD price strings Scryfall reports. Values are nullable
// on the wire, so absence and "null" both decode to empty strings.
type Prices struct {
	USD     string `json:"usd,omitempty"`
	USDFoil string `json:"usd_foil,omitempty"`
}

// Card mirrors the Scryfall card record. It is read-only from the domain's
// perspective: every accessor below is a pure function over the decoded
// payload.
type Card struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ManaCost        string            `json:"mana_cost,omitempty"`
	CMC             float64           `json:"cmc"`
	TypeLine        string            `json:"type_line"`
	OracleText      string            `json:"oracle_text,omitempty"`
	Colors          []string          `json:"colors,omitempty"`
	ColorIdentity   []string          `json:"color_identity"`
	Keywords        []string          `json:"keywords"`
	Legalities      map[string]string `json:"legalities"`
	Set             string            `json:"set"`
	SetName         string            `json:"set_name"`
	CollectorNumber string            `json:"collector_number"`
	ImageURIs       *ImageURIs        `json:"image_uris,omitempty"`
	Faces           []Face            `json:"card_faces,omitempty"`
	Prices          Prices            `json:"prices"`
	EDHRecRank      int               `json:"edhrec_rank,omitempty"`
	ScryfallURI     string            `json:"scryfall_uri,omitempty"`
}

// ImageURL returns the requested rendition, falling back to the first face
// for multi-faced cards and to the empty string when no image exists.
func (c *Card) ImageURL(size ImageSize) string {
	if c.ImageURIs != nil {
		return c.ImageURIs.bySize(size)
	}
	if len(c.Faces) > 0 && c.Faces[0].ImageURIs != nil {
		return c.Faces[0].ImageURIs.bySize(size)
	}
	return ""
}

func (u *ImageURIs) bySize(size ImageSize) string {
	switch size {
	case ImageSmall:
		return u.Small
	case ImageLarge:
		return u.Large
	default:
		return u.Normal
	}
}

// FaceSeparator joins the oracle texts of a multi-faced card.
const FaceSeparator = "\n\n// "

// FullOracleText returns the card's rules text, joining face texts for
// multi-faced cards.
func (c *Card) FullOracleText() string {
	if c.OracleText != "" {
		return c.OracleText
	}
	if len(c.Faces) > 0 {
		texts := make([]string, len(c.Faces))
		for i, face := range c.Faces {
			texts[i] = face.OracleText
		}
		return strings.Join(texts, FaceSeparator)
	}
	return ""
}

// PriceUSD parses the card's USD price, preferring the non-foil printing.
// The second return is false when no price is listed.
func (c *Card) PriceUSD() (float64, bool) {
	for _, raw := range []string{c.Prices.USD, c.Prices.USDFoil} {
		if raw == "" {
			continue
		}
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			return price, true
		}
	}
	return 0, false
}

// IsLegalIn reports whether the card is legal in the given format.
func (c *Card) IsLegalIn(format string) bool {
	return c.Legalities[format] == "legal"
}

// IsValidCommanderCandidate reports whether the card can lead a Commander
// deck: it must be commander-legal and either a legendary creature or carry
// the "can be your commander" ability.
func (c *Card) IsValidCommanderCandidate() bool {
	typeLine := strings.ToLower(c.TypeLine)
	oracle := strings.ToLower(c.FullOracleText())

	isLegendaryCreature := strings.Contains(typeLine, "legendary") && strings.Contains(typeLine, "creature")
	canBeCommander := strings.Contains(oracle, "can be your commander")

	return (isLegendaryCreature || canBeCommander) && c.IsLegalIn(FormatCommander)
}

var colorNames = map[string]string{
	"W": "White",
	"U": "Blue",
	"B": "Black",
	"R": "Red",
	"G": "Green",
}

// FormatColorIdentity renders a color identity as the compact WUBRG string.
func FormatColorIdentity(colors []string) string {
	if len(colors) == 0 {
		return "Colorless"
	}
	return strings.Join(colors, "")
}

// ColorNames expands color symbols to their display names, passing unknown
// symbols through unchanged.
func ColorNames(colors []string) []string {
	names := make([]string, len(colors))
	for i, c := range colors {
		if name, ok := colorNames[c]; ok {
			names[i] = name
			continue
		}
		names[i] = c
	}
	return names
}
