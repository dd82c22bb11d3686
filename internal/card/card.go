package card

// Arcana is the card family
type Arcana string

const (
	Major Arcana = "major_arcana"
	Minor Arcana = "minor_arcana"
)

// Suit is a minor arcana suit
type Suit string

const (
	Cups      Suit = "cups"
	Wands     Suit = "wands"
	Swords    Suit = "swords"
	Pentacles Suit = "pentacles"
)

// Suits lists the minor arcana suits in deck order
var Suits = []Suit{Cups, Wands, Swords, Pentacles}

// Card represents a tarot card
type Card struct {
	ID              string // Canonical ID (e.g., major_arcana.00, minor_arcana.cups.ace)
	Name            string // Display name, unique within a deck (e.g., THE FOOL)
	Rank            string // Roman numeral for major arcana, ACE..KING for minor arcana
	Arcana          Arcana
	Suit            Suit // Empty for major arcana
	UprightMeaning  string
	ReversedMeaning string
	Image           string // Relative artwork path without extension, empty when the deck has no art
}

// IsMinor reports whether the card belongs to a suit
func (c Card) IsMinor() bool {
	return c.Arcana == Minor
}

// DrawnCard is a card as it came out of a single draw. It carries its own
// copy of the card so reversing it never touches the deck.
type DrawnCard struct {
	Card
	Position int  // 1-based position in the draw
	Reversed bool // Orientation for this draw only
}

// Meaning returns the meaning that applies to the card's orientation
func (d DrawnCard) Meaning() string {
	if d.Reversed {
		return d.ReversedMeaning
	}
	return d.UprightMeaning
}

// Orientation returns "reversed" or "upright"
func (d DrawnCard) Orientation() string {
	if d.Reversed {
		return "reversed"
	}
	return "upright"
}
