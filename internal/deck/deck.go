package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/tarotpick/internal/card"
)

// Shape selects which cards make up the deck
type Shape int

const (
	// ShapeFull is the 78 card deck: 22 major arcana plus 4 suits of 14 ranks
	ShapeFull Shape = iota
	// ShapeMajor is the simplified 22 card deck
	ShapeMajor
)

// ParseShape converts a config value ("full" or "major") into a Shape
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full":
		return ShapeFull, nil
	case "major", "major_arcana":
		return ShapeMajor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

func (s Shape) String() string {
	if s == ShapeMajor {
		return "major"
	}
	return "full"
}

// Size returns the number of cards in a deck of this shape
func (s Shape) Size() int {
	if s == ShapeMajor {
		return len(majorArcana)
	}
	return len(majorArcana) + len(minorSuits)*len(minorRanks)
}

// Deck is the canonical, ordered list of cards. It is read-only after New.
type Deck struct {
	shape Shape
	cards []card.Card
	byID  map[string]int
}

// Option customizes deck construction
type Option func(*options)

type options struct {
	names *NameConfig
	art   bool
}

// WithNames overrides card names with a localized name file
func WithNames(names *NameConfig) Option {
	return func(o *options) { o.names = names }
}

// WithArt sets the artwork path of every card so a renderer can find its image
func WithArt() Option {
	return func(o *options) { o.art = true }
}

// New builds the deck for the given shape
func New(shape Shape, opts ...Option) (*Deck, error) {
	if shape != ShapeFull && shape != ShapeMajor {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, shape)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cards := make([]card.Card, 0, shape.Size())

	// Create cards for major arcana (00-21)
	for i, m := range majorArcana {
		cardNumber := fmt.Sprintf("%02d", i)
		cards = append(cards, card.Card{
			ID:              fmt.Sprintf("%s.%s", card.Major, cardNumber),
			Name:            m.name,
			Rank:            m.rank,
			Arcana:          card.Major,
			UprightMeaning:  m.upright,
			ReversedMeaning: m.reversed,
		})
	}

	// Create cards for minor arcana
	if shape == ShapeFull {
		for _, s := range minorSuits {
			for _, r := range minorRanks {
				cards = append(cards, card.Card{
					ID:              fmt.Sprintf("%s.%s.%s", card.Minor, s.suit, r.id),
					Name:            fmt.Sprintf("%s OF %s", r.label, s.label),
					Rank:            r.label,
					Arcana:          card.Minor,
					Suit:            s.suit,
					UprightMeaning:  fmt.Sprintf("%s in %s", r.keyword, s.realm),
					ReversedMeaning: fmt.Sprintf("%s held back: %s", r.keyword, s.reversed),
				})
			}
		}
	}

	for i := range cards {
		if o.names != nil {
			if name := o.names.lookup(cards[i]); name != "" {
				cards[i].Name = name
			}
		}
		if o.art {
			cards[i].Image = imagePath(cards[i].ID)
		}
	}

	d := &Deck{
		shape: shape,
		cards: cards,
		byID:  make(map[string]int, len(cards)),
	}

	seen := make(map[string]string, len(cards))
	for i, c := range cards {
		if other, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateName, c.Name, other, c.ID)
		}
		seen[c.Name] = c.ID
		d.byID[c.ID] = i
	}

	return d, nil
}

// Shape returns the shape the deck was built with
func (d *Deck) Shape() Shape {
	return d.shape
}

// Size returns the number of cards in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the cards in canonical order
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Card gets a card by its canonical ID
func (d *Deck) Card(cardID string) (card.Card, error) {
	parts := splitCardID(cardID)
	valid := (len(parts) == 2 && parts[0] == string(card.Major)) ||
		(len(parts) == 3 && parts[0] == string(card.Minor))
	if !valid {
		return card.Card{}, fmt.Errorf("%w: %s", ErrInvalidCardID, cardID)
	}

	i, ok := d.byID[cardID]
	if !ok {
		return card.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}
	return d.cards[i], nil
}

// splitCardID splits a canonical card ID into parts
func splitCardID(cardID string) []string {
	return strings.Split(cardID, ".")
}

// imagePath maps a canonical ID to its artwork path inside an art deck,
// e.g. minor_arcana.cups.ace -> minor_arcana/cups/ace
func imagePath(cardID string) string {
	return strings.Join(splitCardID(cardID), "/")
}
