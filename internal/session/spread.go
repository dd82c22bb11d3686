package session

import (
	"fmt"

	"github.com/arcanaland/tarotpick/internal/deck"
)

// Spread sizes offered by the front ends
const (
	SingleCard = 1
	ThreeCards = 3
)

// ValidSpread rejects spread sizes the front ends do not offer. The dealer
// itself accepts any count up to the deck size.
func ValidSpread(count int) error {
	if count != SingleCard && count != ThreeCards {
		return fmt.Errorf("%w: spread of %d cards, expected %d or %d",
			deck.ErrInvalidArgument, count, SingleCard, ThreeCards)
	}
	return nil
}
