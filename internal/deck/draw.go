package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/tarotpick/internal/card"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type pcgRNG struct {
	r *rand.Rand
}

func (p pcgRNG) Intn(n int) int { return p.r.IntN(n) }

// NewRNG returns a randomly seeded PCG source.
func NewRNG() RNG {
	return pcgRNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRNG returns a PCG source that produces the same draws for the
// same seed.
func NewSeededRNG(seed uint64) RNG {
	return pcgRNG{r: rand.New(rand.NewPCG(seed, seed))}
}

// Dealer draws cards from a deck using an injected RNG. It is not safe for
// concurrent use.
type Dealer struct {
	deck *Deck
	rng  RNG
}

func NewDealer(d *Deck, rng RNG) *Dealer {
	return &Dealer{deck: d, rng: rng}
}

// Deck returns the deck the dealer draws from
func (dl *Dealer) Deck() *Deck {
	return dl.deck
}

// Draw returns count distinct cards from a uniformly shuffled copy of the
// deck, each independently reversed with probability 1/2. Positions are
// 1-based. count must be in [1, deck size]; the RNG is not touched when it
// is not.
func (dl *Dealer) Draw(count int) ([]card.DrawnCard, error) {
	size := dl.deck.Size()
	if count < 1 || count > size {
		return nil, fmt.Errorf("%w: count %d outside [1, %d]", ErrInvalidArgument, count, size)
	}

	// Fisher-Yates over the whole deck so every permutation is equally likely.
	indices := make([]int, size)
	for i := range indices {
		indices[i] = i
	}
	for i := size - 1; i > 0; i-- {
		j := dl.rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	drawn := make([]card.DrawnCard, count)
	for i := range count {
		drawn[i] = card.DrawnCard{
			Card:     dl.deck.cards[indices[i]],
			Position: i + 1,
			Reversed: dl.rng.Intn(2) == 1,
		}
	}
	return drawn, nil
}
