package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/arcanaland/tarotpick/internal/config"
	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/entitlement"
	"github.com/arcanaland/tarotpick/internal/render"
	"github.com/arcanaland/tarotpick/internal/session"
)

// cardSet is the deck a command works with, plus the art deck backing it
// when one is installed
type cardSet struct {
	deck *deck.Deck
	art  *render.Art
	name string // Art deck byline, empty without an art deck
}

// loadCards builds the deck from the configured shape. When the configured
// art deck exists its localized names and artwork are used; otherwise the
// deck is glyph-only.
func loadCards() (*cardSet, error) {
	shape, err := deck.ParseShape(cfg.Shape)
	if err != nil {
		return nil, err
	}

	deckPath, err := config.GetDeckPath(cfg.DefaultDeck)
	if err != nil {
		logger.Debug("no art deck, using glyphs", "deck", cfg.DefaultDeck, "error", err)
		return plainCards(shape)
	}

	artDeck, err := deck.LoadArtDeck(deckPath, cfg.Language)
	if err != nil {
		logger.Warn("cannot load art deck, using glyphs", "path", deckPath, "error", err)
		return plainCards(shape)
	}

	d, err := deck.New(shape, deck.WithArt(), deck.WithNames(artDeck.Names))
	if err != nil {
		return nil, fmt.Errorf("error loading deck %s: %w", artDeck.Name, err)
	}
	logger.Debug("deck loaded", "shape", shape, "art_deck", artDeck.ID, "path", deckPath)

	return &cardSet{
		deck: d,
		art: &render.Art{
			DeckPath: deckPath,
			CacheDir: filepath.Join(config.GetCacheDir(), "ansi_cache"),
		},
		name: artDeck.Byline(),
	}, nil
}

func plainCards(shape deck.Shape) (*cardSet, error) {
	d, err := deck.New(shape)
	if err != nil {
		return nil, err
	}
	return &cardSet{deck: d}, nil
}

// newSession wires a dealer and the premium entitlement around the deck.
// A nil seed draws from a randomly seeded source.
func newSession(cards *cardSet, seed *uint64, premium bool) *session.Session {
	rng := deck.NewRNG()
	if seed != nil {
		rng = deck.NewSeededRNG(*seed)
	}
	return session.New(deck.NewDealer(cards.deck, rng), entitlement.Static(premium || cfg.Premium), logger)
}
