package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ArtDeck is an artwork deck from the deck library. It supplies images and
// localized names; the cards themselves always come from New.
type ArtDeck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	Names *NameConfig
}

// Byline is the deck's name followed by its version and author when known,
// e.g. "Rider-Waite-Smith v1.0.0 by Pamela Colman Smith".
func (d *ArtDeck) Byline() string {
	parts := []string{d.Name}
	if d.Version != "" {
		parts = append(parts, "v"+strings.TrimPrefix(d.Version, "v"))
	}
	if d.Author != "" {
		parts = append(parts, "by "+d.Author)
	}
	return strings.Join(parts, " ")
}

// DeckConfig mirrors deck.toml
type DeckConfig struct {
	Deck DeckSection `toml:"deck"`
}

type DeckSection struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	License       string   `toml:"license"`
	Description   string   `toml:"description"`
	Website       string   `toml:"website"`
	Tags          []string `toml:"tags"`
}

// LoadDeckConfig decodes deck.toml in deckPath
func LoadDeckConfig(deckPath string) (*DeckConfig, error) {
	deckTomlPath := filepath.Join(deckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", deckPath)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(deckTomlPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing deck.toml: %w", err)
	}
	return &config, nil
}

// LoadArtDeck loads an artwork deck from a directory
func LoadArtDeck(deckPath, lang string) (*ArtDeck, error) {
	config, err := LoadDeckConfig(deckPath)
	if err != nil {
		return nil, err
	}

	names, err := LoadNames(deckPath, lang)
	if err != nil {
		return nil, fmt.Errorf("error loading card names: %w", err)
	}

	return &ArtDeck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Version:     config.Deck.Version,
		Author:      config.Deck.Author,
		Description: config.Deck.Description,
		Path:        deckPath,
		Names:       names,
	}, nil
}
