package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/tarotpick/internal/card"
)

// NameConfig is a localized name file (names/<lang>.toml) of an art deck
//
//	[major_arcana]
//	"00" = "LE MAT"
//
//	[minor_arcana.cups]
//	ace = "AS DE COUPE"
type NameConfig struct {
	MajorArcana map[string]string            `toml:"major_arcana"`
	MinorArcana map[string]map[string]string `toml:"minor_arcana"`

	// Path is the file the names were read from
	Path string `toml:"-"`
}

// lookup returns the localized name of c, or "" when the file has none
func (n *NameConfig) lookup(c card.Card) string {
	parts := splitCardID(c.ID)
	switch {
	case c.Arcana == card.Major && len(parts) == 2:
		return n.MajorArcana[parts[1]]
	case c.Arcana == card.Minor && len(parts) == 3:
		if ranks, ok := n.MinorArcana[parts[1]]; ok {
			return ranks[parts[2]]
		}
	}
	return ""
}

// LoadNames loads card names from the names directory of an art deck.
// It prefers names/<lang>.toml, then names/en.toml, then the first TOML
// file found. A deck without a names directory yields nil and no error.
func LoadNames(deckPath, lang string) (*NameConfig, error) {
	namesDir := filepath.Join(deckPath, "names")
	if _, err := os.Stat(namesDir); os.IsNotExist(err) {
		return nil, nil
	}

	var candidates []string
	if lang != "" {
		candidates = append(candidates, filepath.Join(namesDir, lang+".toml"))
	}
	candidates = append(candidates, filepath.Join(namesDir, "en.toml"))

	namesPath := ""
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			namesPath = path
			break
		}
	}

	if namesPath == "" {
		// No preferred language, use the first language file found
		entries, err := os.ReadDir(namesDir)
		if err != nil {
			return nil, fmt.Errorf("error reading names directory: %w", err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && filepath.Ext(entry.Name()) == ".toml" {
				namesPath = filepath.Join(namesDir, entry.Name())
				break
			}
		}
	}

	if namesPath == "" {
		return nil, nil
	}

	var names NameConfig
	if _, err := toml.DecodeFile(namesPath, &names); err != nil {
		return nil, fmt.Errorf("error parsing language file %s: %w", namesPath, err)
	}
	names.Path = namesPath

	return &names, nil
}
