// Package validator checks an artwork deck directory before it is used for
// premium rendering.
package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/tarotpick/internal/deck"
)

// SupportedSchemaVersion is the only deck.toml schema this build reads
const SupportedSchemaVersion = "1.0"

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the deck has no errors; warnings are allowed
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	DeckPath string
	Shape    deck.Shape
	Results  ValidationResults
}

func NewValidator(deckPath string, shape deck.Shape) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Shape:    shape,
		Results:  ValidationResults{},
	}
}

// Validate checks the deck at path against the cards of shape. The error is
// non-nil only when the deck cannot be read at all.
func Validate(path string, shape deck.Shape) (ValidationResults, error) {
	return NewValidator(path, shape).Validate()
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateDeckToml(); err != nil {
		return v.Results, err
	}

	d, err := deck.New(v.Shape, deck.WithArt())
	if err != nil {
		return v.Results, err
	}

	v.validateArt(d)
	v.validateNames()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckToml() error {
	config, err := deck.LoadDeckConfig(v.DeckPath)
	if err != nil {
		return err
	}

	if config.Deck.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	}
	if config.Deck.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}
	if config.Deck.Version == "" {
		v.errorf("deck.version is required in deck.toml")
	}

	if config.Deck.SchemaVersion == "" {
		v.errorf("deck.schema_version is required in deck.toml")
	} else if config.Deck.SchemaVersion != SupportedSchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", config.Deck.SchemaVersion, SupportedSchemaVersion)
	}
	return nil
}

// artDirs returns every directory that may hold card art: scalable/, the
// raster h*/ directories and the pre-rendered ansi*/ directories
func (v *Validator) artDirs() (images, ansi []string) {
	entries, err := os.ReadDir(v.DeckPath)
	if err != nil {
		return nil, nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case name == "scalable":
			images = append(images, name)
		case strings.HasPrefix(name, "ansi"):
			ansi = append(ansi, name)
		case strings.HasPrefix(name, "h"):
			if _, err := fmt.Sscanf(name, "h%d", new(int)); err == nil {
				images = append(images, name)
			}
		}
	}
	return images, ansi
}

// validateArt warns about cards without artwork. Missing art is not an
// error because those cards fall back to their glyph.
func (v *Validator) validateArt(d *deck.Deck) {
	images, ansi := v.artDirs()
	if len(images) == 0 && len(ansi) == 0 {
		v.warnf("no art directories found (expecting scalable/, h*/ or ansi*/ directories)")
		return
	}

	var missing []string
	for _, c := range d.Cards() {
		if !v.hasArt(c.Image, images, ansi) {
			missing = append(missing, c.ID)
		}
	}

	if len(missing) > 0 {
		v.warnf("missing art for %d of %d cards: %s", len(missing), d.Size(), strings.Join(missing, ", "))
	}
}

func (v *Validator) hasArt(image string, images, ansi []string) bool {
	rel := filepath.FromSlash(image)
	for _, dir := range ansi {
		if exists(filepath.Join(v.DeckPath, dir, rel) + ".ansi") {
			return true
		}
	}
	for _, dir := range images {
		for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif"} {
			if exists(filepath.Join(v.DeckPath, dir, rel) + ext) {
				return true
			}
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// validateNames checks that every localization file parses and keeps card
// names unique
func (v *Validator) validateNames() {
	namesDir := filepath.Join(v.DeckPath, "names")
	entries, err := os.ReadDir(namesDir)
	if os.IsNotExist(err) {
		v.warnf("names directory not found")
		return
	}
	if err != nil {
		v.errorf("error reading names directory: %v", err)
		return
	}

	found := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		found = true

		names := &deck.NameConfig{Path: filepath.Join(namesDir, entry.Name())}
		if _, err := toml.DecodeFile(names.Path, names); err != nil {
			v.errorf("error parsing language file %s: %v", entry.Name(), err)
			continue
		}

		if names.MajorArcana == nil {
			v.warnf("missing [major_arcana] section in %s", entry.Name())
		}
		if v.Shape == deck.ShapeFull && names.MinorArcana == nil {
			v.warnf("missing [minor_arcana] section in %s", entry.Name())
		}

		if _, err := deck.New(v.Shape, deck.WithNames(names)); err != nil {
			v.errorf("%s: %v", entry.Name(), err)
		}
	}

	if !found {
		v.errorf("no language files found in names directory")
	}
}
