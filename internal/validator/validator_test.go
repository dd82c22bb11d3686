package validator_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/validator"
)

const validDeckToml = `
[deck]
id = "test-deck"
name = "Test Deck"
version = "1.0.0"
schema_version = "1.0"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// majorDeck writes a deck with pre-rendered art for every major arcana card
func majorDeck(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "deck.toml"), validDeckToml)
	for i := 0; i < 22; i++ {
		writeFile(t, filepath.Join(dir, "ansi32", "major_arcana", fmt.Sprintf("%02d.ansi", i)), "art\n")
	}
	writeFile(t, filepath.Join(dir, "names", "en.toml"), `
[major_arcana]
"00" = "THE FOOL"
`)
	return dir
}

func contains(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestValidate_CompleteMajorDeck(t *testing.T) {
	results, err := validator.Validate(majorDeck(t), deck.ShapeMajor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results.OK() || len(results.Warnings) != 0 {
		t.Errorf("expected a clean deck, got errors=%q warnings=%q", results.Errors, results.Warnings)
	}
}

func TestValidate_MissingArtIsWarning(t *testing.T) {
	results, err := validator.Validate(majorDeck(t), deck.ShapeFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results.OK() {
		t.Errorf("expected no errors, got %q", results.Errors)
	}
	if !contains(results.Warnings, "missing art for 56 of 78 cards") {
		t.Errorf("expected missing minor arcana warning, got %q", results.Warnings)
	}
	if !contains(results.Warnings, "missing [minor_arcana] section") {
		t.Errorf("expected missing names section warning, got %q", results.Warnings)
	}
}

func TestValidate_ImageArt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "deck.toml"), validDeckToml)
	for i := 0; i < 21; i++ {
		writeFile(t, filepath.Join(dir, "h750", "major_arcana", fmt.Sprintf("%02d.png", i)), "")
	}

	results, err := validator.Validate(dir, deck.ShapeMajor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(results.Warnings, "missing art for 1 of 22 cards: major_arcana.21") {
		t.Errorf("expected one missing card, got %q", results.Warnings)
	}
	if !contains(results.Warnings, "names directory not found") {
		t.Errorf("expected names warning, got %q", results.Warnings)
	}
}

func TestValidate_DeckToml(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing id", `[deck]
name = "x"
version = "1"
schema_version = "1.0"`, "deck.id is required"},
		{"missing schema", `[deck]
id = "x"
name = "x"
version = "1"`, "deck.schema_version is required"},
		{"unsupported schema", `[deck]
id = "x"
name = "x"
version = "1"
schema_version = "2.0"`, "unsupported schema_version: 2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "deck.toml"), tt.content)
			results, err := validator.Validate(dir, deck.ShapeMajor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !contains(results.Errors, tt.want) {
				t.Errorf("expected error %q, got %q", tt.want, results.Errors)
			}
		})
	}
}

func TestValidate_NoDeckToml(t *testing.T) {
	if _, err := validator.Validate(t.TempDir(), deck.ShapeFull); err == nil {
		t.Error("expected an error for a directory without deck.toml")
	}
}

func TestValidate_Names(t *testing.T) {
	dir := majorDeck(t)
	writeFile(t, filepath.Join(dir, "names", "fr.toml"), `
[major_arcana]
"00" = "LE MAT"
"01" = "LE MAT"
`)
	writeFile(t, filepath.Join(dir, "names", "de.toml"), `[major_arcana`)

	results, err := validator.Validate(dir, deck.ShapeMajor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(results.Errors, "fr.toml") {
		t.Errorf("expected duplicate name error, got %q", results.Errors)
	}
	if !contains(results.Errors, "error parsing language file de.toml") {
		t.Errorf("expected parse error, got %q", results.Errors)
	}
}
