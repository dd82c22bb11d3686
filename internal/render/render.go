// Package render draws readings and cards on a terminal. Free mode shows a
// glyph face per card; premium mode shows the card artwork. Reversed cards
// are drawn turned 180 degrees in both modes.
package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/tarotpick/internal/card"
	"github.com/arcanaland/tarotpick/internal/reading"
)

// Renderer writes readings to Out
type Renderer struct {
	Out    io.Writer
	Art    *Art // nil when no art deck is available
	Width  int  // Terminal width; 0 detects it from Out
	Logger *slog.Logger
}

func New(out io.Writer, art *Art, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{Out: out, Art: art, Logger: logger}
}

// Reading displays a whole reading, one card after another
func (r *Renderer) Reading(rd reading.Reading, premium bool) error {
	var b strings.Builder

	b.WriteString("\n")
	if rd.HasQuestion() {
		b.WriteString(colorize.YellowString("💭 %s", rd.Question) + "\n")
	}
	b.WriteString(colorize.HiBlackString("🕐 %s · %d card(s)", rd.Timestamp(), len(rd.Cards)) + "\n")

	for _, dc := range rd.Cards {
		b.WriteString("\n")
		b.WriteString(r.layout(r.Face(dc, premium), r.infoLines(dc, "")))
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.Out, b.String())
	return err
}

// Card displays a single upright card with its deck name
func (r *Renderer) Card(c card.Card, deckName string, premium bool) error {
	dc := card.DrawnCard{Card: c}
	out := "\n" + r.layout(r.Face(dc, premium), r.infoLines(dc, deckName)) + "\n"
	_, err := io.WriteString(r.Out, out)
	return err
}

// Face returns the lines drawn to the left of a card's details: artwork in
// premium mode when available, the glyph face otherwise
func (r *Renderer) Face(dc card.DrawnCard, premium bool) []string {
	if premium && r.Art != nil {
		art, err := r.Art.Render(dc)
		if err == nil {
			return strings.Split(strings.TrimSuffix(art, "\n"), "\n")
		}
		if errors.Is(err, ErrNoArt) {
			r.Logger.Debug("no artwork, using glyph", "card", dc.ID)
		} else {
			r.Logger.Warn("rendering artwork failed, using glyph", "card", dc.ID, "error", err)
		}
	}
	return GlyphFace(dc)
}

// GlyphFace is the free-mode card face: rank above the card's glyph,
// inverted when the card is reversed
func GlyphFace(dc card.DrawnCard) []string {
	face := []string{dc.Rank, Glyph(dc.Card)}
	if dc.Reversed {
		return Invert(face)
	}
	return face
}

func (r *Renderer) infoLines(dc card.DrawnCard, deckName string) []string {
	var lines []string

	title := colorize.HiWhiteString("%s", dc.Name)
	if dc.Position > 0 {
		title = colorize.CyanString("%d. ", dc.Position) + title
	}
	lines = append(lines, title)

	if deckName != "" {
		lines = append(lines, colorize.CyanString("Deck: ")+colorize.HiWhiteString("%s", deckName))
		lines = append(lines, colorize.CyanString("ID:   ")+colorize.HiWhiteString("%s", dc.ID))
	}

	if dc.IsMinor() {
		lines = append(lines, colorize.CyanString("Type: ")+colorize.HiWhiteString("Minor Arcana"))
		lines = append(lines, colorize.CyanString("Suit: ")+
			colorize.HiWhiteString("%s · %s", dc.Suit, SuitSymbol(dc.Suit)))
	} else {
		lines = append(lines, colorize.CyanString("Type: ")+colorize.HiWhiteString("Major Arcana"))
	}
	lines = append(lines, colorize.CyanString("Rank: ")+colorize.HiWhiteString("%s", dc.Rank))

	if dc.Position > 0 {
		orientation := colorize.GreenString("upright")
		if dc.Reversed {
			orientation = colorize.RedString("reversed")
		}
		lines = append(lines, colorize.CyanString("Orientation: ")+orientation)
	}

	lines = append(lines, "", colorize.CyanString("Meaning:"))
	lines = append(lines, wrapText(dc.Meaning(), r.infoWidth())...)

	return lines
}

// Face on the left, details on the right
const faceSpacing = 4

func (r *Renderer) layout(face, info []string) string {
	faceWidth := 0
	for _, line := range face {
		faceWidth = max(faceWidth, lipgloss.Width(line))
	}
	infoStartCol := faceWidth + faceSpacing

	var b strings.Builder
	for i := range max(len(face), len(info)) {
		// 2-character wide left padding
		b.WriteString("  ")
		if i < len(face) {
			b.WriteString(face[i])
			b.WriteString(strings.Repeat(" ", infoStartCol-lipgloss.Width(face[i])))
		} else {
			b.WriteString(strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			b.WriteString(info[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// width returns the terminal width, 80 when it cannot be determined
func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	if f, ok := r.Out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// infoWidth leaves room for the widest face: artwork plus spacing and margin
func (r *Renderer) infoWidth() int {
	faceWidth := 8
	if r.Art != nil {
		faceWidth, _ = r.Art.size()
	}
	return max(r.width()-faceWidth-faceSpacing-4, 20)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	currentLine := ""
	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= width:
			currentLine += " " + word
		default:
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}
	return result
}

// Summary is a one-line description of a drawn card, used in history lists
func Summary(dc card.DrawnCard) string {
	s := fmt.Sprintf("%s %s", Glyph(dc.Card), dc.Name)
	if dc.Reversed {
		s += " (reversed)"
	}
	return s
}
