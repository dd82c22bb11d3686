package render

import (
	"crypto/md5"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/tarotpick/internal/card"
)

// ErrNoArt is returned when an art deck has nothing to show for a card
var ErrNoArt = errors.New("no card art")

// Art renders card images from an art deck as half-block ANSI art
type Art struct {
	DeckPath string
	CacheDir string // Generated art is cached here; empty disables caching
	Width    int    // Columns, default 40
	Height   int    // Rows, default 32
}

// Priority order: scalable, h2400, h1200, h750, any other directories with images
var imageDirs = []string{"scalable", "h2400", "h1200", "h750"}

// Only formats with a registered decoder
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

func (a *Art) size() (int, int) {
	w, h := a.Width, a.Height
	if w <= 0 {
		w = 40
	}
	if h <= 0 {
		h = 32
	}
	return w, h
}

// Render returns the ANSI art of a drawn card, turned 180 degrees when the
// card is reversed
func (a *Art) Render(c card.DrawnCard) (string, error) {
	if c.Image == "" {
		return "", fmt.Errorf("%w: %s has no image path", ErrNoArt, c.ID)
	}
	parts := strings.Split(c.Image, "/")

	// Pre-rendered art wins over conversion
	for _, dir := range []string{"ansi32", "ansi256"} {
		path := filepath.Join(append([]string{a.DeckPath, dir}, parts...)...) + ".ansi"
		if _, err := os.Stat(path); err == nil {
			art, err := loadAnsiArt(path)
			if err != nil {
				return "", err
			}
			if c.Reversed {
				art = rotateAnsi(art)
			}
			return art, nil
		}
	}

	imagePath, err := a.findCardImage(parts)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoArt, c.ID)
	}

	width, height := a.size()
	cachePath := ""
	if a.CacheDir != "" {
		if err := os.MkdirAll(a.CacheDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
		}
		key := fmt.Sprintf("%s|%s|%dx%d", imagePath, c.Orientation(), width, height)
		cachePath = filepath.Join(a.CacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
		if _, err := os.Stat(cachePath); err == nil {
			return loadAnsiArt(cachePath)
		}
	}

	img, err := decodeImage(imagePath)
	if err != nil {
		return "", err
	}
	if c.Reversed {
		img = rotate180(img)
	}
	art := imageToAnsi(img, width, height)

	if cachePath != "" {
		if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
			return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
		}
	}
	return art, nil
}

// findCardImage searches for an image file for the given card in various directories
func (a *Art) findCardImage(parts []string) (string, error) {
	dirs := slices.Clone(imageDirs)

	// Then any other directory in the deck
	entries, err := os.ReadDir(a.DeckPath)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || slices.Contains(dirs, name) {
			continue
		}
		switch name {
		case "ansi32", "ansi256", "card_backs", "names":
			continue
		}
		dirs = append(dirs, name)
	}

	for _, dir := range dirs {
		base := filepath.Join(append([]string{a.DeckPath, dir}, parts...)...)
		for _, ext := range imageExtensions {
			if _, err := os.Stat(base + ext); err == nil {
				return base + ext, nil
			}
		}
	}

	return "", fmt.Errorf("no image found for card")
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// rotate180 turns an image upside down
func rotate180(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.X-1-x, b.Max.Y-1-y, img.At(x, y))
		}
	}
	return out
}

// imageToAnsi converts an image to ANSI art. Each cell is an upper half
// block: top pixels as foreground, bottom pixels as background.
func imageToAnsi(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))
			buffer.WriteString(ansiCell(fg, bg))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	x += bounds.Min.X
	y += bounds.Min.Y
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // Black for out-of-bounds
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// colorfulToColor converts a colorful.Color to a standard color.Color
func colorfulToColor(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func ansiCell(fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
}

var ansiCellPattern = regexp.MustCompile(`\x1b\[38;2;(\d+);(\d+);(\d+)m\x1b\[48;2;(\d+);(\d+);(\d+)m▀\x1b\[0m`)

// rotateAnsi turns half-block art 180 degrees: rows and cells are reversed
// and each cell swaps its top and bottom color. Art in any other format
// only has its rows reversed.
func rotateAnsi(art string) string {
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		target := len(lines) - 1 - i
		cells := ansiCellPattern.FindAllStringSubmatch(line, -1)
		if len(cells) == 0 || len(stripAnsi(line)) != len(cells)*len("▀") {
			out[target] = line
			continue
		}
		var b strings.Builder
		for j := len(cells) - 1; j >= 0; j-- {
			c := cells[j]
			b.WriteString(ansiCell(rgb(c[4], c[5], c[6]), rgb(c[1], c[2], c[3])))
		}
		out[target] = b.String()
	}
	return strings.Join(out, "\n") + "\n"
}

func rgb(r, g, b string) color.RGBA {
	parse := func(s string) uint8 {
		v, _ := strconv.Atoi(s)
		return uint8(v)
	}
	return color.RGBA{R: parse(r), G: parse(g), B: parse(b), A: 255}
}

// loadAnsiArt loads the ANSI art from a file
func loadAnsiArt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
