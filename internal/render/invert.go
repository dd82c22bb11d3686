package render

import "strings"

// upsideDown maps a character to the one that looks like it turned 180 degrees
var upsideDown = map[rune]rune{
	'a': 'ɐ', 'b': 'q', 'c': 'ɔ', 'd': 'p', 'e': 'ǝ', 'f': 'ɟ', 'g': 'ƃ', 'h': 'ɥ',
	'i': 'ᴉ', 'j': 'ɾ', 'k': 'ʞ', 'm': 'ɯ', 'n': 'u', 'p': 'd', 'q': 'b', 'r': 'ɹ',
	't': 'ʇ', 'u': 'n', 'v': 'ʌ', 'w': 'ʍ', 'y': 'ʎ',
	'A': '∀', 'C': 'Ɔ', 'E': 'Ǝ', 'F': 'Ⅎ', 'G': '⅁', 'J': 'ſ', 'L': '˥', 'M': 'W',
	'P': 'Ԁ', 'R': 'ᴚ', 'T': '⊥', 'U': '∩', 'V': 'Λ', 'W': 'M', 'Y': '⅄',
	'1': 'Ɩ', '6': '9', '9': '6', '.': '˙', ',': '\'', '\'': ',', '?': '¿', '!': '¡',
	'(': ')', ')': '(', '[': ']', ']': '[', '<': '>', '>': '<', '_': '‾',
}

// Invert turns lines of text 180 degrees: line order and character order
// are reversed and each character is replaced by its upside-down form.
func Invert(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[len(lines)-1-i] = invertLine(line)
	}
	return out
}

func invertLine(s string) string {
	clusters := splitClusters(s)
	var b strings.Builder
	for i := len(clusters) - 1; i >= 0; i-- {
		c := clusters[i]
		if r := []rune(c); len(r) == 1 {
			if flipped, ok := upsideDown[r[0]]; ok {
				b.WriteRune(flipped)
				continue
			}
		}
		b.WriteString(c)
	}
	return b.String()
}

// splitClusters splits s into user-perceived characters closely enough for
// emoji glyphs: variation selectors and zero-width joiners stay attached to
// the rune before them.
func splitClusters(s string) []string {
	var clusters []string
	var current []rune
	joined := false
	for _, r := range s {
		attach := r == '\uFE0F' || r == '\u200D' || joined
		if len(current) > 0 && !attach {
			clusters = append(clusters, string(current))
			current = current[:0]
		}
		current = append(current, r)
		joined = r == '\u200D'
	}
	if len(current) > 0 {
		clusters = append(clusters, string(current))
	}
	return clusters
}
