package render

import (
	"strings"

	"github.com/arcanaland/tarotpick/internal/card"
)

// majorGlyphs is keyed by canonical ID so localized names keep their glyph
var majorGlyphs = map[string]string{
	"major_arcana.00": "🌟🎒🐕",
	"major_arcana.01": "🎩⚡🔮",
	"major_arcana.02": "🌙👑📚",
	"major_arcana.03": "👑🌺💎",
	"major_arcana.04": "👑🏛️⚔️",
	"major_arcana.05": "⛪🗝️📿",
	"major_arcana.06": "💕👫🌈",
	"major_arcana.07": "🏹🐎⚡",
	"major_arcana.08": "🦁💪🌹",
	"major_arcana.09": "🔦🏔️⭐",
	"major_arcana.10": "🎡⚡🔄",
	"major_arcana.11": "⚖️🗡️👁️",
	"major_arcana.12": "🙃🌳💧",
	"major_arcana.13": "💀🌹🦋",
	"major_arcana.14": "👼💧🌈",
	"major_arcana.15": "😈🔗🔥",
	"major_arcana.16": "🗼⚡💥",
	"major_arcana.17": "⭐💧🕊️",
	"major_arcana.18": "🌙🐺🦞",
	"major_arcana.19": "☀️🌻👶",
	"major_arcana.20": "📯👼☁️",
	"major_arcana.21": "🌍💃🦅",
}

var rankOrder = []string{
	"ace", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "page", "knight", "queen", "king",
}

// minorGlyphs lists one glyph per rank, in rankOrder
var minorGlyphs = map[card.Suit][]string{
	card.Cups:      {"💧", "💝", "🎉", "😔", "🏆", "👶", "🌈", "🎭", "😌", "🎪", "⚔️", "🏇", "👸", "👑"},
	card.Wands:     {"🔥", "🏠", "🚢", "🎊", "⚔️", "🏆", "🛡️", "⚡", "🎯", "📦", "🧙", "🏇", "👸", "👑"},
	card.Swords:    {"⚔️", "🤝", "💔", "😴", "🏃", "🚤", "⚔️", "🔒", "😰", "🗡️", "🧙", "🏇", "👸", "👑"},
	card.Pentacles: {"💰", "🤹", "👷", "💵", "⛪", "🤝", "🌱", "🔨", "🏡", "💎", "🧙", "🏇", "👸", "👑"},
}

// Glyph returns the decorative symbol shown for c when artwork is not used
func Glyph(c card.Card) string {
	if g, ok := majorGlyphs[c.ID]; ok {
		return g
	}
	if c.IsMinor() {
		if glyphs, ok := minorGlyphs[c.Suit]; ok {
			parts := strings.Split(c.ID, ".")
			rank := parts[len(parts)-1]
			for i, r := range rankOrder {
				if r == rank {
					return glyphs[i]
				}
			}
		}
		return SuitSymbol(c.Suit)
	}
	return "🃏"
}

// SuitSymbol returns a symbol for a suit
func SuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Cups:
		return "🏆"
	case card.Wands:
		return "🪄"
	case card.Swords:
		return "🗡️"
	case card.Pentacles:
		return "🪙"
	default:
		return "•"
	}
}
