package deck

import "github.com/arcanaland/tarotpick/internal/card"

type majorEntry struct {
	name     string
	rank     string
	upright  string
	reversed string
}

// majorArcana is indexed by card number (00-21)
var majorArcana = []majorEntry{
	{"THE FOOL", "0", "New beginnings, innocence, adventure", "Recklessness, foolhardy ventures"},
	{"THE MAGICIAN", "I", "Willpower, creativity, focus", "Vanity, manipulation, arrogance"},
	{"THE HIGH PRIESTESS", "II", "Intuition, potential, mystery", "Ignorance, denial of reality, hysteria"},
	{"THE EMPRESS", "III", "Abundance, motherhood, creation", "Dependence, overprotection, creative block"},
	{"THE EMPEROR", "IV", "Authority, stable leadership, order", "Tyranny, rigid abuse of power"},
	{"THE HIEROPHANT", "V", "Tradition, learning, spiritual guidance", "Dogmatism, resignation, spiritual ignorance"},
	{"THE LOVERS", "VI", "Love, harmony, choice", "Discord in relationships, clashing values, a wrong choice"},
	{"THE CHARIOT", "VII", "Will, victory, control", "Lack of self-control, loss of direction, chaos"},
	{"STRENGTH", "VIII", "Courage, patience, inner strength", "Weakness, lack of restraint, self-doubt"},
	{"THE HERMIT", "IX", "Wisdom, reflection, solitude", "Isolation, loneliness, excessive introspection"},
	{"WHEEL OF FORTUNE", "X", "Fate, change, cycles", "Bad luck, loss of control, setbacks"},
	{"JUSTICE", "XI", "Justice, balance, truth", "Imbalance, prejudice, distorted truth"},
	{"THE HANGED MAN", "XII", "Sacrifice, new perspective, waiting", "Needless sacrifice, delay, stagnation"},
	{"DEATH", "XIII", "Transformation, endings, rebirth", "Resistance, stagnation, refusal to change"},
	{"TEMPERANCE", "XIV", "Moderation, harmony, balance", "Imbalance, excess, discord"},
	{"THE DEVIL", "XV", "Temptation, bondage, desire", "Release, freedom, awakening"},
	{"THE TOWER", "XVI", "Upheaval, sudden change, liberation", "Gradual change, personal transformation, fear of change"},
	{"THE STAR", "XVII", "Hope, inspiration, healing", "Despair, lost purpose, pessimism"},
	{"THE MOON", "XVIII", "Illusion, anxiety, intuition", "Clarity, truth revealed, released fear"},
	{"THE SUN", "XIX", "Joy, success, vitality", "Low confidence, failure, gloom"},
	{"JUDGEMENT", "XX", "Awakening, rebirth, reckoning", "Self-doubt, regret, poor judgement"},
	{"THE WORLD", "XXI", "Completion, achievement, fulfilment", "Incompletion, delay, lack of closure"},
}

type suitEntry struct {
	suit     card.Suit
	label    string
	realm    string
	reversed string
}

// minorSuits follows the original deck order: cups, wands, swords, pentacles
var minorSuits = []suitEntry{
	{card.Cups, "CUPS", "the realm of emotion and love", "blocked feelings and emotional imbalance"},
	{card.Wands, "WANDS", "the realm of passion and creation", "scattered energy and frustrated drive"},
	{card.Swords, "SWORDS", "the realm of intellect and conflict", "confusion and inner turmoil"},
	{card.Pentacles, "PENTACLES", "the realm of material and reality", "material loss and misplaced priorities"},
}

type rankEntry struct {
	id      string
	label   string
	keyword string
}

var minorRanks = []rankEntry{
	{"ace", "ACE", "Beginnings"},
	{"two", "TWO", "Partnership"},
	{"three", "THREE", "Growth"},
	{"four", "FOUR", "Stability"},
	{"five", "FIVE", "Challenge"},
	{"six", "SIX", "Harmony"},
	{"seven", "SEVEN", "Assessment"},
	{"eight", "EIGHT", "Movement"},
	{"nine", "NINE", "Fulfilment"},
	{"ten", "TEN", "Completion"},
	{"page", "PAGE", "Curiosity"},
	{"knight", "KNIGHT", "Pursuit"},
	{"queen", "QUEEN", "Nurture"},
	{"king", "KING", "Mastery"},
}
