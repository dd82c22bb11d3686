package reading

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/tarotpick/internal/card"
)

// NoQuestion stands in for the question when the user did not ask one.
const NoQuestion = "No question"

// TimestampLayout is the display format of a reading's creation time.
const TimestampLayout = "01/02 15:04"

// Reading is one completed draw: the question, the cards and when it happened.
type Reading struct {
	ID        string           `json:"id"`
	Question  string           `json:"question"`
	Asked     bool             `json:"asked"`
	Cards     []card.DrawnCard `json:"cards"`
	CreatedAt time.Time        `json:"created_at"`
}

// New builds a reading. A blank question becomes NoQuestion.
func New(question string, cards []card.DrawnCard, createdAt time.Time) Reading {
	q := strings.TrimSpace(question)
	asked := q != ""
	if !asked {
		q = NoQuestion
	}
	return Reading{
		ID:        uuid.NewString(),
		Question:  q,
		Asked:     asked,
		Cards:     append([]card.DrawnCard(nil), cards...),
		CreatedAt: createdAt,
	}
}

// HasQuestion reports whether the user supplied a question.
func (r Reading) HasQuestion() bool {
	return r.Asked
}

// Timestamp returns the creation time in display form (MM/dd HH:mm).
func (r Reading) Timestamp() string {
	return r.CreatedAt.Format(TimestampLayout)
}
