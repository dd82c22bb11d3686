package reading_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/arcanaland/tarotpick/internal/card"
	"github.com/arcanaland/tarotpick/internal/reading"
)

func testReading(question string) reading.Reading {
	cards := []card.DrawnCard{{
		Card:     card.Card{ID: "major_arcana.00", Name: "THE FOOL"},
		Position: 1,
	}}
	return reading.New(question, cards, time.Date(2025, 3, 7, 21, 5, 0, 0, time.UTC))
}

func TestHistory_Empty(t *testing.T) {
	h := reading.NewHistory()
	if h.Len() != 0 || len(h.List()) != 0 {
		t.Fatalf("expected empty history, got %d", h.Len())
	}
	if _, ok := h.Latest(); ok {
		t.Error("expected no latest reading")
	}
}

func TestHistory_RecordOne(t *testing.T) {
	h := reading.NewHistory()
	r := testReading("Will it rain?")
	h.Record(r)

	list := h.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(list))
	}
	if list[0].ID != r.ID {
		t.Errorf("expected %s at the front, got %s", r.ID, list[0].ID)
	}
	latest, ok := h.Latest()
	if !ok || latest.ID != r.ID {
		t.Errorf("unexpected latest: %+v, %v", latest, ok)
	}
}

func TestHistory_EvictsOldest(t *testing.T) {
	h := reading.NewHistory()

	var recorded []reading.Reading
	for i := 1; i <= 6; i++ {
		r := testReading(fmt.Sprintf("question %d", i))
		recorded = append(recorded, r)
		h.Record(r)
	}

	list := h.List()
	if len(list) != reading.HistoryCapacity {
		t.Fatalf("expected %d readings, got %d", reading.HistoryCapacity, len(list))
	}
	for i, r := range list {
		want := recorded[len(recorded)-1-i]
		if r.ID != want.ID {
			t.Errorf("position %d: expected %q, got %q", i, want.Question, r.Question)
		}
	}
	for _, r := range list {
		if r.ID == recorded[0].ID {
			t.Error("oldest reading was not evicted")
		}
	}
}

func TestHistory_ListIsSnapshot(t *testing.T) {
	h := reading.NewHistory()
	h.Record(testReading("first"))

	list := h.List()
	list[0].Question = "changed"
	h.Record(testReading("second"))

	if len(list) != 1 {
		t.Errorf("snapshot grew to %d", len(list))
	}
	if got := h.List()[1].Question; got != "first" {
		t.Errorf("history changed through snapshot: %q", got)
	}
}

func TestNew_Question(t *testing.T) {
	tests := []struct {
		in          string
		want        string
		hasQuestion bool
	}{
		{"", reading.NoQuestion, false},
		{"   ", reading.NoQuestion, false},
		{"  Should I move?  ", "Should I move?", true},
		{reading.NoQuestion, reading.NoQuestion, true},
	}
	for _, tt := range tests {
		r := testReading(tt.in)
		if r.Question != tt.want || r.HasQuestion() != tt.hasQuestion {
			t.Errorf("%q: got %q (hasQuestion=%v)", tt.in, r.Question, r.HasQuestion())
		}
	}
}

func TestNew_CopiesCardsAndFormatsTimestamp(t *testing.T) {
	cards := []card.DrawnCard{{Card: card.Card{Name: "THE SUN"}, Position: 1}}
	r := reading.New("q", cards, time.Date(2025, 12, 24, 9, 30, 0, 0, time.UTC))
	cards[0].Reversed = true

	if r.Cards[0].Reversed {
		t.Error("reading shares the caller's card slice")
	}
	if r.Timestamp() != "12/24 09:30" {
		t.Errorf("unexpected timestamp %q", r.Timestamp())
	}
	if r.ID == "" || r.ID == reading.New("q", cards, time.Now()).ID {
		t.Error("expected unique reading IDs")
	}
}
