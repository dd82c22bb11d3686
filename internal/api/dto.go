package api

import (
	"time"

	"github.com/arcanaland/tarotpick/internal/card"
	"github.com/arcanaland/tarotpick/internal/reading"
)

// DrawRequest is the JSON body of POST /v1/readings. Count defaults to
// DefaultCount when omitted.
type DrawRequest struct {
	Question string `json:"question"`
	Count    *int   `json:"count"`
}

type CardResponse struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Rank            string      `json:"rank"`
	Arcana          card.Arcana `json:"arcana"`
	Suit            card.Suit   `json:"suit,omitempty"`
	UprightMeaning  string      `json:"upright"`
	ReversedMeaning string      `json:"reversed"`
}

type DrawnCardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Position    int    `json:"position"`
	Orientation string `json:"orientation"`
	Meaning     string `json:"meaning"`
}

type ReadingResponse struct {
	ID        string              `json:"id"`
	Question  string              `json:"question"`
	Cards     []DrawnCardResponse `json:"cards"`
	CreatedAt time.Time           `json:"created_at"`
	Timestamp string              `json:"timestamp"`
	RequestID string              `json:"request_id,omitempty"`
}

type DeckResponse struct {
	Shape string         `json:"shape"`
	Size  int            `json:"size"`
	Cards []CardResponse `json:"cards"`
}

type HistoryResponse struct {
	Readings []ReadingResponse `json:"readings"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toCard(c card.Card) CardResponse {
	return CardResponse{
		ID:              c.ID,
		Name:            c.Name,
		Rank:            c.Rank,
		Arcana:          c.Arcana,
		Suit:            c.Suit,
		UprightMeaning:  c.UprightMeaning,
		ReversedMeaning: c.ReversedMeaning,
	}
}

func toReading(r reading.Reading, requestID string) ReadingResponse {
	cards := make([]DrawnCardResponse, len(r.Cards))
	for i, dc := range r.Cards {
		cards[i] = DrawnCardResponse{
			ID:          dc.ID,
			Name:        dc.Name,
			Position:    dc.Position,
			Orientation: dc.Orientation(),
			Meaning:     dc.Meaning(),
		}
	}
	return ReadingResponse{
		ID:        r.ID,
		Question:  r.Question,
		Cards:     cards,
		CreatedAt: r.CreatedAt,
		Timestamp: r.Timestamp(),
		RequestID: requestID,
	}
}
