// Package session holds the state a front end works against: the question
// being typed, the screen on display, the active reading and the reading
// history. All methods are safe for concurrent use; the session is the
// single writer of its history.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/entitlement"
	"github.com/arcanaland/tarotpick/internal/reading"
)

type Session struct {
	mu       sync.Mutex
	dealer   *deck.Dealer
	premium  entitlement.Source
	logger   *slog.Logger
	now      func() time.Time
	history  *reading.History
	screen   Screen
	question string
	active   *reading.Reading
}

// Option customizes a Session
type Option func(*Session)

// WithClock replaces time.Now as the source of reading timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(dealer *deck.Dealer, premium entitlement.Source, logger *slog.Logger, opts ...Option) *Session {
	if premium == nil {
		premium = entitlement.Static(false)
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		dealer:  dealer,
		premium: premium,
		logger:  logger,
		now:     time.Now,
		history: reading.NewHistory(),
		screen:  ScreenQuestion,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deck returns the deck readings are drawn from
func (s *Session) Deck() *deck.Deck {
	return s.dealer.Deck()
}

func (s *Session) SetQuestion(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = q
}

func (s *Session) Question() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.question
}

// Draw draws count cards for the current question, records the reading and
// switches to the result screen. On error the session is unchanged.
func (s *Session) Draw(count int) (reading.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawLocked(s.question, count)
}

// Ask sets the question and draws in one step.
func (s *Session) Ask(question string, count int) (reading.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.drawLocked(question, count)
	if err != nil {
		return reading.Reading{}, err
	}
	s.question = question
	return r, nil
}

func (s *Session) drawLocked(question string, count int) (reading.Reading, error) {
	cards, err := s.dealer.Draw(count)
	if err != nil {
		return reading.Reading{}, fmt.Errorf("draw: %w", err)
	}

	r := reading.New(question, cards, s.now())
	s.history.Record(r)
	s.active = &r
	s.screen = ScreenResult

	s.logger.Debug("reading recorded",
		"reading_id", r.ID,
		"cards", len(r.Cards),
		"history", s.history.Len(),
	)
	return r, nil
}

// NewReading clears the question and the active reading and returns to the
// question screen.
func (s *Session) NewReading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = ""
	s.active = nil
	s.screen = ScreenQuestion
}

// Reopen makes the i-th history entry (0 is the newest) the active reading
// and switches to the result screen. The history itself is not changed.
func (s *Session) Reopen(i int) (reading.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	readings := s.history.List()
	if i < 0 || i >= len(readings) {
		return reading.Reading{}, fmt.Errorf("%w: history entry %d of %d", deck.ErrInvalidArgument, i, len(readings))
	}
	r := readings[i]
	s.active = &r
	s.screen = ScreenResult

	s.logger.Debug("reading reopened", "reading_id", r.ID, "index", i)
	return r, nil
}

func (s *Session) ShowHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenHistory
}

// Back returns to the question screen, keeping the typed question.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenQuestion
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Active returns the reading on display, if any.
func (s *Session) Active() (reading.Reading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return reading.Reading{}, false
	}
	return *s.active, true
}

// History returns the recorded readings, newest first.
func (s *Session) History() []reading.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.List()
}

// Latest returns the most recent reading, if any.
func (s *Session) Latest() (reading.Reading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Latest()
}

// Premium reports whether premium artwork is unlocked. A failing
// entitlement source counts as locked.
func (s *Session) Premium(ctx context.Context) bool {
	ok, err := s.premium.Unlocked(ctx)
	if err != nil {
		s.logger.Warn("entitlement check failed", "error", err)
		return false
	}
	return ok
}
