package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/entitlement"
	"github.com/arcanaland/tarotpick/internal/reading"
	"github.com/arcanaland/tarotpick/internal/session"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newSession(t *testing.T, premium entitlement.Source) *session.Session {
	t.Helper()
	d, err := deck.New(deck.ShapeFull)
	if err != nil {
		t.Fatalf("deck.New: %v", err)
	}
	fixed := time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)
	return session.New(deck.NewDealer(d, deck.NewSeededRNG(5)), premium, discard,
		session.WithClock(func() time.Time { return fixed }))
}

// purchase stands in for the old fake in-app purchase: it unlocks premium
// after a delay, with no receipt behind it.
type purchase struct {
	once sync.Once
	done chan struct{}
}

func newPurchase(delay time.Duration) *purchase {
	p := &purchase{done: make(chan struct{})}
	time.AfterFunc(delay, func() { p.once.Do(func() { close(p.done) }) })
	return p
}

func (p *purchase) Unlocked(context.Context) (bool, error) {
	select {
	case <-p.done:
		return true, nil
	default:
		return false, nil
	}
}

func TestSession_InitialState(t *testing.T) {
	s := newSession(t, nil)

	if s.Screen() != session.ScreenQuestion {
		t.Errorf("expected question screen, got %s", s.Screen())
	}
	if _, ok := s.Active(); ok {
		t.Error("expected no active reading")
	}
	if len(s.History()) != 0 {
		t.Error("expected empty history")
	}
	if s.Premium(context.Background()) {
		t.Error("expected premium to be locked by default")
	}
}

func TestSession_DrawRecordsReading(t *testing.T) {
	s := newSession(t, nil)
	s.SetQuestion("Is this the right path?")

	r, err := s.Draw(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(r.Cards))
	}
	if r.Question != "Is this the right path?" {
		t.Errorf("unexpected question %q", r.Question)
	}
	if r.Timestamp() != "01/02 03:04" {
		t.Errorf("unexpected timestamp %q", r.Timestamp())
	}
	if s.Screen() != session.ScreenResult {
		t.Errorf("expected result screen, got %s", s.Screen())
	}

	active, ok := s.Active()
	if !ok || active.ID != r.ID {
		t.Error("drawn reading is not active")
	}
	history := s.History()
	if len(history) != 1 || history[0].ID != r.ID {
		t.Errorf("unexpected history: %+v", history)
	}
}

func TestSession_DrawWithoutQuestion(t *testing.T) {
	s := newSession(t, nil)

	r, err := s.Draw(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Question != reading.NoQuestion || r.HasQuestion() {
		t.Errorf("expected sentinel question, got %q", r.Question)
	}
}

func TestSession_InvalidDrawLeavesStateUnchanged(t *testing.T) {
	s := newSession(t, nil)
	s.SetQuestion("q")

	if _, err := s.Draw(0); !errors.Is(err, deck.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := s.Ask("other", 79); !errors.Is(err, deck.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	if s.Screen() != session.ScreenQuestion {
		t.Errorf("screen changed to %s", s.Screen())
	}
	if s.Question() != "q" {
		t.Errorf("question changed to %q", s.Question())
	}
	if len(s.History()) != 0 {
		t.Error("history changed")
	}
}

func TestSession_Navigation(t *testing.T) {
	s := newSession(t, nil)
	s.SetQuestion("q")
	if _, err := s.Draw(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.ShowHistory()
	if s.Screen() != session.ScreenHistory {
		t.Errorf("expected history screen, got %s", s.Screen())
	}
	s.Back()
	if s.Screen() != session.ScreenQuestion || s.Question() != "q" {
		t.Errorf("back: screen %s, question %q", s.Screen(), s.Question())
	}

	s.NewReading()
	if s.Question() != "" {
		t.Errorf("new reading kept question %q", s.Question())
	}
	if _, ok := s.Active(); ok {
		t.Error("new reading kept the active reading")
	}
	if len(s.History()) != 1 {
		t.Error("new reading cleared history")
	}
}

func TestSession_Reopen(t *testing.T) {
	s := newSession(t, nil)
	first, err := s.Ask("first", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Ask("second", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.ShowHistory()

	r, err := s.Reopen(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != first.ID {
		t.Errorf("expected %s, got %s", first.ID, r.ID)
	}
	if active, ok := s.Active(); !ok || active.ID != first.ID {
		t.Errorf("unexpected active reading %+v", active)
	}
	if s.Screen() != session.ScreenResult {
		t.Errorf("expected result screen, got %s", s.Screen())
	}
	if got := len(s.History()); got != 2 {
		t.Errorf("reopen changed history: %d readings", got)
	}
	if latest, _ := s.Latest(); latest.Question != "second" {
		t.Errorf("reopen reordered history: latest %q", latest.Question)
	}

	s.ShowHistory()
	for _, i := range []int{-1, 2} {
		if _, err := s.Reopen(i); !errors.Is(err, deck.ErrInvalidArgument) {
			t.Errorf("%d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
	if s.Screen() != session.ScreenHistory {
		t.Errorf("failed reopen changed screen to %s", s.Screen())
	}
}

func TestSession_HistoryBounded(t *testing.T) {
	s := newSession(t, nil)
	for range 7 {
		if _, err := s.Ask("again", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := len(s.History()); got != reading.HistoryCapacity {
		t.Errorf("expected %d readings, got %d", reading.HistoryCapacity, got)
	}
}

func TestSession_ConcurrentAsk(t *testing.T) {
	s := newSession(t, nil)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Ask("concurrent", 3); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	history := s.History()
	if len(history) != reading.HistoryCapacity {
		t.Fatalf("expected %d readings, got %d", reading.HistoryCapacity, len(history))
	}
	latest, ok := s.Latest()
	if !ok || latest.ID != history[0].ID {
		t.Error("latest does not match the front of the history")
	}
}

func TestSession_PremiumFollowsEntitlement(t *testing.T) {
	p := newPurchase(10 * time.Millisecond)
	s := newSession(t, p)

	if s.Premium(context.Background()) {
		t.Fatal("premium unlocked before the purchase completed")
	}
	<-p.done
	if !s.Premium(context.Background()) {
		t.Error("premium still locked after the purchase completed")
	}
}

func TestSession_PremiumSourceError(t *testing.T) {
	failing := entitlement.Func(func(context.Context) (bool, error) {
		return true, errors.New("receipt service unavailable")
	})
	s := newSession(t, failing)

	if s.Premium(context.Background()) {
		t.Error("expected a failing entitlement source to count as locked")
	}
}

func TestScreen_String(t *testing.T) {
	for screen, want := range map[session.Screen]string{
		session.ScreenQuestion: "question",
		session.ScreenResult:   "result",
		session.ScreenHistory:  "history",
		session.Screen(42):     "unknown",
	} {
		if screen.String() != want {
			t.Errorf("%d: expected %q, got %q", int(screen), want, screen.String())
		}
	}
}

func TestValidSpread(t *testing.T) {
	for _, n := range []int{session.SingleCard, session.ThreeCards} {
		if err := session.ValidSpread(n); err != nil {
			t.Errorf("%d: unexpected error %v", n, err)
		}
	}
	for _, n := range []int{-1, 0, 2, 4, 22} {
		if err := session.ValidSpread(n); !errors.Is(err, deck.ErrInvalidArgument) {
			t.Errorf("%d: expected ErrInvalidArgument, got %v", n, err)
		}
	}
}
