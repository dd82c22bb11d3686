package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	colorize "github.com/fatih/color"

	"github.com/arcanaland/tarotpick/internal/deck"
	"github.com/arcanaland/tarotpick/internal/entitlement"
	"github.com/arcanaland/tarotpick/internal/reading"
	"github.com/arcanaland/tarotpick/internal/session"
)

func init() {
	colorize.NoColor = true
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testModel(t *testing.T, premium entitlement.Source) (Model, *session.Session) {
	t.Helper()
	d, err := deck.New(deck.ShapeFull)
	if err != nil {
		t.Fatalf("deck.New: %v", err)
	}
	fixed := time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)
	sess := session.New(deck.NewDealer(d, deck.NewSeededRNG(9)), premium, discard,
		session.WithClock(func() time.Time { return fixed }))

	model := NewModel(sess, nil, discard)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), sess
}

func press(t *testing.T, model Model, messages ...tea.KeyMsg) Model {
	t.Helper()
	for _, message := range messages {
		updated, _ := model.Update(message)
		model = updated.(Model)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func TestModelInitialView(t *testing.T) {
	model, sess := testModel(t, nil)

	if sess.Screen() != session.ScreenQuestion {
		t.Fatalf("expected question screen, got %s", sess.Screen())
	}
	view := model.View()
	for _, want := range []string{"Draw your cards", "Spread: 3 cards", "free"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelToggleSpread(t *testing.T) {
	model, _ := testModel(t, nil)

	model = press(t, model, tab)
	if model.Count() != session.SingleCard {
		t.Errorf("expected 1 card after tab, got %d", model.Count())
	}
	if !strings.Contains(model.View(), "Spread: 1 card") {
		t.Errorf("view does not show single card spread:\n%s", model.View())
	}

	model = press(t, model, tab)
	if model.Count() != session.ThreeCards {
		t.Errorf("expected 3 cards after second tab, got %d", model.Count())
	}
}

func TestModelDraw(t *testing.T) {
	model, sess := testModel(t, nil)

	model = press(t, model, runes("Is q typed?"), enter)

	if sess.Screen() != session.ScreenResult {
		t.Fatalf("expected result screen, got %s", sess.Screen())
	}
	active, ok := sess.Active()
	if !ok {
		t.Fatal("expected an active reading")
	}
	if active.Question != "Is q typed?" || len(active.Cards) != session.ThreeCards {
		t.Errorf("unexpected reading %q with %d cards", active.Question, len(active.Cards))
	}

	view := model.View()
	for _, want := range []string{"Your reading", "Is q typed?", "03/14 15:09", active.Cards[0].Name} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelDrawWithoutQuestion(t *testing.T) {
	model, sess := testModel(t, nil)

	model = press(t, model, tab, enter)
	active, _ := sess.Active()
	if active.Question != reading.NoQuestion || len(active.Cards) != session.SingleCard {
		t.Errorf("unexpected reading %q with %d cards", active.Question, len(active.Cards))
	}
	if strings.Contains(model.View(), reading.NoQuestion) {
		t.Errorf("sentinel question shown:\n%s", model.View())
	}
}

func TestModelNewReadingAndBack(t *testing.T) {
	model, sess := testModel(t, nil)

	model = press(t, model, runes("first"), enter, esc)
	if sess.Screen() != session.ScreenQuestion {
		t.Fatalf("expected question screen after esc, got %s", sess.Screen())
	}
	if model.input.Value() != "first" {
		t.Errorf("back should keep the question, got %q", model.input.Value())
	}

	model = press(t, model, enter, runes("n"))
	if sess.Screen() != session.ScreenQuestion {
		t.Fatalf("expected question screen after n, got %s", sess.Screen())
	}
	if model.input.Value() != "" || sess.Question() != "" {
		t.Errorf("new reading should clear the question, got %q", model.input.Value())
	}
	if _, ok := sess.Active(); ok {
		t.Error("new reading should clear the active reading")
	}
	if len(sess.History()) != 2 {
		t.Errorf("expected 2 readings in history, got %d", len(sess.History()))
	}
}

func TestModelHistory(t *testing.T) {
	model, sess := testModel(t, nil)

	model = press(t, model, ctrlR)
	if sess.Screen() != session.ScreenHistory {
		t.Fatalf("expected history screen, got %s", sess.Screen())
	}
	if !strings.Contains(model.View(), "No readings yet") {
		t.Errorf("expected empty history:\n%s", model.View())
	}
	model = press(t, model, esc)

	for i := 0; i < 6; i++ {
		model = press(t, model, runes(string(rune('a'+i))), enter, runes("n"))
	}
	model = press(t, model, ctrlR)
	if sess.Screen() != session.ScreenHistory {
		t.Fatalf("expected history screen, got %s", sess.Screen())
	}

	view := model.View()
	for _, line := range strings.Split(view, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), "15:09  a") {
			t.Errorf("oldest reading should have been evicted:\n%s", view)
		}
	}
	for _, q := range []string{"b", "c", "d", "e", "f"} {
		if !strings.Contains(view, "03/14 15:09  "+q) {
			t.Errorf("history missing reading %q:\n%s", q, view)
		}
	}

	model = press(t, model, runes("j"), runes("j"), runes("k"))
	if model.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", model.cursor)
	}
	model = press(t, model, runes("j"), runes("j"), runes("j"), runes("j"), runes("j"))
	if model.cursor != reading.HistoryCapacity-1 {
		t.Errorf("cursor should stop at the last reading, got %d", model.cursor)
	}
}

func TestModelOpenFromHistory(t *testing.T) {
	model, sess := testModel(t, nil)

	model = press(t, model, runes("first"), enter, runes("n"), runes("second"), enter, runes("h"))
	if sess.Screen() != session.ScreenHistory {
		t.Fatalf("expected history screen, got %s", sess.Screen())
	}

	model = press(t, model, runes("j"), enter)
	if sess.Screen() != session.ScreenResult {
		t.Fatalf("expected result screen after enter, got %s", sess.Screen())
	}
	active, ok := sess.Active()
	if !ok || active.Question != "first" {
		t.Errorf("expected the selected reading to be active, got %q", active.Question)
	}
	if !strings.Contains(model.View(), "first") {
		t.Errorf("result view does not show the reopened reading:\n%s", model.View())
	}
	if got := len(sess.History()); got != 2 {
		t.Errorf("opening a reading changed history: %d readings", got)
	}
}

func TestModelOpenEmptyHistory(t *testing.T) {
	model, sess := testModel(t, nil)

	press(t, model, ctrlR, enter)
	if sess.Screen() != session.ScreenHistory {
		t.Errorf("expected to stay on the history screen, got %s", sess.Screen())
	}
	if _, ok := sess.Active(); ok {
		t.Error("expected no active reading")
	}
}

func TestModelPremium(t *testing.T) {
	model, _ := testModel(t, entitlement.Static(true))

	model = press(t, model, enter)
	if !strings.Contains(model.View(), "premium") {
		t.Errorf("expected premium marker:\n%s", model.View())
	}
}

func TestModelQuit(t *testing.T) {
	model, _ := testModel(t, nil)

	// q is typed into the question on the question screen
	model = press(t, model, runes("q"))
	if model.input.Value() != "q" {
		t.Fatalf("expected q in the input, got %q", model.input.Value())
	}

	model = press(t, model, enter)
	_, command := model.Update(runes("q"))
	if command == nil {
		t.Fatal("q key should return a command on the result screen")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected QuitMsg")
	}

	_, command = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if command == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("expected QuitMsg")
	}
}
