// Package tui is the interactive terminal front end: a question screen, a
// result screen showing the drawn cards and a history screen listing the
// most recent readings. All state lives in a session.Session; the model
// only holds view state.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/tarotpick/internal/reading"
	"github.com/arcanaland/tarotpick/internal/render"
	"github.com/arcanaland/tarotpick/internal/session"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	premiumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

// Model implements tea.Model over a reading session.
type Model struct {
	sess   *session.Session
	art    *render.Art
	logger *slog.Logger
	keys   KeyMap

	input    textinput.Model
	result   viewport.Model
	help     help.Model
	count    int
	premium  bool
	cursor   int // Selected row on the history screen
	err      error
	width    int
	height   int
	quitting bool
}

// NewModel creates the TUI model. art may be nil when no art deck is
// installed; cards are then always shown with their glyph.
func NewModel(sess *session.Session, art *render.Art, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "Ask the cards a question (optional)"
	input.CharLimit = 500
	input.Width = 60
	input.SetValue(sess.Question())
	input.Focus()

	return Model{
		sess:   sess,
		art:    art,
		logger: logger,
		keys:   DefaultKeyMap,
		input:  input,
		result: viewport.New(80, 20),
		help:   help.New(),
		count:  session.ThreeCards,
		width:  80,
		height: 24,
	}
}

// Count returns the spread size the next draw will use.
func (model Model) Count() int {
	return model.count
}

func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Keys are routed by the session's current
// screen.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.help.Width = message.Width
		model.result.Width = message.Width
		model.result.Height = max(message.Height-4, 1)
		if active, ok := model.sess.Active(); ok {
			model.result.SetContent(model.renderReading(active))
		}
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.ForceQuit) {
			model.quitting = true
			return model, tea.Quit
		}
		switch model.sess.Screen() {
		case session.ScreenResult:
			return model.handleResultKeys(message)
		case session.ScreenHistory:
			return model.handleHistoryKeys(message)
		default:
			return model.handleQuestionKeys(message)
		}
	}

	if model.sess.Screen() == session.ScreenQuestion {
		var cmd tea.Cmd
		model.input, cmd = model.input.Update(message)
		return model, cmd
	}
	return model, nil
}

func (model Model) handleQuestionKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Draw):
		return model.draw()

	case key.Matches(message, model.keys.ToggleSize):
		if model.count == session.ThreeCards {
			model.count = session.SingleCard
		} else {
			model.count = session.ThreeCards
		}
		return model, nil

	case key.Matches(message, model.keys.History):
		model.sess.SetQuestion(model.input.Value())
		model.sess.ShowHistory()
		model.cursor = 0
		return model, nil
	}

	var cmd tea.Cmd
	model.input, cmd = model.input.Update(message)
	model.sess.SetQuestion(model.input.Value())
	return model, cmd
}

func (model Model) draw() (tea.Model, tea.Cmd) {
	model.sess.SetQuestion(model.input.Value())
	r, err := model.sess.Draw(model.count)
	if err != nil {
		model.err = err
		model.logger.Error("draw failed", "count", model.count, "error", err)
		return model, nil
	}
	model.err = nil
	model.premium = model.sess.Premium(context.Background())
	model.result.SetContent(model.renderReading(r))
	model.result.GotoTop()
	return model, nil
}

func (model Model) handleResultKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.quitting = true
		return model, tea.Quit

	case key.Matches(message, model.keys.NewReading):
		model.sess.NewReading()
		model.input.Reset()
		return model, model.input.Focus()

	case key.Matches(message, model.keys.ShowHistory):
		model.sess.ShowHistory()
		model.cursor = 0
		return model, nil

	case key.Matches(message, model.keys.Back):
		model.sess.Back()
		return model, model.input.Focus()
	}

	var cmd tea.Cmd
	model.result, cmd = model.result.Update(message)
	return model, cmd
}

func (model Model) handleHistoryKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.quitting = true
		return model, tea.Quit

	case key.Matches(message, model.keys.NewReading):
		model.sess.NewReading()
		model.input.Reset()
		return model, model.input.Focus()

	case key.Matches(message, model.keys.Back):
		model.sess.Back()
		return model, model.input.Focus()

	case key.Matches(message, model.keys.Open):
		r, err := model.sess.Reopen(model.cursor)
		if err != nil {
			// empty history
			return model, nil
		}
		model.result.SetContent(model.renderReading(r))
		model.result.GotoTop()

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.sess.History())-1 {
			model.cursor++
		}
	}
	return model, nil
}

func (model Model) renderReading(r reading.Reading) string {
	var b strings.Builder
	renderer := render.New(&b, model.art, model.logger)
	renderer.Width = model.width
	if err := renderer.Reading(r, model.premium); err != nil {
		return errorStyle.Render(err.Error())
	}
	return b.String()
}

func (model Model) View() string {
	if model.quitting {
		return ""
	}

	var sections []string
	switch model.sess.Screen() {
	case session.ScreenResult:
		sections = append(sections, model.header("Your reading"), model.result.View())
		sections = append(sections, model.footer(model.keys.NewReading, model.keys.ShowHistory,
			model.keys.Back, model.keys.Up, model.keys.Down, model.keys.Quit))

	case session.ScreenHistory:
		sections = append(sections, model.header("Recent readings"), model.renderHistory())
		sections = append(sections, model.footer(model.keys.Up, model.keys.Down,
			model.keys.Open, model.keys.NewReading, model.keys.Back, model.keys.Quit))

	default:
		sections = append(sections, model.header("Draw your cards"), "", model.input.View(), "")
		spread := fmt.Sprintf("Spread: %d card", model.count)
		if model.count != session.SingleCard {
			spread += "s"
		}
		sections = append(sections, subtleStyle.Render(spread))
		if model.err != nil {
			sections = append(sections, errorStyle.Render(model.err.Error()))
		}
		sections = append(sections, model.footer(model.keys.Draw, model.keys.ToggleSize,
			model.keys.History, model.keys.ForceQuit))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (model Model) header(title string) string {
	mode := subtleStyle.Render("free")
	if model.premium {
		mode = premiumStyle.Render("✨ premium")
	}
	return titleStyle.Render("🔮 "+title) + "  " + mode
}

func (model Model) footer(bindings ...key.Binding) string {
	return "\n" + model.help.View(screenHelp(bindings))
}

func (model Model) renderHistory() string {
	readings := model.sess.History()
	if len(readings) == 0 {
		return "\n" + subtleStyle.Render("No readings yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range readings {
		marker := "  "
		line := fmt.Sprintf("%s  %s", r.Timestamp(), r.Question)
		if i == model.cursor {
			marker = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")

		cards := make([]string, len(r.Cards))
		for j, dc := range r.Cards {
			cards[j] = render.Summary(dc)
		}
		b.WriteString("    " + subtleStyle.Render(strings.Join(cards, " · ")) + "\n")
	}
	return b.String()
}
