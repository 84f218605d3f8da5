package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/teen-life/internal/game"
)

func testModel(t *testing.T) gameModel {
	t.Helper()
	screen := &screenPresenter{}
	session, err := game.NewSession(game.SessionConfig{Seed: 11}, screen)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return newGameModel(AppConfig{Version: "dev", NoColor: true}, session, screen)
}

func press(t *testing.T, m gameModel, key string) gameModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	gotModel, _ := m.Update(msg)
	return gotModel.(gameModel)
}

func TestNextKeyPresentsEvent(t *testing.T) {
	m := press(t, testModel(t), "n")
	if m.screen.title == "" {
		t.Fatalf("expected an event title after n")
	}
	if len(m.screen.labels) != 3 {
		t.Fatalf("expected 3 choice labels, got %d", len(m.screen.labels))
	}
	if !strings.Contains(m.View(), m.screen.title) {
		t.Fatalf("expected view to include the event title")
	}
}

func TestDigitResolvesPendingEvent(t *testing.T) {
	m := press(t, testModel(t), "n")
	m = press(t, m, "1")

	if got := m.session.State().Day; got != 2 {
		t.Fatalf("expected day 2 after choosing, got %d", got)
	}
	if m.screen.title != "" {
		t.Fatalf("expected event to be cleared, still showing %q", m.screen.title)
	}
	if len(m.screen.messages) == 0 {
		t.Fatalf("expected the choice message in history")
	}
}

func TestNextWhilePendingShowsStatus(t *testing.T) {
	m := press(t, testModel(t), "n")
	m = press(t, m, "n")
	if m.status != "Finish today's event before moving on." {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestStoreOverlayDigitBuysItem(t *testing.T) {
	m := press(t, testModel(t), "b")
	if _, ok := m.screen.overlay.(game.StoreOverlay); !ok {
		t.Fatalf("expected store overlay, got %T", m.screen.overlay)
	}
	m = press(t, m, "4")
	state := m.session.State()
	if state.Money != 5 {
		t.Fatalf("expected movie night to cost $15, money now %d", state.Money)
	}
	if state.Day != 1 {
		t.Fatalf("purchase must not advance the day, got %d", state.Day)
	}

	store, ok := m.screen.overlay.(game.StoreOverlay)
	if !ok {
		t.Fatalf("expected store overlay to stay open, got %T", m.screen.overlay)
	}
	if store.Money != 5 {
		t.Fatalf("expected overlay to show $5 after buying, got $%d", store.Money)
	}
	if store.Items[3].Affordable {
		t.Fatalf("expected movie night to be unaffordable at $5")
	}
}

func TestOverlayRefreshesAfterActivity(t *testing.T) {
	m := press(t, testModel(t), "s")
	m = press(t, m, "enter")
	m.input.SetValue("do study")
	m = press(t, m, "enter")

	stats, ok := m.screen.overlay.(game.StatsOverlay)
	if !ok {
		t.Fatalf("expected stats overlay to stay open, got %T", m.screen.overlay)
	}
	if stats.Grades != 80 {
		t.Fatalf("expected overlay grades 80 after studying, got %d", stats.Grades)
	}
}

func TestEscClosesOverlay(t *testing.T) {
	m := press(t, testModel(t), "s")
	if m.screen.overlay == nil {
		t.Fatalf("expected stats overlay")
	}
	m = press(t, m, "esc")
	if m.screen.overlay != nil {
		t.Fatalf("expected overlay to close")
	}
}

func TestTypedFreeTextRunsActivity(t *testing.T) {
	m := press(t, testModel(t), "enter")
	if !m.typing {
		t.Fatalf("expected enter to focus the command input")
	}
	m.input.SetValue("I want to study")
	m = press(t, m, "enter")

	if m.typing {
		t.Fatalf("expected input to close after submit")
	}
	if got := m.session.State().Grades; got != 80 {
		t.Fatalf("expected study to raise grades to 80, got %d", got)
	}
	if m.status != "" {
		t.Fatalf("did not expect a status, got %q", m.status)
	}
}

func TestTypedAmbiguousInputAsksForClarification(t *testing.T) {
	m := press(t, testModel(t), "enter")
	m.input.SetValue("buy")
	m = press(t, m, "enter")
	if !strings.HasPrefix(m.status, "What should I buy?") {
		t.Fatalf("expected clarification prompt, got %q", m.status)
	}
	if !strings.Contains(m.status, "buy concert ticket") {
		t.Fatalf("expected store items as options, got %q", m.status)
	}
}

func TestViewShowsHeaderAndHint(t *testing.T) {
	view := testModel(t).View()
	for _, want := range []string{"TEEN LIFE", "Day 1  Age 15  Money $20", "Press n to start the next day."} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}
