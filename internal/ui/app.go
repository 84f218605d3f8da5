package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/appengine-ltd/teen-life/internal/game"
	"github.com/appengine-ltd/teen-life/internal/parser"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
	NoColor   bool
	Logger    *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	screen := &screenPresenter{}
	session, err := game.NewSession(game.SessionConfig{Seed: a.cfg.Seed, Logger: a.cfg.Logger}, screen)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	if err := session.RequestAdvance(); err != nil {
		return fmt.Errorf("first event: %w", err)
	}
	m := newGameModel(a.cfg, session, screen)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// --- Styles (retro green) ---
type palette struct {
	green       lipgloss.Style
	brightGreen lipgloss.Style
	dimGreen    lipgloss.Style
	border      lipgloss.Style
	warn        lipgloss.Style
}

func newPalette(noColor bool) palette {
	if noColor {
		plain := lipgloss.NewStyle()
		return palette{green: plain, brightGreen: plain, dimGreen: plain, border: plain, warn: plain}
	}
	return palette{
		green:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		brightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		dimGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		border:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warn:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

const divider = "----------------------------------------"

const hotkeyHelp = "1-3 choose  n next day  s stats  a activities  f friends  b store  enter type  esc close  q quit"

// --- Game model ---

type gameModel struct {
	cfg     AppConfig
	session *game.Session
	screen  *screenPresenter
	parser  *parser.Parser
	styles  palette

	input  textinput.Model
	typing bool
	status string
}

func newGameModel(cfg AppConfig, session *game.Session, screen *screenPresenter) gameModel {
	ti := textinput.New()
	ti.Placeholder = "what do you want to do? (e.g. buy concert ticket)"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 60
	return gameModel{
		cfg:     cfg,
		session: session,
		screen:  screen,
		parser:  parser.New(),
		styles:  newPalette(cfg.NoColor),
		input:   ti,
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(20, msg.Width-4)
		return m, nil
	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m gameModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "n":
		return m.run("next"), nil
	case "s":
		return m.run("stats"), nil
	case "a":
		return m.run("activities"), nil
	case "f":
		return m.run("friends"), nil
	case "b":
		return m.run("store"), nil
	case "esc":
		m.screen.overlay = nil
		m.status = ""
		return m, nil
	case "enter", "/", ":":
		m.typing = true
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	}
	if n, err := strconv.Atoi(key); err == nil && n > 0 {
		return m.run(m.digitCommand(n)), nil
	}
	return m, nil
}

// digitCommand picks from the open activities or store overlay, and
// otherwise answers the pending event.
func (m gameModel) digitCommand(n int) string {
	switch p := m.screen.overlay.(type) {
	case game.ActivitiesOverlay:
		if n <= len(p.Activities) {
			return "do " + p.Activities[n-1].Name
		}
	case game.StoreOverlay:
		if n <= len(p.Items) {
			return "buy " + p.Items[n-1].Name
		}
	}
	return "choose " + strconv.Itoa(n)
}

func (m gameModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.typing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		raw := strings.TrimSpace(m.input.Value())
		m.typing = false
		m.input.Blur()
		m.input.Reset()
		if raw == "" {
			return m, nil
		}
		return m.submit(raw), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m gameModel) parseContext() parser.ParseContext {
	catalog := m.session.Catalog()
	ctx := parser.ParseContext{
		Activities: catalog.ActivityNames(),
		StoreItems: catalog.StoreItemNames(),
	}
	if event, ok := m.session.PendingEvent(); ok {
		ctx.ChoiceCount = len(event.Choices)
	}
	return ctx
}

// submit translates free text into a command, asking for clarification when
// the parse is ambiguous.
func (m gameModel) submit(raw string) gameModel {
	intent := m.parser.Parse(m.parseContext(), raw)
	if intent.Clarify != nil {
		m.status = clarifyText(intent.Clarify)
		return m
	}
	command := parser.IntentToCommandString(intent)
	if command == "" {
		m.status = "I didn't understand that. Type help for commands."
		return m
	}
	return m.run(command)
}

func clarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	options := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, parser.IntentToCommandString(opt))
	}
	return q.Prompt + " " + strings.Join(options, " | ")
}

func (m gameModel) run(command string) gameModel {
	res := m.session.ExecuteCommand(command)
	switch {
	case !res.Handled:
		m.status = "I didn't understand that. Type help for commands."
	case res.Message != "":
		m.status = res.Message
	default:
		m.status = ""
	}
	if res.DayAdvanced {
		m.screen.overlay = nil
	}
	if res.Handled && res.Err == nil && m.screen.overlay != nil && !isOverlayCommand(command) {
		// Redraw the open overlay so money and availability follow the action.
		_ = m.session.RequestOverlay(m.screen.overlay.OverlayKind())
	}
	if _, ok := m.session.PendingEvent(); !ok {
		m.screen.clearEvent()
	}
	return m
}

func isOverlayCommand(command string) bool {
	for _, kind := range game.AllOverlayKinds() {
		if command == string(kind) {
			return true
		}
	}
	return false
}

func (m gameModel) View() string {
	st := m.styles
	state := m.session.State()

	var b strings.Builder
	b.WriteString(st.brightGreen.Render("TEEN LIFE") + st.dimGreen.Render(fmt.Sprintf("  v%s (%s) %s", m.cfg.Version, m.cfg.Commit, m.cfg.BuildDate)) + "\n")
	header := fmt.Sprintf("Day %d  Age %d  Money $%d", state.Day, state.Age, state.Money)
	if state.Grounded {
		header += "  " + st.warn.Render("GROUNDED")
	}
	b.WriteString(st.green.Render(header) + "\n")
	b.WriteString(st.border.Render(divider) + "\n\n")

	if m.screen.title != "" {
		b.WriteString(st.brightGreen.Render(m.screen.title) + "\n")
		b.WriteString(st.green.Render(m.screen.description) + "\n\n")
		for i, label := range m.screen.labels {
			b.WriteString(fmt.Sprintf("  %s %s\n", st.brightGreen.Render(strconv.Itoa(i+1)+")"), st.green.Render(label)))
		}
	} else {
		b.WriteString(st.dimGreen.Render("Press n to start the next day.") + "\n")
	}

	if m.screen.overlay != nil {
		b.WriteString("\n" + st.border.Render(divider) + "\n")
		b.WriteString(st.brightGreen.Render(overlayTitle(m.screen.overlay)) + "\n")
		for _, line := range overlayLines(m.screen.overlay) {
			b.WriteString(st.green.Render(line) + "\n")
		}
	}

	if len(m.screen.messages) > 0 {
		b.WriteString("\n" + st.border.Render(divider) + "\n")
		for _, msg := range m.screen.messages {
			b.WriteString(st.dimGreen.Render("* ") + st.green.Render(msg) + "\n")
		}
	}

	b.WriteString("\n" + st.border.Render(divider) + "\n")
	if m.typing {
		b.WriteString(m.input.View() + "\n")
	} else {
		b.WriteString(st.dimGreen.Render(hotkeyHelp) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + st.warn.Render(m.status) + "\n")
	}
	return b.String()
}
