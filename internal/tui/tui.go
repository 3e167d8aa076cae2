// Package tui provides the Bubble Tea screen for the lemonade tutorial.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/fakeyudi/lemonade/internal/config"
	"github.com/fakeyudi/lemonade/internal/lemonade"
	"github.com/fakeyudi/lemonade/internal/log"
)

// ── Styles ────────────

type styles struct {
	title     lipgloss.Style
	frame     lipgloss.Style
	caption   lipgloss.Style
	statusBar lipgloss.Style
	counter   lipgloss.Style
}

func newStyles(accent string) styles {
	c := lipgloss.Color(accent)
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(c).
			Padding(0, 2),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c).
			Padding(1, 3),
		caption: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginTop(1),
		statusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		counter: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
	}
}

// ConfigMsg carries a reloaded configuration into the running program.
type ConfigMsg struct {
	Config config.Config
}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the lemonade screen.
type Model struct {
	session *lemonade.Session
	cfg     config.Config
	styles  styles
	keys    keyMap
	help    help.Model
	logger  zerolog.Logger
	width   int
	height  int
}

// New creates a model that renders s with the given configuration.
func New(s *lemonade.Session, cfg config.Config) Model {
	return Model{
		session: s,
		cfg:     cfg,
		styles:  newStyles(cfg.Accent),
		keys:    defaultKeys(),
		help:    help.New(),
		logger:  log.WithComponent("tui").With().Str("session", s.ID).Logger(),
	}
}

// Session returns the session driven by the model.
func (m Model) Session() *lemonade.Session { return m.session }

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tap):
			m.tap()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigMsg:
		m.cfg = msg.Config
		m.styles = newStyles(msg.Config.Accent)
		m.logger.Debug().Str("accent", msg.Config.Accent).Str("art", msg.Config.Art).Msg("config applied")
		return m, nil
	}
	return m, nil
}

// tap forwards one tap to the session.
func (m *Model) tap() {
	from := m.session.State
	m.session.Advance()
	m.logger.Debug().
		Stringer("from", from).
		Stringer("to", m.session.State).
		Int("current_taps", m.session.CurrentTaps).
		Int("required_taps", m.session.RequiredTaps).
		Int("cycles", m.session.Cycles).
		Msg("advance")
}

func (m Model) View() string {
	asset := m.session.Asset()

	title := m.styles.title.Render("🍋 lemonade")
	art := m.styles.frame.Render(artFor(asset.Image, m.cfg.Art))
	caption := m.styles.caption.Render(asset.Caption)
	body := lipgloss.JoinVertical(lipgloss.Center, art, caption)

	status := m.statusLine()
	helpView := m.help.View(m.keys)

	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, body, m.styles.statusBar.Render(status), helpView)
	}

	titleRow := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)
	// title(1) + status(1) + help
	bodyHeight := m.height - 2 - lipgloss.Height(helpView)
	if bodyHeight < lipgloss.Height(body) {
		bodyHeight = lipgloss.Height(body)
	}
	centred := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	statusBar := m.styles.statusBar.Width(m.width).Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, titleRow, centred, statusBar, helpView)
}

// statusLine describes the session counters.
func (m Model) statusLine() string {
	s := m.session
	var parts []string
	parts = append(parts, s.State.String())
	if s.State == lemonade.Squeezing {
		parts = append(parts, m.styles.counter.Render(fmt.Sprintf("squeeze %d/%d", s.CurrentTaps, s.RequiredTaps)))
	}
	parts = append(parts, fmt.Sprintf("cycles %d", s.Cycles))
	return strings.Join(parts, "  ·  ")
}

// Run starts the interactive program and blocks until the user quits.
// Config changes on disk are applied while it runs.
func Run(ctx context.Context, s *lemonade.Session, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if paths, err := config.WatchPaths(); err == nil {
		logger := log.WithComponent("tui")
		go func() {
			err := config.Watch(ctx, paths, func(c config.Config) {
				p.Send(ConfigMsg{Config: c})
			})
			if err != nil {
				logger.Warn().Err(err).Msg("config watcher stopped")
			}
		}()
	}

	_, err := p.Run()
	return err
}
