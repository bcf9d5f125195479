package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/pomodoro/internal/notify"
	"github.com/five82/pomodoro/internal/prefs"
	"github.com/five82/pomodoro/internal/state"
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	RefreshTick time.Duration
	ThemeName   string
	PrefsPath   string
	Prefs       prefs.Prefs
	Bell        *notify.Bell
	Logger      *log.Logger
}

const defaultRefreshTick = 200 * time.Millisecond

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string
	prefs     prefs.Prefs
	bell      *notify.Bell
	logger    *log.Logger
	refresh   time.Duration

	// UI state
	theme     Theme
	keys      keyMap
	help      help.Model
	width     int
	height    int
	ready     bool
	showHelp  bool
	notice    string
	noticeErr bool

	// Data state
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.RefreshTick
	if refresh <= 0 {
		refresh = defaultRefreshTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: prefsPath,
		prefs:     opts.Prefs,
		bell:      opts.Bell,
		logger:    logger,
		refresh:   refresh,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refresh)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.refresh)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Work):
		return m.act(func(s *state.Store) { s.StartWork() })

	case key.Matches(msg, m.keys.ShortRest):
		return m.act(func(s *state.Store) { s.StartRest(false) })

	case key.Matches(msg, m.keys.LongRest):
		return m.act(func(s *state.Store) { s.StartRest(true) })

	case key.Matches(msg, m.keys.Pause):
		return m.act(func(s *state.Store) { s.TogglePause() })

	case key.Matches(msg, m.keys.Bell):
		on := !m.prefs.BellEnabled()
		m.bell.SetEnabled(on)
		m.prefs = m.prefs.WithBell(on)
		m.notice, m.noticeErr = "bell "+onOff(on), false
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.notice, m.noticeErr = "", false
		m.savePrefs()
		return m, nil
	}

	return m, nil
}

// act applies a timer action and refreshes the snapshot right away instead
// of waiting for the next refresh tick.
func (m Model) act(fn func(*state.Store)) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	fn(m.store)
	m.snapshot = m.store.Snapshot()
	return m, nil
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("failed to save preferences", "path", m.prefsPath, "err", err)
		m.notice, m.noticeErr = "prefs not saved", true
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderBody())

	return b.String()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
