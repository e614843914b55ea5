package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/rentdesk/internal/dvdapi"
	"github.com/five82/rentdesk/internal/i18n"
	"github.com/five82/rentdesk/internal/prefs"
	"github.com/five82/rentdesk/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewRent View = iota
	ViewReturn
	ViewReports
	viewCount
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       dvdapi.API
	Store     *state.Store
	Localizer *i18n.Localizer
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	// InitialView selects the first mounted view. Out-of-range values fall
	// back to ViewRent.
	InitialView View
}

// Model is the root application state for Bubble Tea. It owns exactly one
// mounted screen; switching views discards the old one together with its
// in-flight requests.
type Model struct {
	// Configuration
	ctx       context.Context
	api       dvdapi.API
	store     *state.Store
	loc       *i18n.Localizer
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Mounted screen
	screen      screen
	mountID     int
	cancelMount context.CancelFunc

	// API health
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model with the initial view mounted.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	loc := opts.Localizer
	if loc == nil {
		loc = i18n.New(i18n.Default().String())
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	initial := opts.InitialView
	if initial < 0 || initial >= viewCount {
		initial = ViewRent
	}

	m := Model{
		ctx:       ctx,
		api:       opts.API,
		store:     opts.Store,
		loc:       loc,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		theme:     GetTheme(opts.ThemeName),
		keys:      newKeyMap(loc),
		help:      help.New(),
	}
	m.mount(initial)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		scoped(m.mountID, m.screen.Init()),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// CurrentView returns the mounted view.
func (m Model) CurrentView() View {
	return m.currentView
}

// mount replaces the current screen. The previous screen's context is
// cancelled and its mount id retired, so nothing it started can write into
// the new screen.
func (m *Model) mount(v View) {
	if m.cancelMount != nil {
		m.cancelMount()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelMount = cancel
	m.mountID++
	m.currentView = v

	switch v {
	case ViewReturn:
		m.screen = newReturnView(ctx, m.api, m.loc, m.theme)
	case ViewReports:
		m.screen = newReportsView(ctx, m.api, m.loc, m.theme)
	default:
		m.currentView = ViewRent
		m.screen = newRentForm(ctx, m.api, m.loc)
	}
}

// switchView mounts v and returns its initial commands. Selecting the view
// that is already mounted is a no-op.
func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	if v == m.currentView {
		return m, nil
	}
	m.mount(v)
	return m, scoped(m.mountID, m.screen.Init())
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
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case mountedMsg:
		if msg.mount != m.mountID {
			// Result for a screen that is no longer mounted.
			return m, nil
		}
		return m.updateScreen(msg.msg)
	}

	return m, nil
}

// updateScreen forwards msg to the mounted screen and tags whatever it
// starts with the current mount.
func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg, m.keys)
	return m, scoped(m.mountID, cmd)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// A screen with an open prompt receives every key.
	if m.screen.Capturing() {
		return m.updateScreen(msg)
	}

	switch {
	case key.Matches(msg, m.keys.ViewRent):
		return m.switchView(ViewRent)
	case key.Matches(msg, m.keys.ViewReturn):
		return m.switchView(ViewReturn)
	case key.Matches(msg, m.keys.ViewReports):
		return m.switchView(ViewReports)
	case key.Matches(msg, m.keys.NextView):
		return m.switchView((m.currentView + 1) % viewCount)
	case key.Matches(msg, m.keys.PrevView):
		return m.switchView((m.currentView + viewCount - 1) % viewCount)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}

	return m.updateScreen(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelMount != nil {
		m.cancelMount()
	}
	return m, tea.Quit
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.screen = m.screen.ApplyTheme(m.theme)
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.loc.T("app.title")
	}

	if m.showHelp {
		return m.renderHelp()
	}

	rc := renderContext{
		theme:  m.theme,
		styles: m.theme.Styles(),
		loc:    m.loc,
		width:  m.width,
		height: max(m.height-3, 0),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.screen.View(rc),
		m.renderFooter(),
	)
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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
