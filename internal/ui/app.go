package ui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marden/nodeglass/internal/catalog"
	"github.com/marden/nodeglass/internal/conf"
	"github.com/marden/nodeglass/internal/health"
	"github.com/marden/nodeglass/internal/logtail"
	"github.com/marden/nodeglass/internal/prefs"
	"github.com/marden/nodeglass/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewOptions View = iota
	ViewUnknown
	ViewLogs
	ViewPicker
)

// logTailLines is how many trailing debug.log lines the log view shows.
const logTailLines = 400

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   *catalog.Catalog
	Model     *conf.Model
	ConfPath  string
	Issues    []conf.Issue
	Store     *state.Store
	Target    *health.Target
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	cat       *catalog.Catalog
	conf      *conf.Model
	confPath  string
	issues    []conf.Issue
	store     *state.Store
	target    *health.Target
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	statusMsg   string
	dirty       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Options view state
	secIdx  int
	optIdx  int
	editing bool
	input   textinput.Model
	editErr string

	// Unknown entries view state
	unknownIdx int

	// Log view state
	logViewport viewport.Model
	logPath     string

	// File picker state
	picker filepicker.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = 2 * time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.CharLimit = 0
	input.Prompt = "> "

	picker := filepicker.New()
	picker.AllowedTypes = []string{".conf"}
	picker.ShowHidden = true
	picker.AutoHeight = false
	if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}

	view := ViewOptions
	if opts.Model == nil {
		// Nothing loaded yet; start in the picker.
		view = ViewPicker
	}

	return Model{
		ctx:         ctx,
		cat:         opts.Catalog,
		conf:        opts.Model,
		confPath:    opts.ConfPath,
		issues:      opts.Issues,
		store:       opts.Store,
		target:      opts.Target,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: view,
		input:       input,
		picker:      picker,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewPicker {
		cmds = append(cmds, m.picker.Init())
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
		// Views with a title line get one row less than the content area.
		bodyHeight := maxInt(contentHeight(msg.Height)-1, 1)
		if !m.ready {
			m.logViewport = viewport.New(msg.Width, bodyHeight)
		} else {
			m.logViewport.Width = msg.Width
			m.logViewport.Height = bodyHeight
		}
		m.picker.Height = bodyHeight
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case logLinesMsg:
		m.logPath = msg.path
		if msg.err != nil {
			m.logViewport.SetContent("cannot read " + msg.path + ": " + msg.err.Error())
			return m, nil
		}
		m.logViewport.SetContent(strings.Join(msg.lines, "\n"))
		m.logViewport.GotoBottom()
		return m, nil
	}

	// Remaining messages belong to the focused component (picker directory
	// reads, textinput cursor blinks).
	var cmd tea.Cmd
	switch {
	case m.currentView == ViewPicker:
		m.picker, cmd = m.picker.Update(msg)
		if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
			return m.loadFile(path)
		}
	case m.editing:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
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
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Inline editing captures everything except esc/enter.
	if m.editing {
		return m.handleEditKey(msg)
	}

	if m.currentView == ViewPicker {
		return m.handlePickerKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "tab":
		return m.cycleView(1)

	case "shift+tab":
		return m.cycleView(-1)

	case "o":
		m.currentView = ViewOptions
		return m, nil

	case "u":
		m.currentView = ViewUnknown
		m.unknownIdx = 0
		return m, nil

	case "l":
		m.currentView = ViewLogs
		return m, m.refreshLogs()

	case "f":
		m.currentView = ViewPicker
		return m, m.picker.Init()

	case "s":
		return m.saveFile()

	case "esc":
		m.currentView = ViewOptions
		m.statusMsg = ""
		return m, nil
	}

	// View-specific keys
	switch m.currentView {
	case ViewOptions:
		return m.handleOptionsKey(msg)
	case ViewUnknown:
		return m.handleUnknownKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// handlePickerKey processes keyboard input for the file picker view.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.conf != nil {
			m.currentView = ViewOptions
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		return m.loadFile(path)
	}
	return m, cmd
}

// handleLogsKey processes keyboard input for the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Keep the log view tailing the file while it is visible.
	if m.currentView == ViewLogs {
		if cmd := m.refreshLogs(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// cycleView steps through the main views in order.
func (m Model) cycleView(dir int) (tea.Model, tea.Cmd) {
	order := []View{ViewOptions, ViewUnknown, ViewLogs}
	cur := 0
	for i, v := range order {
		if v == m.currentView {
			cur = i
			break
		}
	}
	next := order[(cur+dir+len(order))%len(order)]
	m.currentView = next
	if next == ViewLogs {
		return m, m.refreshLogs()
	}
	return m, nil
}

// loadFile replaces the working document with the contents of path.
func (m Model) loadFile(path string) (tea.Model, tea.Cmd) {
	model, issues, err := conf.LoadFile(path, m.cat)
	if err != nil {
		m.statusMsg = "cannot open " + path + ": " + err.Error()
		return m, nil
	}

	m.conf = model
	m.confPath = path
	m.issues = issues
	m.dirty = false
	m.secIdx = 0
	m.optIdx = 0
	m.currentView = ViewOptions
	m.statusMsg = "Opened " + path

	if m.target != nil {
		m.target.SetFromModel(model)
	}
	m.savePrefs()

	// Re-check health against the new pid path right away.
	if m.store != nil && m.target != nil {
		store, target := m.store, m.target
		return m, func() tea.Msg {
			store.Update(target.Check())
			return snapshotMsg(store.Snapshot())
		}
	}
	return m, nil
}

// saveFile writes the working document back to disk.
func (m Model) saveFile() (tea.Model, tea.Cmd) {
	if m.conf == nil || m.confPath == "" {
		m.statusMsg = "No file loaded"
		return m, nil
	}
	if err := conf.SaveFile(m.confPath, m.conf.Document()); err != nil {
		m.statusMsg = "Save failed: " + err.Error()
		return m, nil
	}
	m.dirty = false
	m.statusMsg = "Saved " + m.confPath
	if m.target != nil {
		m.target.SetFromModel(m.conf)
	}
	m.savePrefs()
	return m, nil
}

// savePrefs persists the current theme and config path.
func (m Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		ConfPath: m.confPath,
	})
}

// refreshLogs returns a command that re-reads the debug log tail.
func (m Model) refreshLogs() tea.Cmd {
	model := m.conf
	return func() tea.Msg {
		path := logtail.DebugLogPath(model)
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{path: path, lines: lines, err: err}
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + health status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewOptions:
		return m.renderOptions()
	case ViewUnknown:
		return m.renderUnknown()
	case ViewLogs:
		return m.renderLogs()
	case ViewPicker:
		return m.renderPicker()
	default:
		return ""
	}
}

// contentHeight returns the rows left for content below the two header lines.
func contentHeight(total int) int {
	h := total - 2
	if h < 1 {
		h = 1
	}
	return h
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logLinesMsg struct {
	path  string
	lines []string
	err   error
}

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
