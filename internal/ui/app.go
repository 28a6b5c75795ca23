package ui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/itemdeck/internal/catalog"
	"github.com/five82/itemdeck/internal/config"
	"github.com/five82/itemdeck/internal/engine"
	"github.com/five82/itemdeck/internal/logtail"
	"github.com/five82/itemdeck/internal/prefs"
	"github.com/five82/itemdeck/internal/state"
)

// focusTarget is the widget receiving keystrokes.
type focusTarget int

const (
	focusGallery focusTarget = iota
	focusSearch
	focusFrom
	focusTo
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Assets    catalog.AssetChecker // nil disables asset probing
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    zerolog.Logger
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	assets    catalog.AssetChecker
	log       zerolog.Logger
	logFile   string
	prefsPath string
	pollTick  time.Duration

	session *engine.Session
	keys    keyMap

	// UI state
	theme     Theme
	cardWidth int
	width     int
	height    int
	ready     bool

	search  textinput.Model
	from    textinput.Model
	to      textinput.Model
	focus   focusTarget
	spinner spinner.Model

	// Gallery state
	selected int
	scroll   int                // first visible row
	probed   map[int64]struct{} // asset probes issued since the last Back
	probeGen int                // bumped on Back; older probe results are dropped

	showHelp bool
	showLogs bool
	logLines []string
	logErr   error

	notice string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultPollTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}
	if p.CardWidth == 0 {
		p.CardWidth = prefs.DefaultCardWidth
	}

	cfg := opts.Config
	search := textinput.New()
	search.Placeholder = "search by name or ID…"
	search.CharLimit = 64
	search.Width = 32

	from := textinput.New()
	from.Prompt = ""
	from.CharLimit = 16
	from.Width = 8
	from.SetValue(strconv.FormatInt(cfg.RangeStart, 10))

	to := textinput.New()
	to.Prompt = ""
	to.CharLimit = 16
	to.Width = 8
	to.SetValue(strconv.FormatInt(cfg.RangeEnd, 10))

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		assets:    opts.Assets,
		log:       opts.Logger,
		logFile:   cfg.LogFile,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		session:   engine.NewSession(cfg.AssetBase, cfg.BatchSize),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(p.Theme),
		cardWidth: prefs.ClampCardWidth(p.CardWidth),
		search:    search,
		from:      from,
		to:        to,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		probed:    make(map[int64]struct{}),
	}
	m.applyInputStyles()
	m.setFocus(focusSearch)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
		textinput.Blink,
	}
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
		m.ready = true
		cmd := m.settle()
		return m, cmd

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case spinner.TickMsg:
		if m.session.Readiness().Terminal() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case assetErrorMsg:
		if msg.gen != m.probeGen {
			m.log.Debug().Int64("id", msg.id).Msg("dropping asset result from a previous session")
			return m, nil
		}
		if m.session.AssetLoadError(msg.id) {
			m.log.Debug().Int64("id", msg.id).Err(msg.err).Msg("asset unavailable, hiding item")
		}
		cmd := m.settle()
		return m, cmd

	case logsMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard write failed")
			m.notice = "clipboard unavailable"
		} else {
			m.notice = "copied " + msg.text
		}
		return m, nil
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusFrom:
		m.from, cmd = m.from.Update(msg)
	case focusTo:
		m.to, cmd = m.to.Update(msg)
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
	if m.showLogs {
		return m.renderLogs()
	}
	if card, open := m.session.Overlay(); open {
		return m.renderOverlay(card)
	}
	return m.renderMain()
}

// handleKey routes a keystroke to whatever currently owns the keyboard.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if _, open := m.session.Overlay(); open {
		return m.handleOverlayKey(msg)
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}
	if m.focus != focusGallery {
		return m.handleInputKey(msg)
	}
	return m.handleGalleryKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		if m.session.State() != engine.Welcome {
			cmd := m.back()
			return m, cmd
		}
		m.setFocus(focusGallery)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.focus == focusSearch {
			if len(m.session.Rendered()) > 0 {
				m.setFocus(focusGallery)
			}
			return m, nil
		}
		cmd := m.submitRange()
		return m, cmd
	case msg.Type == tea.KeyDown && m.focus == focusSearch && m.session.GalleryVisible():
		m.setFocus(focusGallery)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			cmd = tea.Batch(cmd, m.searchChanged())
		}
	case focusFrom:
		m.from, cmd = m.from.Update(msg)
	case focusTo:
		m.to, cmd = m.to.Update(msg)
	}
	return m, cmd
}

func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := m.session.Rendered()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Search):
		if m.session.State() != engine.RangeActive {
			m.setFocus(focusSearch)
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Escape):
		cmd := m.back()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, m.tailLogCmd()
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyInputStyles()
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Wider):
		m.cardWidth = prefs.ClampCardWidth(m.cardWidth + 2)
		m.savePrefs()
	case key.Matches(msg, m.keys.Narrower):
		m.cardWidth = prefs.ClampCardWidth(m.cardWidth - 2)
		m.savePrefs()
	case key.Matches(msg, m.keys.Confirm):
		if m.selected < len(cards) {
			m.session.ItemActivated(cards[m.selected].ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Down):
		switch {
		case m.selected+cols < len(cards):
			m.selected += cols
		case m.selected/cols < (len(cards)-1)/cols:
			m.selected = len(cards) - 1
		}
	case key.Matches(msg, m.keys.Left):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Right):
		if m.selected < len(cards)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(cards) - 1
	default:
		return m, nil
	}
	cmd := m.settle()
	return m, cmd
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.session.OverlayDismissed()
		m.notice = ""
		cmd := m.settle()
		return m, cmd
	case key.Matches(msg, m.keys.CopyURL):
		card, _ := m.session.Overlay()
		return m, copyCmd(card.AssetRef)
	}
	return m, nil
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m, m.tailLogCmd()
	case key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Close):
		m.showLogs = false
	}
	return m, nil
}

// handleTick polls the load store until the catalog reaches a terminal state.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.store == nil || m.session.Readiness().Terminal() {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	switch snap.Readiness {
	case catalog.Ready:
		if m.session.CatalogLoaded(snap.Items) {
			m.log.Debug().Int("items", len(snap.Items)).Msg("catalog ready in session")
		}
	case catalog.Failed:
		if m.session.CatalogFailed(snap.LastError) {
			m.log.Debug().Err(snap.LastError).Msg("catalog unavailable in session")
		}
	}
	return m, nil
}

func (m *Model) searchChanged() tea.Cmd {
	m.session.QueryTextChanged(m.search.Value())
	m.selected, m.scroll = 0, 0
	if q := m.session.Query(); q != nil {
		m.log.Debug().Str("query", q.Describe()).Int("results", m.session.ResultCount()).Msg("query applied")
	}
	return m.settle()
}

func (m *Model) submitRange() tea.Cmd {
	low := engine.ParseBound(m.from.Value())
	high := engine.ParseBound(m.to.Value())
	if !m.session.RangeSubmit(low, high) {
		m.notice = rangeRefusal(m.session.Readiness())
		return nil
	}
	m.notice = ""
	m.selected, m.scroll = 0, 0
	m.setFocus(focusGallery)
	m.log.Debug().Str("query", m.session.Query().Describe()).Int("results", m.session.ResultCount()).Msg("query applied")
	return m.settle()
}

func (m *Model) back() tea.Cmd {
	if !m.session.Back() {
		return nil
	}
	m.search.SetValue("")
	m.probed = make(map[int64]struct{})
	m.probeGen++
	m.selected, m.scroll = 0, 0
	m.notice = ""
	m.setFocus(focusSearch)
	return nil
}

// settle runs after anything that changes the rendered set or the selection.
// It keeps the selection on screen and issues probes for new items.
func (m *Model) settle() tea.Cmd {
	cards := m.session.Rendered()
	m.selected = clamp(m.selected, 0, max(len(cards)-1, 0))
	m.ensureVisible(len(cards))
	if _, open := m.session.Overlay(); !open && m.ready {
		m.fillViewport()
	}
	return m.probeCmd()
}

func (m *Model) ensureVisible(n int) {
	if n == 0 {
		m.scroll = 0
		return
	}
	rows := m.visibleRows()
	row := m.selected / m.columns()
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+rows {
		m.scroll = row - rows + 1
	}
	m.scroll = clamp(m.scroll, 0, max(rowsFor(n, m.columns())-rows, 0))
}

// fillViewport reports viewport exhaustion while the last rendered row is on
// screen.
func (m *Model) fillViewport() {
	cols := m.columns()
	for m.session.GalleryVisible() && !m.session.Exhausted() {
		if rowsFor(len(m.session.Rendered()), cols) > m.scroll+m.visibleRows() {
			return
		}
		if !m.session.ViewportNearEnd() {
			return
		}
	}
}

// probeCmd checks the asset of every rendered item not yet probed.
func (m *Model) probeCmd() tea.Cmd {
	if m.assets == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, c := range m.session.Rendered() {
		if _, seen := m.probed[c.ID]; seen {
			continue
		}
		m.probed[c.ID] = struct{}{}
		cmds = append(cmds, probeAssetCmd(m.ctx, m.assets, c.ID, m.probeGen))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) focusOrder() []focusTarget {
	switch m.session.State() {
	case engine.Welcome:
		return []focusTarget{focusSearch, focusFrom, focusTo, focusGallery}
	case engine.SearchActive:
		return []focusTarget{focusSearch, focusGallery}
	default:
		return []focusTarget{focusGallery}
	}
}

func (m *Model) cycleFocus(step int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	m.setFocus(order[(idx+step+len(order))%len(order)])
}

func (m *Model) setFocus(f focusTarget) {
	m.focus = f
	m.search.Blur()
	m.from.Blur()
	m.to.Blur()
	switch f {
	case focusSearch:
		m.search.Focus()
	case focusFrom:
		m.from.Focus()
	case focusTo:
		m.to.Focus()
	}
}

func (m *Model) applyInputStyles() {
	for _, in := range []*textinput.Model{&m.search, &m.from, &m.to} {
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, CardWidth: m.cardWidth}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences failed")
	}
}

func (m Model) columns() int {
	if m.width <= 0 {
		return 1
	}
	return max((m.width+cardGap)/(m.cardWidth+cardGap), 1)
}

func (m Model) visibleRows() int {
	avail := m.height - chromeHeight - footerHeight - lipgloss.Height(m.renderPanel())
	return max(avail/cardHeight, 1)
}

func rowsFor(n, cols int) int {
	return (n + cols - 1) / cols
}

func rangeRefusal(r catalog.Readiness) string {
	switch r {
	case catalog.Loading:
		return "catalog is still loading"
	case catalog.Failed:
		return "catalog unavailable, range lookup disabled"
	default:
		return ""
	}
}

func (m Model) tailLogCmd() tea.Cmd {
	path := m.logFile
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsMsg{}
		}
		entries, err := logtail.Tail(path, LogTailLimit)
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, e.Format())
		}
		return logsMsg{lines: lines, err: err}
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type assetErrorMsg struct {
	id  int64
	gen int
	err error
}

type logsMsg struct {
	lines []string
	err   error
}

type clipboardMsg struct {
	text string
	err  error
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

func probeAssetCmd(ctx context.Context, assets catalog.AssetChecker, id int64, gen int) tea.Cmd {
	return func() tea.Msg {
		if err := assets.Check(ctx, id); err != nil {
			return assetErrorMsg{id: id, gen: gen, err: err}
		}
		return nil
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
