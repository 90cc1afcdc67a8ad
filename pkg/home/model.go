// Package home is the interactive home screen: date picker, quote card and
// task list, plus the animated "Create New" drawer layered on top.
package home

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/wingsfly/internal/drawer"
	"github.com/marcus/wingsfly/internal/mockdata"
	"github.com/marcus/wingsfly/internal/models"
	"github.com/marcus/wingsfly/internal/selection"
	"github.com/marcus/wingsfly/pkg/home/mouse"
	"github.com/marcus/wingsfly/pkg/home/sheet"
)

// statusTTL is how long a status message stays on screen
const statusTTL = 2 * time.Second

// FrameMsg advances the drawer animation. Frames from a superseded chain
// carry a stale Gen and are dropped.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// Option configures a Model
type Option func(*Model)

// WithClock replaces time.Now for input handling
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLogger sets the logger shared with the drawer
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithTasks seeds the task list
func WithTasks(tasks []models.Task) Option {
	return func(m *Model) { m.Tasks = tasks }
}

// WithDates seeds the date picker
func WithDates(dates []models.DateEntry) Option {
	return func(m *Model) { m.dates = dates }
}

// Model is the home screen
type Model struct {
	Width  int
	Height int

	Config models.Config
	Tasks  []models.Task

	// TaskCursor is the highlighted card among the visible tasks
	TaskCursor int

	Selection *selection.Model
	Drawer    *drawer.Controller
	Sheet     *sheet.Sheet

	// SheetCursor is the keyboard-focused drawer option
	SheetCursor int
	hoverOption int

	StatusMessage string
	StatusIsError bool

	HelpOpen bool
	helpView viewport.Model

	SearchActive bool
	search       textinput.Model
	// filter holds indexes into Tasks; nil shows everything
	filter []int

	form *createForm

	dates    []models.DateEntry
	taskView viewport.Model
	progress progress.Model
	help     help.Model
	keys     keyMap
	mouse    *mouse.Handler

	frameGen int
	ticking  bool

	now func() time.Time
	log *slog.Logger
}

// New builds the home screen. The drawer's visibility is driven by the
// selection model: RequestAdd opens it and the drawer reports back through
// DrawerClosed once its close animation settles.
func New(cfg models.Config, opts ...Option) Model {
	m := Model{
		Config:      cfg,
		Tasks:       mockdata.Tasks(),
		dates:       mockdata.Dates(),
		hoverOption: -1,
		keys:        defaultKeyMap(),
		help:        help.New(),
		mouse:       mouse.NewHandler(),
		taskView:    viewport.New(0, 0),
		helpView:    viewport.New(0, 0),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		now:         time.Now,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&m)
	}

	ti := textinput.New()
	ti.Placeholder = "search tasks"
	ti.Prompt = searchPrompt.Render("/ ")
	ti.CharLimit = 64
	m.search = ti

	sel := selection.New(m.dates)
	log := m.log
	m.Selection = sel
	m.Sheet = sheet.New(mockdata.DrawerOptions())
	m.Drawer = drawer.New(
		drawer.ConfigFrom(cfg.Drawer, 0),
		drawer.WithLogger(log),
		drawer.WithOnClose(func() {
			log.Debug("drawer closed")
			sel.DrawerClosed()
		}),
		drawer.WithOnOptionSelect(func(opt models.SelectableOption) {
			log.Info("create option chosen", "id", opt.ID, "title", opt.Title)
			sel.OptionSelected(opt)
		}),
	)

	// Only changes of the requested visibility reach the drawer, so unrelated
	// selection updates never reopen a closing panel.
	ctrl, clock := m.Drawer, m.now
	open := sel.DrawerOpen()
	sel.Subscribe(func(s selection.State) {
		if s.DrawerOpen == open {
			return
		}
		open = s.DrawerOpen
		ctrl.SetVisible(open, clock())
	})

	m.refreshTasks()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Drawer.SetViewportHeight(float64(msg.Height) * m.Config.Screen.RowHeight)
		m.resize()
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Internal messages of the embedded components
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.SearchActive {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.frameGen {
		return m, nil
	}

	var cmds []tea.Cmd
	if m.Drawer.Tick(msg.Time) {
		cmds = append(cmds, m.frameCmd())
	} else {
		m.ticking = false
	}

	if cmd := m.consumeOption(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// ensureTicking starts a frame chain if the drawer is animating and none is
// running
func (m *Model) ensureTicking() tea.Cmd {
	if !m.Drawer.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	m.frameGen++
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	gen := m.frameGen
	fps := m.Config.Screen.FPS
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

// consumeOption opens the create form for an option picked in the drawer,
// once the drawer has finished closing
func (m *Model) consumeOption() tea.Cmd {
	st := m.Selection.State()
	if st.DrawerOpen || st.LastOption == nil {
		return nil
	}
	opt := *st.LastOption
	m.Selection.ClearOption()
	return m.openForm(opt)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	now := m.now()

	switch {
	case m.form != nil:
		return m.updateForm(msg)
	case m.HelpOpen:
		if key.Matches(msg, m.keys.Back, m.keys.Help, m.keys.Quit) {
			m.HelpOpen = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	case m.SearchActive:
		return m.updateSearch(msg)
	case m.Drawer.Phase().Visible():
		return m.handleDrawerKey(msg, now)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.SheetCursor = 0
		m.Selection.RequestAdd()
	case key.Matches(msg, m.keys.PrevDate):
		m.shiftDate(-1)
	case key.Matches(msg, m.keys.NextDate):
		m.shiftDate(1)
	case key.Matches(msg, m.keys.Today):
		if cmd := m.jumpToday(); cmd != nil {
			return m, cmd
		}
	case key.Matches(msg, m.keys.Up):
		m.moveTaskCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveTaskCursor(1)
	case key.Matches(msg, m.keys.Select):
		cmd := m.pressTask()
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		cmd := m.startSearch()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
	case key.Matches(msg, m.keys.Back):
		m.clearSearch()
	}

	cmd := m.ensureTicking()
	return m, cmd
}

func (m Model) handleDrawerKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		m.Drawer.Close(now)
	default:
		if id, _ := m.Sheet.HandleKey(msg.String(), &m.SheetCursor); id != "" {
			if opt, ok := m.Sheet.Option(id); ok {
				m.Drawer.SelectOption(opt, now)
			}
		}
	}
	cmd := m.ensureTicking()
	return m, cmd
}

// shiftDate moves the selection along the picker, clamped to its ends
func (m *Model) shiftDate(delta int) {
	dates := m.Selection.Dates()
	if len(dates) == 0 {
		return
	}
	idx := m.Selection.SelectedIndex() + delta
	if m.Selection.SelectedIndex() < 0 {
		idx = 0
	}
	idx = max(0, min(idx, len(dates)-1))
	m.Selection.SelectDate(dates[idx])
	m.log.Debug("date selected", "value", dates[idx].Value)
}

func (m *Model) jumpToday() tea.Cmd {
	day := m.now().Day()
	for _, d := range m.Selection.Dates() {
		if d.Value == day {
			m.Selection.SelectDate(d)
			return nil
		}
	}
	return m.setStatus(fmt.Sprintf("Today (%d) is not in this week", day), true)
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMessage = msg
	m.StatusIsError = isErr
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// resize lays out the scrollable parts after a size change
func (m *Model) resize() {
	m.taskView.Width = m.Width
	m.taskView.Height = max(m.Height-tasksTop-footerRows, 1)
	m.progress.Width = max(m.Width-cardStyle.GetHorizontalFrameSize()-2, 4)
	m.help.Width = m.Width
	if m.HelpOpen {
		m.openHelp()
	}
	if m.form != nil {
		m.form.form.WithWidth(m.formWidth())
	}
	m.refreshTasks()
}
