// Package tui is a terminal frontend for a search session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"reelfinder/errs"
	"reelfinder/movie"
	"reelfinder/search"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Titles fetches the full record of one title.
type Titles interface {
	Details(ctx context.Context, id string) (movie.Detail, error)
}

// StateMsg delivers a controller snapshot to the model.
type StateMsg search.State

// actionDoneMsg is returned once a controller call finishes.
type actionDoneMsg struct {
	state search.State
	err   error
}

type detailMsg struct {
	id     string
	detail movie.Detail
	err    error
}

type screen int

const (
	screenSearch screen = iota
	screenDetail
)

type Model struct {
	ctx     context.Context
	ctrl    *search.Controller
	titles  Titles
	initial search.Params

	input   textinput.Model
	spinner spinner.Model
	printer *message.Printer

	state     search.State
	cursor    int
	listFocus bool

	screen        screen
	detailID      string
	detail        movie.Detail
	detailErr     string
	detailLoading bool

	width int
}

func New(ctx context.Context, ctrl *search.Controller, titles Titles, initial search.Params) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for movies, TV series..."
	ti.CharLimit = 200
	ti.SetValue(initial.Query)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		titles:  titles,
		initial: initial,
		input:   ti,
		spinner: s,
		printer: message.NewPrinter(language.English),
		state:   ctrl.State(),
	}
}

// Subscribe forwards controller snapshots into a running program.
func Subscribe(ctrl *search.Controller, p *tea.Program) func() {
	return ctrl.Subscribe(func(s search.State) {
		p.Send(StateMsg(s))
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if strings.TrimSpace(m.initial.Query) != "" {
		p := m.initial
		cmds = append(cmds, m.do(func(ctx context.Context) error {
			return m.ctrl.Activate(ctx, p)
		}))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case StateMsg:
		m.applyState(search.State(msg))
		return m, nil

	case actionDoneMsg:
		m.applyState(msg.state)
		return m, nil

	case detailMsg:
		if msg.id != m.detailID {
			return m, nil
		}
		m.detailLoading = false
		m.detail = msg.detail
		m.detailErr = ""
		if msg.err != nil {
			m.detailErr = errs.ErrorMessage(msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenDetail {
			return m.updateDetail(msg)
		}
		if m.listFocus {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyState keeps the newest snapshot. Command results and subscription
// messages arrive in no particular order.
func (m *Model) applyState(s search.State) {
	if s.Version < m.state.Version {
		return
	}
	m.state = s
	if m.cursor >= len(s.Items) {
		m.cursor = max(len(s.Items)-1, 0)
	}
	if len(s.Items) == 0 && s.Status != search.StatusFailed {
		m.focusInput()
	}
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := m.input.Value()
		kind := m.state.Kind
		m.cursor = 0
		return m, m.do(func(ctx context.Context) error {
			return m.ctrl.SubmitSearch(ctx, query, kind)
		})
	case "tab":
		return m, m.cycleKind()
	case "esc", "down":
		if len(m.state.Items) > 0 || m.state.Status == search.StatusFailed {
			m.focusList()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "i":
		m.focusInput()
		return m, nil
	case "tab":
		return m, m.cycleKind()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focusInput()
		}
	case "down", "j":
		if m.cursor < len(m.state.Items)-1 {
			m.cursor++
		}
	case "left", "h":
		return m, m.changePage(m.state.Page - 1)
	case "right", "l":
		return m, m.changePage(m.state.Page + 1)
	case "r":
		return m, m.do(m.ctrl.RetryLastSearch)
	case "enter":
		if m.cursor < len(m.state.Items) {
			return m.openDetail(m.state.Items[m.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.screen = screenSearch
		return m, nil
	case "r":
		if m.detailErr != "" {
			return m.openDetail(m.detailID)
		}
	}
	return m, nil
}

func (m *Model) focusInput() {
	m.listFocus = false
	m.input.Focus()
}

func (m *Model) focusList() {
	m.listFocus = true
	m.input.Blur()
}

func (m Model) cycleKind() tea.Cmd {
	next := movie.Kinds[0]
	for i, k := range movie.Kinds {
		if k == m.state.Kind {
			next = movie.Kinds[(i+1)%len(movie.Kinds)]
			break
		}
	}
	return m.do(func(ctx context.Context) error {
		return m.ctrl.ChangeKindFilter(ctx, next)
	})
}

func (m Model) changePage(page int) tea.Cmd {
	p := m.state.Pager()
	if page < 1 || page > p.TotalPages() || page == m.state.Page {
		return nil
	}
	return m.do(func(ctx context.Context) error {
		return m.ctrl.ChangePage(ctx, page)
	})
}

func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	m.screen = screenDetail
	m.detailID = id
	m.detail = movie.Detail{}
	m.detailErr = ""
	m.detailLoading = true

	ctx, titles := m.ctx, m.titles
	return m, func() tea.Msg {
		d, err := titles.Details(ctx, id)
		return detailMsg{id: id, detail: d, err: err}
	}
}

// do runs a controller call off the event loop and reports the state it
// left behind.
func (m Model) do(fn func(ctx context.Context) error) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		err := fn(ctx)
		return actionDoneMsg{state: ctrl.State(), err: err}
	}
}

func (m Model) formatCount(n int) string {
	return m.printer.Sprintf("%d", n)
}

func (m Model) pagerLine() string {
	p := m.state.Pager()
	if p.Hidden() {
		return ""
	}

	var b strings.Builder
	if p.HasPrev() {
		b.WriteString("‹ Prev  ")
	} else {
		b.WriteString(styleDim.Render("‹ Prev") + "  ")
	}
	for _, mk := range p.Visible() {
		switch {
		case mk.Ellipsis:
			b.WriteString("… ")
		case mk.Page == p.Current:
			b.WriteString(styleCurrent.Render(fmt.Sprintf(" %d ", mk.Page)) + " ")
		default:
			fmt.Fprintf(&b, "%d ", mk.Page)
		}
	}
	if p.HasNext() {
		b.WriteString(" Next ›")
	} else {
		b.WriteString(styleDim.Render(" Next ›"))
	}
	return b.String()
}
