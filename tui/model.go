// Package tui is the interactive terminal host for a counting session.
//
// The model forwards key presses to a session.Session and re-renders from a
// snapshot after every transition. Nothing here holds counting state of its
// own besides the reset confirmation prompt.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robinvdvleuten/cashcount/currency"
	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/output"
	"github.com/robinvdvleuten/cashcount/session"
)

// Model is the bubbletea model of the counting screen.
type Model struct {
	session *session.Session
	styles  *output.Styles
	format  currency.Formatter
	keys    keyMap
	help    help.Model
	title   string

	cursor       denomination.ID
	confirmReset bool
	export       bool
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the styles used for rendering.
func WithStyles(styles *output.Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithCurrency sets the currency formatter.
func WithCurrency(f currency.Formatter) Option {
	return func(m *Model) {
		m.format = f
	}
}

// WithTitle sets the header text.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// New creates a counting screen over s.
func New(s *session.Session, styles *output.Styles, opts ...Option) Model {
	m := Model{
		session: s,
		styles:  styles,
		format:  currency.AUD,
		keys:    defaultKeyMap(),
		help:    help.New(),
		title:   "AUD Cash Counter",
		cursor:  s.Registry().First().ID,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// ExportRequested reports whether the user quit with the export key.
func (m Model) ExportRequested() bool {
	return m.export
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.confirmReset {
			return m.updateConfirm(msg), nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.session.Reset()
		m.confirmReset = false
	case key.Matches(msg, m.keys.Cancel):
		m.confirmReset = false
	}
	return m
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Export):
		m.export = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.confirmReset = true
	case key.Matches(msg, m.keys.Float):
		s.ToggleFloatEdit()
	case key.Matches(msg, m.keys.Advance):
		s.Advance()
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Toggle):
		m.selectRow(m.cursor)
	case key.Matches(msg, m.keys.DoubleZero):
		s.PressKey(session.KeyDoubleZero)
	case key.Matches(msg, m.keys.Backspace):
		s.PressKey(session.KeyBackspace)
	case key.Matches(msg, m.keys.Digit):
		if k, ok := session.ParseKey(msg.String()); ok {
			s.PressKey(k)
		}
	}

	if id, ok := s.Target(); ok {
		m.cursor = id
	}
	return m, nil
}

// move selects the row above (-1) or below (+1) the active one. From idle
// or the float editor it starts at the cursor row.
func (m *Model) move(delta int) {
	reg := m.session.Registry()

	id, editing := m.session.Target()
	if !editing {
		m.selectRow(m.cursor)
		return
	}

	var (
		d  denomination.Descriptor
		ok bool
	)
	if delta < 0 {
		d, ok = reg.Previous(id)
	} else {
		d, ok = reg.Next(id)
	}
	if ok {
		m.selectRow(d.ID)
	}
}

func (m *Model) selectRow(id denomination.ID) {
	m.session.SelectDenomination(id)
	m.cursor = id
}
