// Package tui implements the interactive search agent.
package tui

import (
	"context"
	"maps"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/tui/themes"
)

// Model is the main TUI model.
type Model struct {
	ctx      context.Context
	err      error
	searcher Searcher
	catalog  *catalog.Catalog
	answers  map[string]string
	theme    themes.Theme
	query    string
	source   advisor.Source
	state    advisor.SearchState
	resp     advisor.SearchResponse
	keymap   KeyMap
	input    textinput.Model
	spinner  spinner.Model
	width    int
	height   int
	question int
	option   int
	card     int
	seq      int
	pending  tea.Cmd
}

// newModel creates a new TUI model.
func newModel(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Describe your space, goals, or budget..."
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:      ctx,
		searcher: cfg.Searcher,
		catalog:  cat,
		answers:  map[string]string{},
		theme:    cfg.Theme,
		state:    advisor.StateIdle,
		keymap:   DefaultKeyMap(),
		input:    ti,
		spinner:  sp,
		width:    cfg.Width,
		height:   cfg.Height,
		card:     -1,
	}

	if q := strings.TrimSpace(cfg.InitialQuery); q != "" {
		m.input.SetValue(q)
		m, m.pending = m.submit(q, nil, false)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.pending)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != advisor.StateUnderstanding {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchResultMsg:
		// Superseded by a newer search or a reset.
		if msg.seq != m.seq {
			return m, nil
		}
		return m.handleResult(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResult(msg searchResultMsg) Model {
	m.question = 0
	m.option = 0
	if msg.err != nil {
		m.err = msg.err
		m.resp = advisor.SearchResponse{}
		m.state = advisor.StateError
		return m
	}
	m.err = nil
	m.resp = msg.resp
	m.source = msg.source
	m.state = advisor.ClassifyState(msg.resp, msg.answering)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NewSearch):
		return m.reset(), textinput.Blink
	}

	switch m.state {
	case advisor.StateUnderstanding:
		return m, nil
	case advisor.StateNeedsClarification:
		return m.handleClarifyKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Next):
		m.card++
		if m.card >= len(advisor.QuickCards) {
			m.card = -1
		}
		return m, nil
	case key.Matches(msg, m.keymap.Submit):
		query := m.input.Value()
		if m.card >= 0 {
			query = advisor.QuickCards[m.card].Query
			m.input.SetValue(query)
			m.card = -1
		}
		return m.submit(query, nil, false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleClarifyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := m.resp.ClarifyingQuestions
	if len(questions) == 0 {
		return m, nil
	}
	options := questions[m.question].Options

	switch {
	case key.Matches(msg, m.keymap.Up, m.keymap.Left):
		if len(options) > 0 {
			m.option = (m.option - 1 + len(options)) % len(options)
		}
	case key.Matches(msg, m.keymap.Down, m.keymap.Right):
		if len(options) > 0 {
			m.option = (m.option + 1) % len(options)
		}
	case key.Matches(msg, m.keymap.Next):
		m.question = (m.question + 1) % len(questions)
		m.option = 0
	case key.Matches(msg, m.keymap.Submit):
		if len(options) == 0 {
			return m, nil
		}
		q := questions[m.question]
		return m.submit(m.query, map[string]string{q.ID: options[m.option]}, true)
	}
	return m, nil
}

// submit starts a search for query with extra answers merged in.
func (m Model) submit(query string, extra map[string]string, answering bool) (Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" && len(extra) == 0 {
		return m, nil
	}
	if m.searcher == nil {
		return m, nil
	}

	merged := maps.Clone(m.answers)
	if merged == nil {
		merged = map[string]string{}
	}
	maps.Copy(merged, extra)

	m.seq++
	m.query = query
	m.answers = merged
	m.err = nil
	m.state = advisor.StateUnderstanding

	req := advisor.SearchRequest{Query: query}
	if len(merged) > 0 {
		req.Answers = maps.Clone(merged)
	}
	return m, tea.Batch(m.spinner.Tick, m.searchCmd(req, answering))
}

func (m Model) reset() Model {
	m.seq++
	m.state = advisor.StateIdle
	m.query = ""
	m.answers = map[string]string{}
	m.resp = advisor.SearchResponse{}
	m.source = ""
	m.err = nil
	m.question = 0
	m.option = 0
	m.card = -1
	m.input.Reset()
	m.input.Focus()
	return m
}

// State returns the current search state.
func (m Model) State() advisor.SearchState {
	return m.state
}
