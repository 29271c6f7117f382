package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrtajniak/AvidDNxRecommender/catalog"
	"github.com/mrtajniak/AvidDNxRecommender/matcher"
)

// State represents the current application state
type State int

const (
	StateSelecting State = iota
	StateEntering
	StateResults
)

// step indexes the wizard questions, in the order they are asked
type step int

const (
	stepFrameRate step = iota
	stepResolution
	stepChroma
	stepDepth
	stepPreference
	stepCount
)

// option is one selectable answer for a wizard step. A custom option
// opens free-form text entry instead of carrying a value.
type option struct {
	label  string
	value  string
	custom bool
}

// Model is the Bubble Tea model for the TUI
type Model struct {
	Catalog catalog.Catalog
	State   State
	Step    step
	Cursor  int
	Input   textinput.Model
	Results viewport.Model
	Width   int
	Height  int

	Query   matcher.Query
	Matches []catalog.Profile
	Relaxed bool

	// Display labels of the answers given so far
	answers [stepCount]string
}

// NewModel creates a new TUI model over a validated catalog
func NewModel(cat catalog.Catalog) Model {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 28

	vp := viewport.New(80, 16)
	vp.SetContent("")

	return Model{
		Catalog: cat,
		State:   StateSelecting,
		Step:    stepFrameRate,
		Input:   ti,
		Results: vp,
	}
}

// Init initializes the Bubble Tea program
func (m Model) Init() tea.Cmd {
	return nil
}

// options returns the selectable answers for the current step. Frame
// rates and resolutions come from the catalog so the list always mirrors
// the capability matrix; both also offer free-form entry.
func (m Model) options() []option {
	switch m.Step {
	case stepFrameRate:
		var opts []option
		for _, fps := range m.Catalog.FrameRates() {
			opts = append(opts, option{label: matcher.DisplayFrameRate(fps), value: fps})
		}
		return append(opts, option{label: "Other…", custom: true})

	case stepResolution:
		var opts []option
		for _, res := range m.Catalog.Resolutions() {
			opts = append(opts, option{label: res, value: res})
		}
		return append(opts, option{label: "Other…", custom: true})

	case stepChroma:
		return []option{
			{label: "4:2:2", value: "4:2:2"},
			{label: "4:4:4", value: "4:4:4"},
			{label: "4:2:0 (matched as 4:2:2)", value: "4:2:0"},
		}

	case stepDepth:
		return []option{
			{label: "8-bit", value: "8-bit"},
			{label: "10-bit", value: "10-bit"},
			{label: "12-bit", value: "12-bit"},
		}

	default: // stepPreference
		return []option{
			{label: "Space — smallest files", value: "Space"},
			{label: "Balanced — middle ground", value: "Balanced"},
			{label: "Quality — best fidelity", value: "Quality"},
			{label: "No preference", value: "Skip"},
		}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.State {
		case StateSelecting:
			return m.updateSelecting(msg)
		case StateEntering:
			return m.updateEntering(msg)
		case StateResults:
			return m.updateResults(msg)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Results.Width = msg.Width - 4

		resultHeight := msg.Height - 12
		if resultHeight < 4 {
			resultHeight = 4
		}
		m.Results.Height = resultHeight
	}

	return m, nil
}

func (m Model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := m.options()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}

	case "down", "j":
		if m.Cursor < len(opts)-1 {
			m.Cursor++
		}

	case "esc":
		if m.Step > 0 {
			m.Step--
			m.Cursor = 0
		}

	case "enter":
		chosen := opts[m.Cursor]
		if chosen.custom {
			m.Input.SetValue("")
			m.Input.Placeholder = customPlaceholder(m.Step)
			m.State = StateEntering
			return m, m.Input.Focus()
		}
		return m.answer(chosen.label, chosen.value), nil
	}

	return m, nil
}

func (m Model) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.Input.Blur()
		m.State = StateSelecting
		return m, nil

	case "enter":
		value := m.Input.Value()
		if value == "" {
			return m, nil
		}
		m.Input.Blur()
		m.State = StateSelecting
		return m.answer(value, value), nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter":
		return m, tea.Quit

	case "r":
		// Start over with a fresh query
		fresh := NewModel(m.Catalog)
		fresh.Width = m.Width
		fresh.Height = m.Height
		return fresh, nil
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.Update(msg)
	return m, cmd
}

// answer records the current step's value, normalized where the matcher
// preconditions require it, and advances the wizard. After the last
// step it runs the match.
func (m Model) answer(label, value string) Model {
	switch m.Step {
	case stepFrameRate:
		m.Query.FrameRate = matcher.NormalizeFrameRate(value)
	case stepResolution:
		m.Query.Resolution = matcher.NormalizeResolution(value)
	case stepChroma:
		// 4:2:0 is disallowed downstream; normalized before matching
		m.Query.Chroma = matcher.NormalizeChroma(value)
	case stepDepth:
		m.Query.BitDepth = value
	case stepPreference:
		m.Query.Preference = matcher.NormalizePreference(value)
	}
	m.answers[m.Step] = label

	if m.Step < stepPreference {
		m.Step++
		m.Cursor = 0
		return m
	}
	return m.runMatch()
}

// runMatch executes both passes explicitly so the results screen can
// report when the relaxed fallback produced the recommendation.
func (m Model) runMatch() Model {
	m.Matches = matcher.MatchPass(m.Catalog, m.Query, false)
	m.Relaxed = false
	if len(m.Matches) == 0 {
		m.Matches = matcher.MatchPass(m.Catalog, m.Query, true)
		m.Relaxed = true
	}

	m.Results.SetContent(m.renderMatches())
	m.Results.GotoTop()
	m.State = StateResults
	return m
}

func customPlaceholder(s step) string {
	if s == stepFrameRate {
		return "e.g. 25, 23.976 or 24000/1001"
	}
	return "e.g. 1920x1080"
}
