package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Scheduled callbacks
	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, listenBridgeCmd(m.bridge, m.done)

	case rippleDoneMsg:
		if msg.index >= 0 && msg.index < len(m.buttons) {
			m.buttons[msg.index].Release()
		}
		return m, listenBridgeCmd(m.bridge, m.done)

	// Theme hot reload
	case ThemeReloadedMsg:
		m.theme = msg.Theme
		m.log.With("theme", msg.Theme.Name).Debug("theme reloaded")
		m.raise(fmt.Sprintf("theme %q reloaded", msg.Theme.Name))
		return m, waitThemeCmd(m.themeEvents, m.done)

	case ThemeErrorMsg:
		m.log.Error(msg.Err, "theme reload failed")
		m.raise(fmt.Sprintf("theme error: %v", msg.Err))
		return m, waitThemeCmd(m.themeEvents, m.done)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case msg.Type == tea.KeyCtrlC:
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		cmd = m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		cmd = m.switchTab(-1)
	case m.tab == TabAutocomplete:
		cmd = m.handleQueryKey(msg)
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		m.handleWidgetKey(msg)
	}

	m.flushChanges()
	return m, cmd
}

func (m *Model) switchTab(delta int) tea.Cmd {
	m.tab = Tab(wrap(int(m.tab)+delta, int(tabCount)))
	if m.tab == TabAutocomplete {
		return m.query.Focus()
	}
	m.query.Blur()
	return nil
}

// handleQueryKey routes keys on the autocomplete tab. Letters go to the
// query input, so only arrows and enter act on the list.
func (m *Model) handleQueryKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyUp:
		m.search.MoveCursor(-1)
		return nil
	case tea.KeyDown:
		m.search.MoveCursor(1)
		return nil
	case tea.KeyEnter:
		if opt, ok := m.search.Accept(); ok {
			m.query.SetValue(opt.Label)
			m.search.SetQuery(opt.Label)
		} else {
			m.changes.push("no match for %q", m.search.Query())
		}
		return nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if q := m.query.Value(); q != m.search.Query() {
		m.search.SetQuery(q)
	}
	return cmd
}

func (m *Model) handleWidgetKey(msg tea.KeyMsg) {
	keys := m.keys

	switch m.tab {
	case TabAccordion:
		switch {
		case key.Matches(msg, keys.Up):
			m.accordion.MoveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.accordion.MoveCursor(1)
		case key.Matches(msg, keys.Toggle):
			m.accordion.ToggleFocused()
		}

	case TabChips:
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
			m.chips.MoveCursor(-1)
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
			m.chips.MoveCursor(1)
		case key.Matches(msg, keys.Toggle):
			m.chips.ToggleFocused()
		}

	case TabSelect:
		switch {
		case key.Matches(msg, keys.Up):
			m.selector.MoveCursor(-1)
		case key.Matches(msg, keys.Down):
			m.selector.MoveCursor(1)
		case key.Matches(msg, keys.Toggle):
			m.selector.Choose()
		}

	case TabRange:
		model := m.slider.Model()
		var low, high int
		switch {
		case key.Matches(msg, keys.LowDown):
			low, high = m.slider.SetLow(model.Low() - rangeStep)
		case key.Matches(msg, keys.LowUp):
			low, high = m.slider.SetLow(model.Low() + rangeStep)
		case key.Matches(msg, keys.HighDown):
			low, high = m.slider.SetHigh(model.High() - rangeStep)
		case key.Matches(msg, keys.HighUp):
			low, high = m.slider.SetHigh(model.High() + rangeStep)
		default:
			return
		}
		m.changes.push("price %d – %d", low, high)

	case TabPagination:
		switch {
		case key.Matches(msg, keys.Left):
			m.pages.Prev()
		case key.Matches(msg, keys.Right):
			m.pages.Next()
		}

	case TabStepper:
		stepper := m.steps.Stepper()
		switch {
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Toggle):
			stepper.Next()
		case key.Matches(msg, keys.Left):
			stepper.Back()
		default:
			return
		}
		if stepper.Done() {
			m.changes.push("all steps complete")
			return
		}
		m.changes.push("step: %s", stepper.Current())

	case TabButtons:
		switch {
		case key.Matches(msg, keys.Left):
			m.focusButton(m.buttonIdx - 1)
		case key.Matches(msg, keys.Right):
			m.focusButton(m.buttonIdx + 1)
		case key.Matches(msg, keys.Toggle):
			m.pressButton()
		}
	}
}

func (m *Model) focusButton(i int) {
	m.buttons[m.buttonIdx].WithActive(false)
	m.buttonIdx = wrap(i, len(m.buttons))
	m.buttons[m.buttonIdx].WithActive(true)
}

// pressButton shows the ripple on the focused button until rippleDoneMsg.
// Presses while the ripple is still showing are ignored.
func (m *Model) pressButton() {
	b := m.buttons[m.buttonIdx]
	if b.IsDisabled() {
		m.changes.push("%s is disabled", b.Label())
		return
	}
	m.presses[m.buttonIdx]()
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
