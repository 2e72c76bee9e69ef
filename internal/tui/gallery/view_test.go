package gallery

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestView_ShowsTabsAndActiveWidget(t *testing.T) {
	m := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 80, Height: 30})
	view := m.View()

	for tab := Tab(0); tab < tabCount; tab++ {
		assert.Contains(t, view, tab.String())
	}
	assert.Contains(t, view, "Accordion")
	assert.Contains(t, view, "▾ Shipping")
	assert.Contains(t, view, "Orders ship within two business days.")
	assert.Contains(t, view, "space toggle")
}

func TestView_FitsWindowWidth(t *testing.T) {
	m := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 60, Height: 30})

	card := strings.Split(m.View(), "\n")[1]
	assert.LessOrEqual(t, lipgloss.Width(card), 60)
}

func TestView_PerTab(t *testing.T) {
	tests := []struct {
		tab  Tab
		want []string
	}{
		{TabChips, []string{"Go", "Elixir"}},
		{TabSelect, []string{"(•) Banana", "( ) Apple"}},
		{TabRange, []string{"Price", "20 – 80"}},
		{TabPagination, []string{"[5]", "Next ›"}},
		{TabAutocomplete, []string{"Apple", "Blueberry"}},
		{TabStepper, []string{"● Cart", "○ Review"}},
		{TabButtons, []string{"Save", "Archived"}},
	}

	for _, tt := range tests {
		t.Run(tt.tab.String(), func(t *testing.T) {
			m := newTestModel(t)
			for m.Tab() != tt.tab {
				m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
			}
			view := m.View()
			for _, want := range tt.want {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestView_Toast(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, m.View(), "●")

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Contains(t, m.View(), "● all sections closed")
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "range", TabRange.String())
	assert.Equal(t, "unknown", Tab(42).String())
}
