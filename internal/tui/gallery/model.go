package gallery

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	"github.com/alexisbeaulieu97/widgetkit/internal/state"
	"github.com/alexisbeaulieu97/widgetkit/internal/timer"
	"github.com/alexisbeaulieu97/widgetkit/internal/ui/components"
)

const (
	toastTTL       = 2 * time.Second
	rippleDuration = 300 * time.Millisecond
	rangeStep      = 5
	defaultWidth   = 72
)

// Options configures a gallery model.
type Options struct {
	Theme components.Theme
	// ThemeEvents delivers reloaded themes; nil disables hot reload.
	ThemeEvents <-chan config.ThemeEvent
	Logger      *logger.Logger
}

// Model is the gallery bubbletea model.
type Model struct {
	// Widgets
	accordion *components.Accordion
	chips     *components.ChipFilter
	selector  *components.Select
	slider    *components.RangeSlider
	pages     *components.Pagination
	search    *components.Autocomplete
	steps     *components.StepperView
	buttons   []*components.Button
	presses   []func() bool
	buttonIdx int
	query     textinput.Model

	// UI state
	theme components.Theme
	tab   Tab
	keys  KeyMap
	help  help.Model

	// Toasts
	toast   string
	toastID int
	changes *changeFeed

	// Async plumbing
	sched       *timer.Scheduler
	bridge      chan tea.Msg
	done        chan struct{}
	closeOnce   *sync.Once
	themeEvents <-chan config.ThemeEvent

	log *logger.Logger

	// Dimensions
	width  int
	height int
}

// changeFeed collects the notifications widgets emit during one update.
type changeFeed struct {
	lines []string
}

func (f *changeFeed) push(format string, args ...any) {
	f.lines = append(f.lines, fmt.Sprintf(format, args...))
}

func (f *changeFeed) drain() []string {
	lines := f.lines
	f.lines = nil
	return lines
}

// NewModel creates a gallery with a demo widget on every tab.
func NewModel(opts Options) Model {
	feed := &changeFeed{}

	accordion := components.NewAccordion(false,
		components.AccordionSection{ID: "shipping", Title: "Shipping", Body: "Orders ship within two business days."},
		components.AccordionSection{ID: "returns", Title: "Returns", Body: "Returns are accepted for thirty days."},
		components.AccordionSection{ID: "warranty", Title: "Warranty", Body: "Every product carries a one year warranty."},
	).WithOpen("shipping").OnChange(func(open state.ActiveSet[string]) {
		if open.Len() == 0 {
			feed.push("all sections closed")
			return
		}
		feed.push("open: %s", strings.Join(open.IDs(), ", "))
	})

	chips := components.NewChipFilter([]components.Chip{
		{ID: "go", Label: "Go"},
		{ID: "rust", Label: "Rust"},
		{ID: "zig", Label: "Zig"},
		{ID: "ocaml", Label: "OCaml"},
		{ID: "elixir", Label: "Elixir"},
	}, "go").OnChange(func(selected []components.Chip) {
		labels := make([]string, 0, len(selected))
		for _, c := range selected {
			labels = append(labels, c.Label)
		}
		if len(labels) == 0 {
			feed.push("no filters")
			return
		}
		feed.push("filters: %s", strings.Join(labels, ", "))
	})

	fruits := []state.Option{
		{Value: "apple", Label: "Apple"},
		{Value: "apricot", Label: "Apricot"},
		{Value: "banana", Label: "Banana"},
		{Value: "blueberry", Label: "Blueberry"},
		{Value: "cherry", Label: "Cherry"},
		{Value: "grape", Label: "Grape"},
	}
	selector := components.NewSelect(fruits[:4], "banana", func(v string) {
		feed.push("selected %s", v)
	})
	search := components.NewAutocomplete(fruits, 4, func(v string) {
		feed.push("accepted %s", v)
	})

	// Fixed bounds, cannot fail.
	slider, _ := components.NewRangeSlider("Price", 0, 100, 20, 80)

	pages := components.NewPagination(5, 12).OnChange(func(page int) {
		feed.push("page %d", page)
	})

	steps := components.NewStepperView(state.NewStepper("Cart", "Shipping", "Payment", "Review"))

	buttons := []*components.Button{
		components.NewButton("Save").WithVariant(components.ButtonVariantPrimary),
		components.NewButton("Cancel").WithVariant(components.ButtonVariantSecondary),
		components.NewButton("Delete").WithVariant(components.ButtonVariantError),
		components.NewButton("Archived").WithVariant(components.ButtonVariantMuted).WithDisabled(true),
	}
	buttons[0].WithActive(true)

	sched := timer.NewScheduler()
	bridge := make(chan tea.Msg, 8)
	done := make(chan struct{})

	// A press lasts one ripple; repeats inside it are dropped.
	presses := make([]func() bool, len(buttons))
	for i, b := range buttons {
		presses[i] = timer.Throttle(sched, rippleDuration, func() {
			b.Press()
			feed.push("pressed %s", b.Label())
			deliver(sched, bridge, done, rippleDuration, rippleDoneMsg{index: i})
		})
	}

	query := textinput.New()
	query.Placeholder = "type to filter fruit"
	query.Prompt = ""
	query.CharLimit = 32

	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}

	return Model{
		accordion:   accordion,
		chips:       chips,
		selector:    selector,
		slider:      slider,
		pages:       pages,
		search:      search,
		steps:       steps,
		buttons:     buttons,
		presses:     presses,
		query:       query,
		theme:       theme,
		tab:         TabAccordion,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		changes:     feed,
		sched:       sched,
		bridge:      bridge,
		done:        done,
		closeOnce:   &sync.Once{},
		themeEvents: opts.ThemeEvents,
		log:         opts.Logger.With("component", "gallery"),
		width:       defaultWidth,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listenBridgeCmd(m.bridge, m.done),
		waitThemeCmd(m.themeEvents, m.done),
	)
}

// Close cancels pending toasts and ripples and stops the message bridge.
// It is safe to call more than once.
func (m Model) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.sched.Close()
	})
}

// Tab returns the active tab.
func (m Model) Tab() Tab {
	return m.tab
}

// Toast returns the current status line, empty once it has faded.
func (m Model) Toast() string {
	return m.toast
}

// Theme returns the theme used for rendering.
func (m Model) Theme() components.Theme {
	return m.theme
}

// raise shows text as the toast and schedules it to fade.
func (m *Model) raise(text string) {
	m.toastID++
	m.toast = text
	m.after(toastTTL, toastExpiredMsg{id: m.toastID})
}

// flushChanges turns widget notifications into a toast.
func (m *Model) flushChanges() {
	lines := m.changes.drain()
	if len(lines) == 0 {
		return
	}
	last := lines[len(lines)-1]
	m.log.With("tab", m.tab.String()).Debug(last)
	m.raise(last)
}

// after delivers msg to the program once d has elapsed, unless the model
// is closed first.
func (m *Model) after(d time.Duration, msg tea.Msg) {
	deliver(m.sched, m.bridge, m.done, d, msg)
}

func deliver(sched *timer.Scheduler, bridge chan<- tea.Msg, done <-chan struct{}, d time.Duration, msg tea.Msg) {
	sched.After(d, func() {
		select {
		case bridge <- msg:
		case <-done:
		}
	})
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme).WithWidth(m.width)
}
