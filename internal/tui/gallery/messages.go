package gallery

import "github.com/alexisbeaulieu97/widgetkit/internal/ui/components"

// Tab identifies one widget page of the gallery.
type Tab int

const (
	TabAccordion Tab = iota
	TabChips
	TabSelect
	TabRange
	TabPagination
	TabAutocomplete
	TabStepper
	TabButtons
	tabCount
)

var tabNames = [tabCount]string{
	"accordion", "chips", "select", "range", "pagination", "autocomplete", "stepper", "buttons",
}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "unknown"
	}
	return tabNames[t]
}

// ThemeReloadedMsg carries a theme rebuilt from a changed theme file.
type ThemeReloadedMsg struct {
	Theme components.Theme
}

// ThemeErrorMsg reports a theme file that failed to reload.
type ThemeErrorMsg struct {
	Err error
}

// toastExpiredMsg clears the toast with the matching id.
type toastExpiredMsg struct {
	id int
}

// rippleDoneMsg releases the pressed button at index.
type rippleDoneMsg struct {
	index int
}
