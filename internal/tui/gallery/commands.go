package gallery

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
)

// listenBridgeCmd waits for the next message produced by a scheduled
// callback. It returns nil once the model is closed.
func listenBridgeCmd(bridge <-chan tea.Msg, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-bridge:
			return msg
		case <-done:
			return nil
		}
	}
}

// waitThemeCmd waits for the next theme reload.
func waitThemeCmd(events <-chan config.ThemeEvent, done <-chan struct{}) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return ThemeErrorMsg{Err: ev.Err}
			}
			return ThemeReloadedMsg{Theme: ev.Theme}
		case <-done:
			return nil
		}
	}
}
