package ui

import (
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes a key to the open modal, or to the panels when no modal
// is open. Keys are dropped while a request is in flight.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.busy {
		if !m.session.ModalOpen() && key.Matches(keyMsg, m.keys.ForceQuit) {
			return m.quit()
		}
		events.UI.KeyDropped(keyMsg.String(), "busy")
		return nil
	}
	switch modal := m.session.Modal.(type) {
	case *state.ConfirmModal:
		return m.handleConfirmKey(modal, keyMsg)
	case *state.RemoteForm:
		return m.handleFormKey(modal, keyMsg)
	}
	return m.handlePanelKey(keyMsg)
}
