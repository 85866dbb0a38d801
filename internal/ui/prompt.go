package ui

import (
	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleConfirmKey drives the delete confirmation. The modal closes as soon as
// Enter is pressed; a failed delete is reported on the status line.
func (m *Model) handleConfirmKey(c *state.ConfirmModal, msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Confirm
	switch {
	case key.Matches(msg, k.Cancel):
		target := m.session.PendingDelete
		m.closeModal()
		events.Remote.DeleteCancel(target)
	case key.Matches(msg, k.Toggle):
		c.Toggle()
	case key.Matches(msg, k.Yes):
		c.Set(state.ChoiceYes)
	case key.Matches(msg, k.No):
		c.Set(state.ChoiceNo)
	case key.Matches(msg, k.Confirm):
		target := m.session.PendingDelete
		confirmed := c.Confirmed()
		m.closeModal()
		if !confirmed || target == "" {
			events.Remote.DeleteCancel(target)
			return nil
		}
		events.Remote.Delete(target)
		return m.request(backend.Request{Kind: backend.KindDelete, Remote: target})
	}
	return nil
}
