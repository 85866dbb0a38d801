package ui

import (
	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handlePanelKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	k := m.keys.Panel
	onRemotes := s.FocusedPanel == state.PanelRemotes

	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.Add):
		if onRemotes {
			s.OpenCreate()
			events.UI.Modal(state.ModalKind(s.Modal), true)
			events.Remote.CreatePrompt()
		}
	case key.Matches(msg, k.Delete):
		if onRemotes && s.OpenDelete() {
			events.UI.Modal(state.ModalKind(s.Modal), true)
			events.Remote.DeletePrompt(s.PendingDelete)
		}
	case key.Matches(msg, k.Edit):
		if onRemotes && s.OpenEdit() {
			events.UI.Modal(state.ModalKind(s.Modal), true)
			if form, ok := s.Form(); ok {
				events.Remote.EditPrompt(form.Name())
			}
		}
	case key.Matches(msg, k.Down):
		s.NavigateDown()
		m.traceCursor()
	case key.Matches(msg, k.Up):
		s.NavigateUp()
		m.traceCursor()
	case key.Matches(msg, k.Switch):
		s.SwitchPanel()
		events.UI.Panel(s.FocusedPanel.String())
	case key.Matches(msg, k.Open):
		return m.openSelection()
	case key.Matches(msg, k.Back):
		return m.goBack()
	}
	return nil
}

func (m *Model) traceCursor() {
	s := m.session
	cursor := s.RemotesSelected
	if s.FocusedPanel == state.PanelFiles {
		cursor = s.FilesSelected
	}
	events.UI.Cursor(s.FocusedPanel.String(), cursor)
}

// openSelection lists the selected remote's root, or descends into the
// selected directory. The location only changes once the listing succeeds.
func (m *Model) openSelection() tea.Cmd {
	s := m.session
	if s.FocusedPanel == state.PanelRemotes {
		name, ok := s.SelectedRemote()
		if !ok {
			return nil
		}
		events.Browse.Open(name, "")
		return m.request(backend.Request{Kind: backend.KindFiles, Remote: name})
	}

	item, ok := s.SelectedFile()
	if !ok {
		return nil
	}
	if !item.IsDir {
		events.Browse.FileSelect(s.CurrentRemote, s.CurrentPath, item.Name)
		return nil
	}
	path := s.ChildPath(item.Name)
	events.Browse.Open(s.CurrentRemote, path)
	return m.request(backend.Request{Kind: backend.KindFiles, Remote: s.CurrentRemote, Path: path})
}

// goBack lists the parent directory, or closes the remote at its root.
func (m *Model) goBack() tea.Cmd {
	s := m.session
	if s.FocusedPanel != state.PanelFiles {
		return nil
	}
	parent, ok := s.ParentPath()
	if !ok {
		remote := s.CurrentRemote
		s.LeaveRemote()
		m.filesView.Offset = 0
		events.Browse.Leave(remote)
		return nil
	}
	events.Browse.Parent(s.CurrentRemote, parent)
	return m.request(backend.Request{Kind: backend.KindFiles, Remote: s.CurrentRemote, Path: parent})
}
