package ui

import (
	"unicode"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleFormKey(f *state.RemoteForm, msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Form
	switch {
	case key.Matches(msg, k.Cancel):
		m.closeModal()
	case key.Matches(msg, k.Next):
		f.NextField()
	case key.Matches(msg, k.Prev):
		f.PrevField()
	case key.Matches(msg, k.Clear):
		f.SetFocused("")
	case key.Matches(msg, k.Submit):
		return m.submitForm(f)
	case key.Matches(msg, k.Erase), editable(msg):
		return f.Edit(msg)
	}
	return nil
}

// editable reports whether msg types text. Alt chords and control runes are
// left out so they never reach the field.
func editable(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return true
	}
	return false
}

// submitForm validates the form and sends it to the daemon. The form stays
// open until the result arrives so a failure can be shown inside it.
func (m *Model) submitForm(f *state.RemoteForm) tea.Cmd {
	if reason := f.Validate(); reason != "" {
		f.Err = reason
		events.Remote.FormInvalid(reason)
		return nil
	}
	params := f.Parameters()
	if f.Mode == state.FormEdit {
		events.Remote.Update(f.Name(), params)
		return m.request(backend.Request{Kind: backend.KindUpdate, Remote: f.Name(), Params: params})
	}
	events.Remote.Create(f.Name(), f.Type(), params)
	return m.request(backend.Request{Kind: backend.KindCreate, Remote: f.Name(), Type: f.Type(), Params: params})
}
