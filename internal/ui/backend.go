package ui

import (
	"fmt"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging"
	"github.com/atomicstack/lazyfile/internal/rclone"
	"github.com/atomicstack/lazyfile/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	m.busy = false
	m.pending = backend.Request{}
	m.pendingLabel = ""

	evt := result.Event
	m.noteConnection(evt)
	if evt.Err != nil {
		logging.Error(fmt.Errorf("%s request: %w", evt.Request.Kind, evt.Err))
	}
	if evt.RefreshErr != nil {
		logging.Error(fmt.Errorf("refresh after %s: %w", evt.Request.Kind, evt.RefreshErr))
	}

	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.errMsg = res.Err.Error()
	}
	if res.Info != "" {
		m.setInfo(res.Info)
	}
	if res.FilesUpdated {
		m.filesView.Offset = 0
	}
	return nil
}

// noteConnection tracks whether the daemon answered the last exchange. A
// daemon that replies with an error is still connected.
func (m *Model) noteConnection(evt backend.Event) {
	err := evt.Err
	if err == nil {
		err = evt.RefreshErr
	}
	m.connected = !rclone.IsUnreachable(err)
}
