package command

import (
	"fmt"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/rclone"
	tea "github.com/charmbracelet/bubbletea"
)

// Runner executes a backend request synchronously.
type Runner interface {
	Do(backend.Request) backend.Event
}

// ResultMsg delivers a completed request to the model.
type ResultMsg struct {
	Event backend.Event
}

// Bus turns backend requests into Bubble Tea commands.
type Bus struct {
	runner Runner
}

// New initialises a command bus backed by runner.
func New(runner Runner) *Bus {
	return &Bus{runner: runner}
}

// Execute wraps req into a command while emitting trace logs. It returns nil
// when there is nothing to run the request on.
func (b *Bus) Execute(req backend.Request) tea.Cmd {
	id, label := req.Kind.String(), Label(req)
	if b == nil || b.runner == nil {
		events.Command.Skip(id, label)
		return nil
	}
	events.Command.Queue(id, label)
	runner := b.runner
	return func() tea.Msg {
		evt := runner.Do(req)
		msg := ResultMsg{Event: evt}
		events.Command.Result(id, label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Label describes req for trace logs and the pending indicator.
func Label(req backend.Request) string {
	switch req.Kind {
	case backend.KindRemotes:
		return "Loading remotes"
	case backend.KindFiles:
		return "Listing " + rclone.FsPath(req.Remote, req.Path)
	case backend.KindCreate:
		return "Creating " + req.Remote
	case backend.KindUpdate:
		return "Updating " + req.Remote
	case backend.KindDelete:
		return "Deleting " + req.Remote
	default:
		return req.Kind.String()
	}
}
