package events

import "github.com/atomicstack/lazyfile/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(panel string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"panel": panel, "cursor": cursor})
}

func (UITracer) Panel(panel string) {
	logging.Trace("ui.panel", map[string]interface{}{"panel": panel})
}

func (UITracer) Modal(kind string, open bool) {
	logging.Trace("ui.modal", map[string]interface{}{"kind": kind, "open": open})
}

func (UITracer) KeyDropped(key, reason string) {
	logging.Trace("ui.key-dropped", map[string]interface{}{"key": key, "reason": reason})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
