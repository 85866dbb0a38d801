package events

import "github.com/atomicstack/lazyfile/internal/logging"

type DaemonTracer struct{}

var Daemon = DaemonTracer{}

func (DaemonTracer) Request(endpoint string, payload interface{}) {
	logging.Trace("daemon.request", map[string]interface{}{"endpoint": endpoint, "body": payload})
}

func (DaemonTracer) Response(endpoint string, status, size int) {
	logging.Trace("daemon.response", map[string]interface{}{"endpoint": endpoint, "status": status, "bytes": size})
}

func (DaemonTracer) Failure(endpoint string, err error) {
	if err == nil {
		return
	}
	logging.Trace("daemon.failure", map[string]interface{}{"endpoint": endpoint, "error": err.Error()})
}
