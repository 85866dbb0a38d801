package events

import "github.com/atomicstack/lazyfile/internal/logging"

type RemoteTracer struct{}

type BrowseTracer struct{}

var (
	Remote = RemoteTracer{}
	Browse = BrowseTracer{}
)

func (RemoteTracer) List(count int) {
	logging.Trace("remote.list", map[string]interface{}{"count": count})
}

func (RemoteTracer) CreatePrompt() {
	logging.Trace("remote.create-prompt", nil)
}

func (RemoteTracer) EditPrompt(name string) {
	logging.Trace("remote.edit-prompt", map[string]interface{}{"name": name})
}

func (RemoteTracer) DeletePrompt(name string) {
	logging.Trace("remote.delete-prompt", map[string]interface{}{"name": name})
}

func (RemoteTracer) DeleteCancel(name string) {
	logging.Trace("remote.delete-cancel", map[string]interface{}{"name": name})
}

func (RemoteTracer) Create(name, remoteType string, params map[string]string) {
	logging.Trace("remote.create", map[string]interface{}{"name": name, "type": remoteType, "params": params})
}

func (RemoteTracer) Update(name string, params map[string]string) {
	logging.Trace("remote.update", map[string]interface{}{"name": name, "params": params})
}

func (RemoteTracer) Delete(name string) {
	logging.Trace("remote.delete", map[string]interface{}{"name": name})
}

func (RemoteTracer) FormInvalid(reason string) {
	logging.Trace("remote.form-invalid", map[string]interface{}{"reason": reason})
}

func (BrowseTracer) Open(remote, path string) {
	logging.Trace("browse.open", map[string]interface{}{"remote": remote, "path": path})
}

func (BrowseTracer) Loaded(remote, path string, count int) {
	logging.Trace("browse.loaded", map[string]interface{}{"remote": remote, "path": path, "count": count})
}

func (BrowseTracer) Parent(remote, path string) {
	logging.Trace("browse.parent", map[string]interface{}{"remote": remote, "path": path})
}

func (BrowseTracer) Leave(remote string) {
	logging.Trace("browse.leave", map[string]interface{}{"remote": remote})
}

func (BrowseTracer) FileSelect(remote, path, name string) {
	logging.Trace("browse.file-select", map[string]interface{}{"remote": remote, "path": path, "name": name})
}
