package dispatcher

import (
	"fmt"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/state"
)

// Result summarises what a completed request changed.
type Result struct {
	RemotesUpdated bool
	FilesUpdated   bool
	// FormErr is set when the failure was rendered inside the open form.
	FormErr bool
	// Err is a failure to surface on the status line.
	Err  error
	Info string
}

// Dispatcher applies completed backend requests to the session. State only
// changes when the request succeeded.
type Dispatcher struct {
	session *state.Session
}

func New(session *state.Session) *Dispatcher {
	return &Dispatcher{session: session}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	req := evt.Request
	switch req.Kind {
	case backend.KindRemotes:
		if evt.Err != nil {
			res.Err = evt.Err
			return res
		}
		d.session.ApplyRemotes(evt.Remotes)
		events.Remote.List(len(evt.Remotes))
		res.RemotesUpdated = true
	case backend.KindFiles:
		if evt.Err != nil {
			res.Err = evt.Err
			return res
		}
		d.session.ApplyFiles(req.Remote, req.Path, evt.Files)
		events.Browse.Loaded(req.Remote, req.Path, len(evt.Files))
		res.FilesUpdated = true
	case backend.KindCreate, backend.KindUpdate:
		if evt.Err != nil {
			if form, ok := d.session.Form(); ok {
				form.Err = "Error: " + evt.Err.Error()
				res.FormErr = true
				return res
			}
			res.Err = evt.Err
			return res
		}
		if _, ok := d.session.Form(); ok {
			events.UI.Modal(state.ModalKind(d.session.Modal), false)
			d.session.CloseModal()
		}
		verb := "Created"
		if req.Kind == backend.KindUpdate {
			verb = "Updated"
		}
		res.Info = fmt.Sprintf("%s remote '%s'", verb, req.Remote)
		d.applyRefresh(evt, &res)
	case backend.KindDelete:
		if evt.Err != nil {
			res.Err = evt.Err
			return res
		}
		res.Info = fmt.Sprintf("Deleted remote '%s'", req.Remote)
		d.applyRefresh(evt, &res)
	}
	return res
}

func (d *Dispatcher) applyRefresh(evt backend.Event, res *Result) {
	if evt.RefreshErr != nil {
		res.Err = fmt.Errorf("refresh remotes: %w", evt.RefreshErr)
		return
	}
	if evt.Refreshed {
		d.session.ApplyRemotes(evt.Remotes)
		events.Remote.List(len(evt.Remotes))
		res.RemotesUpdated = true
	}
}
