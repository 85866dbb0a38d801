package backend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/lazyfile/internal/rclone"
)

// Client is the subset of the daemon client the worker drives.
type Client interface {
	ListRemotes(ctx context.Context) ([]string, error)
	ListFiles(ctx context.Context, remote, path string) ([]rclone.FileItem, error)
	CreateRemote(ctx context.Context, name, remoteType string, parameters map[string]string) error
	UpdateRemote(ctx context.Context, name string, parameters map[string]string) error
	DeleteRemote(ctx context.Context, name string) error
}

// Kind identifies the daemon operation a request performs.
type Kind int

const (
	KindRemotes Kind = iota
	KindFiles
	KindCreate
	KindUpdate
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindRemotes:
		return "remotes"
	case KindFiles:
		return "files"
	case KindCreate:
		return "create"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Mutates reports whether the request changes the remote configuration.
func (k Kind) Mutates() bool {
	return k == KindCreate || k == KindUpdate || k == KindDelete
}

// Request describes one daemon operation. Remote names the remote for every
// kind except KindRemotes.
type Request struct {
	Kind   Kind
	Remote string
	Path   string
	Type   string
	Params map[string]string
}

// Event carries the outcome of a Request. Successful mutations are followed
// by a remote-list refresh whose outcome lands in Refreshed/RefreshErr.
type Event struct {
	Request Request

	Remotes []string
	Files   []rclone.FileItem
	Err     error

	Refreshed  bool
	RefreshErr error
}

// ErrStopped is returned for requests submitted after Stop.
var ErrStopped = errors.New("backend worker stopped")

type job struct {
	req   Request
	reply chan Event
}

// Worker runs daemon requests one at a time on a dedicated goroutine.
type Worker struct {
	client   Client
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	jobs chan job
	wg   sync.WaitGroup
}

// NewWorker starts a worker for client. minInterval spaces successive daemon
// requests; zero disables spacing.
func NewWorker(client Client, minInterval time.Duration) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		client:   client,
		throttle: newThrottle(minInterval),
		ctx:      ctx,
		cancel:   cancel,
		jobs:     make(chan job),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

// Do submits req and blocks until it completes.
func (w *Worker) Do(req Request) Event {
	reply := make(chan Event, 1)
	select {
	case <-w.ctx.Done():
		return Event{Request: req, Err: ErrStopped}
	case w.jobs <- job{req: req, reply: reply}:
	}
	return <-reply
}

// Stop cancels the worker and any request in flight. Use Wait to block until
// the goroutine has exited.
func (w *Worker) Stop() {
	w.cancel()
}

// Wait blocks until the worker goroutine has exited.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case j := <-w.jobs:
			j.reply <- w.execute(j.req)
		}
	}
}

func (w *Worker) execute(req Request) Event {
	evt := Event{Request: req}
	ctx := w.ctx

	if err := w.throttle.wait(ctx); err != nil {
		evt.Err = err
		return evt
	}
	switch req.Kind {
	case KindRemotes:
		evt.Remotes, evt.Err = w.client.ListRemotes(ctx)
	case KindFiles:
		evt.Files, evt.Err = w.client.ListFiles(ctx, req.Remote, req.Path)
	case KindCreate:
		evt.Err = w.client.CreateRemote(ctx, req.Remote, req.Type, req.Params)
	case KindUpdate:
		evt.Err = w.client.UpdateRemote(ctx, req.Remote, req.Params)
	case KindDelete:
		evt.Err = w.client.DeleteRemote(ctx, req.Remote)
	default:
		evt.Err = errors.New("unknown request kind")
	}

	if evt.Err != nil || !req.Kind.Mutates() {
		return evt
	}
	if err := w.throttle.wait(ctx); err != nil {
		evt.RefreshErr = err
		return evt
	}
	evt.Remotes, evt.RefreshErr = w.client.ListRemotes(ctx)
	evt.Refreshed = evt.RefreshErr == nil
	return evt
}
