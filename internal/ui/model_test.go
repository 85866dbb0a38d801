package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/logging"
	"github.com/atomicstack/lazyfile/internal/rclone"
	"github.com/atomicstack/lazyfile/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "lazyfile-ui")
	if err == nil {
		logging.Configure(filepath.Join(dir, "test.log"))
	}
	code := m.Run()
	if err == nil {
		os.RemoveAll(dir)
	}
	os.Exit(code)
}

// fakeRunner answers requests from an in-memory tree keyed by "remote:path".
type fakeRunner struct {
	requests []backend.Request
	remotes  []string
	tree     map[string][]rclone.FileItem
	fail     map[backend.Kind]error
}

func newFakeRunner(remotes ...string) *fakeRunner {
	return &fakeRunner{
		remotes: remotes,
		tree:    map[string][]rclone.FileItem{},
		fail:    map[backend.Kind]error{},
	}
}

func (f *fakeRunner) Do(req backend.Request) backend.Event {
	f.requests = append(f.requests, req)
	evt := backend.Event{Request: req}
	if err := f.fail[req.Kind]; err != nil {
		evt.Err = err
		return evt
	}
	switch req.Kind {
	case backend.KindRemotes:
		evt.Remotes = append([]string(nil), f.remotes...)
	case backend.KindFiles:
		evt.Files = f.tree[rclone.FsPath(req.Remote, req.Path)]
	case backend.KindCreate:
		f.remotes = append(f.remotes, req.Remote)
	case backend.KindDelete:
		kept := f.remotes[:0]
		for _, name := range f.remotes {
			if name != req.Remote {
				kept = append(kept, name)
			}
		}
		f.remotes = kept
	}
	if req.Kind.Mutates() {
		evt.Remotes = append([]string(nil), f.remotes...)
		evt.Refreshed = true
	}
	return evt
}

func newTestHarness(runner *fakeRunner) *Harness {
	return NewHarness(NewModel(Options{Runner: runner, Remotes: runner.remotes}))
}

func TestNewModelStartsOnRemotes(t *testing.T) {
	h := newTestHarness(newFakeRunner("gdrive", "s3"))
	s := h.Model().Session()
	if len(s.Remotes) != 2 || s.RemotesSelected != 0 || s.Browsing() || s.ModalOpen() {
		t.Fatalf("unexpected initial session %+v", s)
	}
	if !s.Running {
		t.Fatalf("expected session running")
	}
	if cmd := h.Model().Init(); cmd != nil {
		t.Fatalf("expected no init command")
	}
}

func TestQuitStopsSession(t *testing.T) {
	h := newTestHarness(newFakeRunner("gdrive"))
	h.Press("q")
	if h.Model().Session().Running || !h.Quit() {
		t.Fatalf("expected quit")
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestKeysDroppedWhileBusy(t *testing.T) {
	runner := newFakeRunner("gdrive", "s3")
	m := NewModel(Options{Runner: runner, Remotes: runner.remotes})
	m.busy = true

	m.Update(KeyMsg("j"))
	m.Update(KeyMsg("a"))
	if m.Session().RemotesSelected != 0 || m.Session().ModalOpen() {
		t.Fatalf("expected keys to be dropped while busy")
	}
	m.Update(KeyMsg("q"))
	if !m.Session().Running {
		t.Fatalf("expected q to be dropped while busy")
	}
	_, cmd := m.Update(KeyMsg("ctrl+c"))
	if cmd == nil || m.Session().Running {
		t.Fatalf("expected ctrl+c to quit while busy")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.Quit command")
	}
}

func TestRequestMarksBusyUntilResult(t *testing.T) {
	runner := newFakeRunner("gdrive")
	m := NewModel(Options{Runner: runner, Remotes: runner.remotes})

	_, cmd := m.Update(KeyMsg("enter"))
	if cmd == nil || !m.Busy() {
		t.Fatalf("expected pending request")
	}
	if m.Session().Browsing() {
		t.Fatalf("expected location unchanged before the result arrives")
	}
	if got := m.View(); !contains(got, "Listing gdrive:…") {
		t.Fatalf("expected pending label in view, got:\n%s", got)
	}
	msg := cmd()
	if _, ok := msg.(command.ResultMsg); !ok {
		t.Fatalf("expected ResultMsg, got %T", msg)
	}
	m.Update(msg)
	if m.Busy() || !m.Session().Browsing() {
		t.Fatalf("expected result applied")
	}
}

func TestWithoutRunnerRequestsAreSkipped(t *testing.T) {
	m := NewModel(Options{Remotes: []string{"gdrive"}})
	_, cmd := m.Update(KeyMsg("enter"))
	if cmd != nil || m.Busy() {
		t.Fatalf("expected no request without a runner")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 100})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.width != 100 || m.height != 20 {
		t.Fatalf("expected fixed width and tracked height, got %dx%d", m.width, m.height)
	}
}

func TestFailedRequestSetsErrorAndKeepsRunning(t *testing.T) {
	runner := newFakeRunner("gdrive")
	runner.fail[backend.KindFiles] = errors.New("failed to list files: 500 Internal Server Error")
	h := newTestHarness(runner)

	h.Press("enter")
	m := h.Model()
	if m.errMsg != "failed to list files: 500 Internal Server Error" {
		t.Fatalf("unexpected error message %q", m.errMsg)
	}
	if !m.Session().Running || m.Busy() {
		t.Fatalf("expected session to keep running")
	}
	if !m.connected {
		t.Fatalf("a daemon that answers with an error is still connected")
	}
}
