package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/data/dispatcher"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"github.com/atomicstack/lazyfile/internal/state"
	"github.com/atomicstack/lazyfile/internal/theme"
	"github.com/atomicstack/lazyfile/internal/ui/command"
	uistate "github.com/atomicstack/lazyfile/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

const infoTimeout = 5 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Runner executes daemon requests; nil disables them.
	Runner command.Runner

	// Remotes is the result of the initial remote listing.
	Remotes   []string
	DaemonURL string

	// Width and Height pin the layout size; zero follows the terminal.
	Width  int
	Height int
}

// Model implements the Bubble Tea model for the remote browser.
type Model struct {
	session    *state.Session
	bus        *command.Bus
	dispatcher *dispatcher.Dispatcher
	keys       keyMap
	help       help.Model

	busy         bool
	pending      backend.Request
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	connected    bool
	daemonURL    string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	remotesView uistate.Viewport
	filesView   uistate.Viewport

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model around an already loaded remote list.
func NewModel(opts Options) *Model {
	session := state.NewSession()
	session.ApplyRemotes(opts.Remotes)
	h := help.New()
	h.ShortSeparator = "  "
	m := &Model{
		session:    session,
		bus:        command.New(opts.Runner),
		dispatcher: dispatcher.New(session),
		keys:       defaultKeyMap(),
		help:       h,
		connected:  true,
		daemonURL:  opts.DaemonURL,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	events.Remote.List(len(opts.Remotes))
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Session exposes the navigation state for rendering and tests.
func (m *Model) Session() *state.Session {
	return m.session
}

// Busy reports whether a daemon request is in flight.
func (m *Model) Busy() bool {
	return m.busy
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// request hands req to the command bus and marks the model busy until the
// result arrives.
func (m *Model) request(req backend.Request) tea.Cmd {
	cmd := m.bus.Execute(req)
	if cmd == nil {
		return nil
	}
	m.busy = true
	m.pending = req
	m.pendingLabel = command.Label(req)
	m.errMsg = ""
	m.forceClearInfo()
	return cmd
}

// closeModal dismisses the open modal and traces which kind it was.
func (m *Model) closeModal() {
	kind := state.ModalKind(m.session.Modal)
	m.session.CloseModal()
	if kind != "" {
		events.UI.Modal(kind, false)
	}
}

func (m *Model) quit() tea.Cmd {
	m.session.Running = false
	return tea.Quit
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTimeout)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
