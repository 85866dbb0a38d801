package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/lazyfile/internal/app"
	"github.com/atomicstack/lazyfile/internal/config"
	"github.com/atomicstack/lazyfile/internal/logging"
	"github.com/atomicstack/lazyfile/internal/logging/events"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("lazyfile needs an interactive terminal on stdin and stdout")

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminals := inspectTerminals(
		namedFile{"stdin", os.Stdin},
		namedFile{"stdout", os.Stdout},
		namedFile{"stderr", os.Stderr},
	)
	events.App.Start(startupTracePayload(runtimeCfg, terminals))

	err := errNoTerminal
	if interactive(terminals) {
		err = app.Run(runtimeCfg.App)
	}
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how the process was started. Credentials are
// reduced to whether any were given.
func startupTracePayload(cfg config.Config, terminals []terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = logging.Path()
	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"daemonURL": cfg.App.DaemonURL,
		"auth":      cfg.App.User != "" || cfg.App.Password != "",
		"terminals": terminals,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	return payload
}

type namedFile struct {
	name string
	file *os.File
}

type terminalInfo struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// inspectTerminals reports which of files are terminals and their size.
func inspectTerminals(files ...namedFile) []terminalInfo {
	terminals := make([]terminalInfo, 0, len(files))
	for _, f := range files {
		p := terminalInfo{Name: f.name}
		if f.file != nil {
			fd := int(f.file.Fd())
			if term.IsTerminal(fd) {
				p.Terminal = true
				if w, h, err := term.GetSize(fd); err == nil {
					p.Width, p.Height = w, h
				} else {
					p.Error = err.Error()
				}
			}
		}
		terminals = append(terminals, p)
	}
	return terminals
}

// interactive reports whether both stdin and stdout are terminals.
func interactive(terminals []terminalInfo) bool {
	var in, out bool
	for _, p := range terminals {
		switch p.Name {
		case "stdin":
			in = p.Terminal
		case "stdout":
			out = p.Terminal
		}
	}
	return in && out
}
