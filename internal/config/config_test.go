package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DaemonURL != "http://localhost:5572" {
		t.Fatalf("expected default daemon url, got %q", cfg.App.DaemonURL)
	}
	if cfg.App.User != "" || cfg.App.Password != "" {
		t.Fatalf("expected no credentials by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsHostAndPort(t *testing.T) {
	cfg, err := LoadArgs([]string{"--host", "nas", "--port", "6000"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DaemonURL != "http://nas:6000" {
		t.Fatalf("expected http://nas:6000, got %q", cfg.App.DaemonURL)
	}
	if cfg.Flags["port"] != "6000" {
		t.Fatalf("expected port flag 6000, got %q", cfg.Flags["port"])
	}
}

func TestLoadArgsURLOverridesHostAndPort(t *testing.T) {
	cfg, err := LoadArgs([]string{"--host", "nas", "--url", "https://rc.example:443/"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DaemonURL != "https://rc.example:443/" {
		t.Fatalf("expected explicit url, got %q", cfg.App.DaemonURL)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"LAZYFILE_HOST=envhost",
		"LAZYFILE_PORT=7000",
		"LAZYFILE_RC_USER=admin",
		"LAZYFILE_RC_PASS=secret",
		"LAZYFILE_TRACE=true",
		"LAZYFILE_LOG_FILE=/tmp/lazy.log",
		"LAZYFILE_REQUEST_GAP=250ms",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DaemonURL != "http://envhost:7000" {
		t.Fatalf("expected env daemon url, got %q", cfg.App.DaemonURL)
	}
	if cfg.App.User != "admin" || cfg.App.Password != "secret" {
		t.Fatalf("expected env credentials, got %q/%q", cfg.App.User, cfg.App.Password)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/lazy.log" {
		t.Fatalf("expected env logging settings, got %#v", cfg.Logging)
	}
	if cfg.App.RequestGap != 250*time.Millisecond {
		t.Fatalf("expected 250ms request gap, got %s", cfg.App.RequestGap)
	}
}

func TestLoadArgsFlagBeatsEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--port", "8000", "--trace=false"}, []string{"LAZYFILE_PORT=7000", "LAZYFILE_TRACE=1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Daemon.Port != 8000 {
		t.Fatalf("expected flag port 8000, got %d", cfg.Daemon.Port)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected explicit --trace=false to win over env")
	}
}

func TestLoadArgsConfigFile(t *testing.T) {
	path := writeConfig(t, "host: filehost\nport: 9000\nrc_user: fileuser\ntrace: true\nrequest_gap: 1s\nwidth: 100\n")
	cfg, err := LoadArgs([]string{"--config", path}, []string{"LAZYFILE_PORT=9100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("expected config file %q, got %q", path, cfg.File)
	}
	if cfg.App.DaemonURL != "http://filehost:9100" {
		t.Fatalf("expected file host with env port, got %q", cfg.App.DaemonURL)
	}
	if cfg.App.User != "fileuser" || !cfg.Logging.Trace {
		t.Fatalf("expected file values, got user %q trace %v", cfg.App.User, cfg.Logging.Trace)
	}
	if cfg.App.RequestGap != time.Second || cfg.App.Width != 100 {
		t.Fatalf("expected file gap and width, got %s %d", cfg.App.RequestGap, cfg.App.Width)
	}
}

func TestLoadArgsDefaultConfigLocation(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "lazyfile"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "lazyfile", "config.yaml")
	if err := os.WriteFile(path, []byte("url: http://xdg:1234\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.DaemonURL != "http://xdg:1234" {
		t.Fatalf("expected url from default config file, got %q", cfg.App.DaemonURL)
	}
}

func TestLoadArgsMissingDefaultConfigIgnored(t *testing.T) {
	if _, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + t.TempDir()}); err != nil {
		t.Fatalf("expected missing default config to be ignored, got %v", err)
	}
}

func TestLoadArgsMissingExplicitConfigFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadArgs([]string{"--config", missing}, nil); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadArgsMalformedConfigFails(t *testing.T) {
	path := writeConfig(t, "port: [not a number\n")
	_, err := LoadArgs(nil, []string{"LAZYFILE_CONFIG=" + path})
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Fatalf("expected height error")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		args []string
		ok   bool
	}{
		{"defaults", nil, true},
		{"port zero", []string{"--port", "0"}, false},
		{"port too high", []string{"--port", "70000"}, false},
		{"https url", []string{"--url", "https://rc.example"}, true},
		{"bad scheme", []string{"--url", "ftp://rc.example"}, false},
		{"no host", []string{"--url", "http://"}, false},
		{"not a url", []string{"--url", "localhost:5572"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadArgs(tc.args, nil)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			err = Validate(cfg)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
