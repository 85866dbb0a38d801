package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/lazyfile/internal/app"
	"github.com/atomicstack/lazyfile/internal/rclone"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Daemon  Daemon
	// File is the config file that was read, or empty when none was found.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Daemon holds the address parts the daemon URL was built from.
type Daemon struct {
	Host string
	Port int
	URL  string
}

const (
	envHost       = "LAZYFILE_HOST"
	envPort       = "LAZYFILE_PORT"
	envURL        = "LAZYFILE_URL"
	envUser       = "LAZYFILE_RC_USER"
	envPass       = "LAZYFILE_RC_PASS"
	envLogFile    = "LAZYFILE_LOG_FILE"
	envTrace      = "LAZYFILE_TRACE"
	envConfig     = "LAZYFILE_CONFIG"
	envWidth      = "LAZYFILE_WIDTH"
	envHeight     = "LAZYFILE_HEIGHT"
	envRequestGap = "LAZYFILE_REQUEST_GAP"
)

// fileConfig mirrors config.yaml. Pointer fields distinguish absent keys from
// zero values.
type fileConfig struct {
	Host       string `yaml:"host"`
	Port       *int   `yaml:"port"`
	URL        string `yaml:"url"`
	User       string `yaml:"rc_user"`
	Pass       string `yaml:"rc_pass"`
	LogFile    string `yaml:"log_file"`
	Trace      *bool  `yaml:"trace"`
	Width      *int   `yaml:"width"`
	Height     *int   `yaml:"height"`
	RequestGap string `yaml:"request_gap"`
}

// Load parses configuration from CLI arguments, environment variables and
// the config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lazyfile", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	host := fs.String("host", rclone.DefaultHost, "rclone rc daemon host")
	port := fs.Int("port", rclone.DefaultPort, "rclone rc daemon port")
	rawURL := fs.String("url", "", "full rclone rc daemon URL (overrides --host and --port)")
	user := fs.String("rc-user", "", "username for a daemon started with --rc-user")
	pass := fs.String("rc-pass", "", "password for a daemon started with --rc-pass")
	logFile := fs.String("log-file", "", "path to the log file")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	configPath := fs.String("config", "", "path to a YAML config file")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	gap := fs.Duration("request-gap", 0, "minimum spacing between daemon requests")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := pickString(set["config"], *configPath, env, envConfig, "", defaultConfigPath(env))
	_, fromEnv := env[envConfig]
	explicit := set["config"] || fromEnv
	file, loaded, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	fileGap := time.Duration(0)
	if file.RequestGap != "" {
		fileGap, err = time.ParseDuration(file.RequestGap)
		if err != nil {
			return Config{}, fmt.Errorf("%s: request_gap: %w", path, err)
		}
	}

	cfg := Config{
		Daemon: Daemon{
			Host: pickString(set["host"], *host, env, envHost, file.Host, rclone.DefaultHost),
			Port: pickInt(set["port"], *port, env, envPort, file.Port, rclone.DefaultPort),
			URL:  pickString(set["url"], *rawURL, env, envURL, file.URL, ""),
		},
		Logging: Logging{
			FilePath: pickString(set["log-file"], *logFile, env, envLogFile, file.LogFile, ""),
			Trace:    pickBool(set["trace"], *trace, env, envTrace, file.Trace, false),
		},
		Args: append([]string(nil), args...),
	}
	if loaded {
		cfg.File = path
	}

	daemonURL := cfg.Daemon.URL
	if daemonURL == "" {
		daemonURL = rclone.BaseURL(cfg.Daemon.Host, cfg.Daemon.Port)
	}
	cfg.App = app.Config{
		DaemonURL:  daemonURL,
		User:       pickString(set["rc-user"], *user, env, envUser, file.User, ""),
		Password:   pickString(set["rc-pass"], *pass, env, envPass, file.Pass, ""),
		RequestGap: pickDuration(set["request-gap"], *gap, env, envRequestGap, fileGap),
		Width:      pickInt(set["width"], *width, env, envWidth, file.Width, 0),
		Height:     pickInt(set["height"], *height, env, envHeight, file.Height, 0),
	}

	if cfg.App.Width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.RequestGap < 0 {
		return Config{}, fmt.Errorf("request-gap must be >= 0 (got %s)", cfg.App.RequestGap)
	}

	cfg.Flags = map[string]string{
		"host":       cfg.Daemon.Host,
		"port":       strconv.Itoa(cfg.Daemon.Port),
		"url":        cfg.App.DaemonURL,
		"rcUser":     cfg.App.User,
		"config":     cfg.File,
		"width":      strconv.Itoa(cfg.App.Width),
		"height":     strconv.Itoa(cfg.App.Height),
		"requestGap": cfg.App.RequestGap.String(),
	}
	return cfg, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "lazyfile", "config.yaml")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "lazyfile", "config.yaml")
	}
	return ""
}

// readFile loads path. A missing file is only an error when it was named
// explicitly.
func readFile(path string, explicit bool) (fileConfig, bool, error) {
	var fc fileConfig
	if path == "" {
		return fc, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fc, false, nil
		}
		return fc, false, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, true, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func pickString(flagSet bool, flagVal string, env map[string]string, key, fileVal, fallback string) string {
	if flagSet {
		return flagVal
	}
	if v, ok := env[key]; ok {
		return v
	}
	if fileVal != "" {
		return fileVal
	}
	return fallback
}

func pickInt(flagSet bool, flagVal int, env map[string]string, key string, fileVal *int, fallback int) int {
	if flagSet {
		return flagVal
	}
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	if fileVal != nil {
		return *fileVal
	}
	return fallback
}

func pickBool(flagSet bool, flagVal bool, env map[string]string, key string, fileVal *bool, fallback bool) bool {
	if flagSet {
		return flagVal
	}
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	if fileVal != nil {
		return *fileVal
	}
	return fallback
}

func pickDuration(flagSet bool, flagVal time.Duration, env map[string]string, key string, fileVal time.Duration) time.Duration {
	if flagSet {
		return flagVal
	}
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		if parsed, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fileVal
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects daemon addresses that cannot be dialled.
func Validate(cfg Config) error {
	if cfg.Daemon.URL == "" && (cfg.Daemon.Port < 1 || cfg.Daemon.Port > 65535) {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", cfg.Daemon.Port)
	}
	u, err := url.Parse(cfg.App.DaemonURL)
	if err != nil {
		return fmt.Errorf("invalid daemon url %q: %w", cfg.App.DaemonURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid daemon url %q: scheme must be http or https", cfg.App.DaemonURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid daemon url %q: missing host", cfg.App.DaemonURL)
	}
	return nil
}
