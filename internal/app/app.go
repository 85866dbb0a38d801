package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/lazyfile/internal/backend"
	"github.com/atomicstack/lazyfile/internal/rclone"
	"github.com/atomicstack/lazyfile/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DaemonURL string
	User      string
	Password  string
	// RequestGap spaces successive daemon requests; zero disables it.
	RequestGap time.Duration
	Width      int
	Height     int
}

// Run loads the remote list and executes the Bubble Tea program. Failing to
// reach the daemon for that first listing is returned before the terminal is
// taken over.
func Run(cfg Config) error {
	client := newClient(cfg)
	remotes, err := client.ListRemotes(context.Background())
	if err != nil {
		return fmt.Errorf("load remotes from %s: %w", client.BaseURL(), err)
	}

	worker := backend.NewWorker(client, cfg.RequestGap)
	defer func() {
		worker.Stop()
		worker.Wait()
	}()

	model := ui.NewModel(ui.Options{
		Runner:    worker,
		Remotes:   remotes,
		DaemonURL: client.BaseURL(),
		Width:     cfg.Width,
		Height:    cfg.Height,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func newClient(cfg Config) *rclone.Client {
	var opts []rclone.Option
	if cfg.User != "" || cfg.Password != "" {
		opts = append(opts, rclone.WithBasicAuth(cfg.User, cfg.Password))
	}
	return rclone.New(cfg.DaemonURL, opts...)
}
