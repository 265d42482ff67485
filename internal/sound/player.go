package sound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"
)

const (
	Click = "click.wav"
	Win   = "win.wav"
	Draw  = "draw.wav"
)

var ErrNoBackend = errors.New("no audio player found")

// backends are tried in order; the first one found in PATH is used.
var backends = []string{"paplay", "aplay", "afplay"}

type runFunc func(ctx context.Context, name string, args ...string) error

// Player plays sound effects in the background. Failures are logged and never surface to callers.
type Player struct {
	logger  *slog.Logger
	dir     string
	timeout time.Duration
	enabled bool

	lookPath func(file string) (string, error)
	run      runFunc

	wg sync.WaitGroup
}

func NewPlayer(logger *slog.Logger, dir string, timeout time.Duration, enabled bool) *Player {
	return &Player{
		logger:   logger.With("component", "sound"),
		dir:      dir,
		timeout:  timeout,
		enabled:  enabled,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Play starts playback of the named file and returns immediately.
func (that *Player) Play(name string) {
	if !that.enabled {
		return
	}

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()

		if err := that.play(name); err != nil {
			that.logger.Warn("failed to play sound", "sound", name, "error", err)
		}
	}()
}

// Wait blocks until every started playback has finished.
func (that *Player) Wait() {
	that.wg.Wait()
}

func (that *Player) play(name string) error {
	path := filepath.Join(that.dir, name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sound file: %w", err)
	}

	backend, err := that.backend()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err = that.run(ctx, backend, path); err != nil {
		return fmt.Errorf("%s: %w", backend, err)
	}

	return nil
}

func (that *Player) backend() (string, error) {
	for _, name := range backends {
		if path, err := that.lookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrNoBackend
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run() //nolint: gosec // backend comes from a fixed list
}
