// Package botproc owns the lifecycle of the external chat-bot process the
// practitioner runs next to the engine. The handle is explicit: exactly one
// process per handle, and Stop always reaps what Start launched.
package botproc

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Status describes the managed process.
type Status struct {
	Running   bool
	PID       int
	StartedAt time.Time
}

// Handle manages one external process. All methods are safe for concurrent
// use.
type Handle struct {
	mu        sync.Mutex
	command   string
	args      []string
	cmd       *exec.Cmd
	startedAt time.Time
	log       zerolog.Logger
}

// New creates a Handle that will run command with args.
func New(command string, args []string, log zerolog.Logger) *Handle {
	return &Handle{
		command: command,
		args:    args,
		log:     log.With().Str("component", "botproc").Logger(),
	}
}

// Start launches the process, passing count as the final argument so the
// bot knows how many lists to send. Starting an already-running handle is
// an error, not a restart.
func (h *Handle) Start(count int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if count < 1 {
		return fmt.Errorf("bot list count must be at least 1, got %d", count)
	}
	if h.cmd != nil {
		return fmt.Errorf("bot already running with pid %d", h.cmd.Process.Pid)
	}

	args := append(append([]string(nil), h.args...), strconv.Itoa(count))
	cmd := exec.Command(h.command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting bot: %w", err)
	}
	h.cmd = cmd
	h.startedAt = time.Now()
	h.log.Info().Int("pid", cmd.Process.Pid).Str("command", h.command).
		Int("count", count).Msg("bot started")

	// Reap in the background so a crashed bot frees the handle.
	go func(c *exec.Cmd) {
		err := c.Wait()
		h.mu.Lock()
		if h.cmd == c {
			h.cmd = nil
		}
		h.mu.Unlock()
		if err != nil {
			h.log.Warn().Err(err).Msg("bot exited")
		}
	}(cmd)
	return nil
}

// Stop kills the process. Stopping an idle handle is a no-op.
func (h *Handle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cmd == nil {
		return nil
	}
	pid := h.cmd.Process.Pid
	if err := h.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stopping bot pid %d: %w", pid, err)
	}
	h.cmd = nil
	h.log.Info().Int("pid", pid).Msg("bot stopped")
	return nil
}

// Status reports whether the process is alive.
func (h *Handle) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cmd == nil {
		return Status{}
	}
	return Status{
		Running:   true,
		PID:       h.cmd.Process.Pid,
		StartedAt: h.startedAt,
	}
}
