package shortcuts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"reminders/internal/todo"
)

const (
	DefaultCommand  = "shortcuts"
	DefaultShortcut = "GetTodos"
)

// Output is what a finished process produced. ExitCode is 0 on success.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner starts a process and waits for it. It returns an error only when
// the process could not be run at all; a non-zero exit is reported in Output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	return out, err
}

// InvocationError means the provider command could not be launched.
type InvocationError struct {
	Command string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Command, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ExecutionError means the command ran and reported failure.
type ExecutionError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("shortcut failed with exit status %d", e.ExitCode)
	}
	return fmt.Sprintf("shortcut failed with exit status %d: %s", e.ExitCode, msg)
}

// Source fetches todos by running a named shortcut.
type Source struct {
	command  string
	shortcut string
	runner   Runner
	logger   *slog.Logger
}

// New returns a Source for `command run shortcut`. Empty values fall back to
// the defaults.
func New(command, shortcut string, logger *slog.Logger) *Source {
	if command == "" {
		command = DefaultCommand
	}
	if shortcut == "" {
		shortcut = DefaultShortcut
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Source{command: command, shortcut: shortcut, runner: execRunner{}, logger: logger}
}

// NewWithRunner returns a Source that runs commands through r (for tests).
func NewWithRunner(command, shortcut string, r Runner, logger *slog.Logger) *Source {
	s := New(command, shortcut, logger)
	s.runner = r
	return s
}

// Fetch runs the shortcut and returns its stdout as text.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	start := time.Now()
	out, err := s.runner.Run(ctx, s.command, "run", s.shortcut)
	if err != nil {
		s.logger.Error("shortcut invocation failed", "command", s.command, "shortcut", s.shortcut, "error", err)
		return "", &InvocationError{Command: s.command, Err: err}
	}
	if out.ExitCode != 0 {
		execErr := &ExecutionError{ExitCode: out.ExitCode, Stderr: lossy(out.Stderr)}
		s.logger.Error("shortcut reported failure", "shortcut", s.shortcut, "exit_code", out.ExitCode, "stderr", execErr.Stderr)
		return "", execErr
	}
	s.logger.Info("shortcut finished", "shortcut", s.shortcut, "bytes", len(out.Stdout), "elapsed", time.Since(start))
	return lossy(out.Stdout), nil
}

// FetchTodos runs the shortcut and decodes its payload.
func (s *Source) FetchTodos(ctx context.Context) ([]todo.Todo, error) {
	payload, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	todos, err := todo.Decode([]byte(payload))
	if err != nil {
		s.logger.Error("decode todos failed", "error", err)
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	s.logger.Info("todos loaded", "count", len(todos))
	return todos, nil
}

// lossy decodes b as UTF-8, replacing each invalid byte with U+FFFD.
func lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
