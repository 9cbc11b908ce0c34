package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"reminders/internal/shortcuts"
	"reminders/internal/ui"
)

func TestFailureMessage(t *testing.T) {
	loadErr := &ui.LoadError{Err: &shortcuts.ExecutionError{ExitCode: 1, Stderr: "not found"}}
	assert.Equal(t, "failed to load todos: shortcut failed with exit status 1: not found", failureMessage(loadErr))

	assert.Equal(t, "error running program: tty gone", failureMessage(errors.New("tty gone")))
}
