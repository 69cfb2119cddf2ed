// Package executil wraps some functions in the exec package to ease testing
// and common subprocess use cases.
package executil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// CommandContext is initialized to exec.CommandContext. It is intended to be
// overridden in tests.
var CommandContext = exec.CommandContext

// LookPath is initialized to exec.LookPath. It is intended to be overridden
// in tests.
var LookPath = exec.LookPath

func SetCommand(fn func(context.Context, string, ...string) *exec.Cmd) {
	CommandContext = fn
}

func ResetCommand() { CommandContext = exec.CommandContext }

func SetLookPath(fn func(string) (string, error)) {
	LookPath = fn
}

func ResetLookPath() { LookPath = exec.LookPath }

// Installed reports whether name can be found in $PATH. Any lookup error
// means the binary is treated as absent.
func Installed(name string) bool {
	_, err := LookPath(name)
	return err == nil
}

// Output runs the command and returns whatever it wrote to stdout, even when
// it exits non-zero. stderr is discarded if nil.
func Output(ctx context.Context, stderr io.Writer, name string, args ...string) ([]byte, error) {
	cmd := CommandContext(ctx, name, args...)
	outb := &bytes.Buffer{}
	cmd.Stdout = outb
	if stderr == nil {
		stderr = io.Discard
	}
	cmd.Stderr = stderr

	err := cmd.Run()
	return outb.Bytes(), err
}

// Started reports whether err, returned from running a command, means the
// process ran to completion but exited non-zero, as opposed to failing to
// start at all.
func Started(err error) bool {
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
