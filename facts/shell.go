package facts

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jeffrom/sysfetch/executil"
)

// ShellName returns the base name of $SHELL.
func (c *Collector) ShellName() (string, error) {
	p, ok := c.lookupEnv("SHELL")
	if !ok || p == "" {
		return "", fmt.Errorf("$SHELL: %w", ErrNotFound)
	}
	name := filepath.Base(p)
	if name == "/" || name == "." {
		return "", fmt.Errorf("$SHELL=%q: %w", p, ErrMalformed)
	}
	return name, nil
}

// ShellVersion runs "<shell> --version" and returns the first line it
// printed, without control characters. A non-zero exit is fine as long as
// something was printed.
func (c *Collector) ShellVersion(ctx context.Context, shell string) (string, error) {
	out, err := executil.Output(ctx, c.IO.CommandStderr(shell), shell, "--version")
	if !executil.Started(err) {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%s --version: invalid utf-8: %w", shell, ErrMalformed)
	}
	lines := splitLines(out)
	if len(lines) == 0 {
		return "", fmt.Errorf("%s --version: no output: %w", shell, ErrNotFound)
	}
	version := strings.TrimSpace(stripControl(lines[0]))
	if version == "" {
		return "", fmt.Errorf("%s --version: empty first line: %w", shell, ErrNotFound)
	}
	return version, nil
}

// Terminal returns $TERM.
func (c *Collector) Terminal() (string, error) {
	term, ok := c.lookupEnv("TERM")
	if !ok {
		return "", fmt.Errorf("$TERM: %w", ErrNotFound)
	}
	return term, nil
}
