// Package pkgcount counts installed packages by asking each supported
// package manager for its list of installed packages.
package pkgcount

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jeffrom/sysfetch/executil"
)

// Counter is a package manager that can report how many packages it has
// installed. Count parses the output of Command.
type Counter interface {
	Name() string
	Binary() string
	Command() (string, []string)
	Count(out []byte) int
}

// Count is the number of installed packages for one manager. Zero means the
// manager is absent or the query failed.
type Count struct {
	Manager   string `json:"manager"`
	Installed int    `json:"installed"`
}

type lineCounter struct {
	name   string
	binary string
	cmd    string
	args   []string
}

func (c lineCounter) Name() string                { return c.name }
func (c lineCounter) Binary() string              { return c.binary }
func (c lineCounter) Command() (string, []string) { return c.cmd, c.args }

// Count returns the number of lines in out. A final line without a trailing
// newline is counted, and header lines are not skipped.
func (c lineCounter) Count(out []byte) int {
	n := bytes.Count(out, []byte{'\n'})
	if len(out) > 0 && out[len(out)-1] != '\n' {
		n++
	}
	return n
}

var (
	Apt = lineCounter{
		name:   "apt",
		binary: "dpkg",
		cmd:    "dpkg-query",
		args:   []string{"-f", ".\n", "-W"},
	}
	Dnf = lineCounter{
		name:   "dnf",
		binary: "dnf",
		cmd:    "dnf",
		args:   []string{"list", "installed", "--quiet"},
	}
	Pacman = lineCounter{
		name:   "pacman",
		binary: "pacman",
		cmd:    "pacman",
		args:   []string{"-Q"},
	}
	Snap = lineCounter{
		name:   "snap",
		binary: "snap",
		cmd:    "snap",
		args:   []string{"list"},
	}
)

// Defaults returns the supported managers in display order.
func Defaults() []Counter {
	return []Counter{Apt, Dnf, Pacman, Snap}
}

// Query returns the installed package count for c. An absent binary is not
// an error and yields zero.
func Query(ctx context.Context, c Counter, stderr io.Writer) (int, error) {
	if !executil.Installed(c.Binary()) {
		return 0, nil
	}
	name, args := c.Command()
	out, err := executil.Output(ctx, stderr, name, args...)
	if err != nil {
		return 0, fmt.Errorf("pkgcount: %s: %w", c.Name(), err)
	}
	return c.Count(out), nil
}

// Summary formats the non-zero counts as "name:count " in the order given.
func Summary(counts []Count) string {
	var b strings.Builder
	for _, c := range counts {
		if c.Installed <= 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:%d ", c.Manager, c.Installed)
	}
	return b.String()
}
