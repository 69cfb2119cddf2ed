// Package stdio manages standard io in a way that's easily mockable in tests
// while also not depending on overriding os.Stdin, os.Stdout, and os.Stderr.
package stdio

import (
	"context"
	"io"
	"os"
)

type contextKey string

var stdioKey = contextKey("stdio")

type StdIO struct {
	Out     io.Writer
	Err     io.Writer
	Quiet   bool
	Verbose bool
	scopes  []string
}

func (o StdIO) Stdout() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o StdIO) Stderr() io.Writer {
	if o.Err != nil {
		return o.Err
	}
	return os.Stderr
}

// CommandStderr is where subprocess stderr should go: prefixed with the
// command name when verbose, discarded otherwise.
func (o StdIO) CommandStderr(name string) io.Writer {
	if !o.Verbose {
		return io.Discard
	}
	return NewPrefixWriter(o.Stderr(), name)
}

func (o StdIO) AppendScope(scopes ...string) StdIO {
	o.scopes = append(o.scopes, scopes...)
	return o
}

func SetContext(ctx context.Context, o *StdIO) context.Context {
	return context.WithValue(ctx, stdioKey, o)
}

// FromContext returns the StdIO set by SetContext, or a default one writing
// to the process's stdout and stderr.
func FromContext(ctx context.Context) *StdIO {
	if ctx == nil {
		panic("stdio: context was nil")
	}
	iv := ctx.Value(stdioKey)
	if iv == nil {
		return &StdIO{}
	}
	return iv.(*StdIO)
}
