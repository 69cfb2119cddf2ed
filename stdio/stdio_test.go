package stdio

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestWarningf(t *testing.T) {
	errb := &bytes.Buffer{}
	o := StdIO{Err: errb}.AppendScope("facts")
	o.Warningf("kernel: %s", "unreadable")
	if got, want := errb.String(), "WARNING: facts: kernel: unreadable\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	errb.Reset()
	o.Quiet = true
	o.Warningf("ignored")
	if errb.Len() != 0 {
		t.Errorf("expected no output when quiet, got %q", errb.String())
	}
}

func TestDebugf(t *testing.T) {
	errb := &bytes.Buffer{}
	o := StdIO{Err: errb}
	o.Debugf("hidden")
	if errb.Len() != 0 {
		t.Fatalf("expected no debug output unless verbose, got %q", errb.String())
	}
	o.Verbose = true
	o.Debugf("shown %d", 1)
	if got, want := errb.String(), "DEBUG: shown 1\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPrefixWriter(t *testing.T) {
	b := &bytes.Buffer{}
	w := NewPrefixWriter(b, "lspci")
	p := []byte("one\ntwo\n")
	n, err := w.Write(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(p) {
		t.Errorf("expected %d bytes written, got %d", len(p), n)
	}
	want := "       lspci |  one\n       lspci |  two\n"
	if b.String() != want {
		t.Errorf("expected %q, got %q", want, b.String())
	}
}

func TestCommandStderr(t *testing.T) {
	o := StdIO{}
	if o.CommandStderr("dnf") != io.Discard {
		t.Error("expected stderr to be discarded when not verbose")
	}
	o.Verbose = true
	if _, ok := o.CommandStderr("dnf").(*PrefixWriter); !ok {
		t.Error("expected a prefix writer when verbose")
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()
	if o := FromContext(ctx); o == nil || o.Verbose {
		t.Fatalf("expected default stdio, got %+v", o)
	}
	want := &StdIO{Verbose: true}
	ctx = SetContext(ctx, want)
	if got := FromContext(ctx); got != want {
		t.Errorf("expected %p, got %p", want, got)
	}
}
