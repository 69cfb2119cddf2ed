// Package render lays out gathered facts beside the logo.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jeffrom/sysfetch/facts"
)

const rule = "____________________"

type Options struct {
	// Color enables ANSI styling.
	Color bool

	// LineTemplate overrides DefaultLineTemplate.
	LineTemplate string
}

type Renderer struct {
	w    io.Writer
	st   styler
	tmpl *template.Template
	art  []string
}

func New(w io.Writer, opts Options) (*Renderer, error) {
	st := newStyler(w, opts.Color)
	tmpl, err := parseLineTemplate(opts.LineTemplate, st)
	if err != nil {
		return nil, err
	}
	return &Renderer{w: w, st: st, tmpl: tmpl, art: Art()}, nil
}

// Lines returns the info column: a user@host header, a rule, a blank line,
// then one line per fact in fixed order and one per GPU.
func (r *Renderer) Lines(f *facts.Facts) ([]string, error) {
	lines := []string{
		r.st.Label(f.Username + "@" + f.Hostname),
		r.st.Rule(rule),
		"",
	}

	infos := []Line{
		{"OS", f.Distro},
		{"Host", f.Host},
		{"Kernel", f.Kernel},
		{"Uptime", f.Uptime},
		{"Packages", f.PackageSummary},
		{"Shell", f.ShellVersion},
		{"Terminal", f.Terminal},
		{"Motherboard", f.Motherboard},
		{"CPU", f.CPU},
		{"Memory", f.Memory},
	}
	for i, gpu := range f.GPUs {
		infos = append(infos, Line{fmt.Sprintf("GPU %d", i+1), GPUName(gpu)})
	}

	b := &bytes.Buffer{}
	for _, info := range infos {
		b.Reset()
		if err := r.tmpl.Execute(b, info); err != nil {
			return nil, fmt.Errorf("render: %s: %w", info.Label, err)
		}
		lines = append(lines, b.String())
	}
	return lines, nil
}

// Render writes the art and info columns side by side, padding whichever is
// shorter with blanks.
func (r *Renderer) Render(f *facts.Facts) error {
	lines, err := r.Lines(f)
	if err != nil {
		return err
	}

	n := len(r.art)
	if len(lines) > n {
		n = len(lines)
	}
	for i := 0; i < n; i++ {
		art, info := " ", " "
		if i < len(r.art) {
			art = r.art[i]
		}
		if i < len(lines) {
			info = lines[i]
		}
		padded := fmt.Sprintf("  %-*s", ArtWidth, art)
		if _, err := fmt.Fprintf(r.w, "%s| %s\n", r.st.Art(padded), info); err != nil {
			return err
		}
	}
	return nil
}

// GPUName extracts the device name from an lspci line: the third
// ':'-separated field, cut at the first '['. Lines with fewer fields are
// returned whole.
func GPUName(line string) string {
	parts := strings.SplitN(line, ":", 4)
	if len(parts) < 3 {
		return strings.TrimSpace(line)
	}
	name := parts[2]
	if idx := strings.Index(name, "["); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}
