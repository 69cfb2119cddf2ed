package stdio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

type PrefixWriter struct {
	prefix string
	w      io.Writer
}

func NewPrefixWriter(w io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{w: w, prefix: prefix}
}

// Write writes each line of p prefixed with the writer's prefix. It always
// reports len(p) bytes consumed on success so it can back an exec.Cmd's
// stderr.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	s := bufio.NewScanner(bytes.NewReader(p))
	for s.Scan() {
		line := s.Text()
		res := fmt.Sprintf("%12s |  %s\n", w.prefix, line)
		if _, err := io.WriteString(w.w, res); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
