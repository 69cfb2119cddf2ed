package facts

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeffrom/sysfetch/executil"
)

// GPUs returns the lspci lines describing display and 3D controllers.
func (c *Collector) GPUs(ctx context.Context) ([]string, error) {
	out, err := executil.Output(ctx, c.IO.CommandStderr("lspci"), "lspci", "-nn", "-v")
	if err != nil {
		return nil, fmt.Errorf("lspci: %w", err)
	}
	return FilterGPUs(out), nil
}

// FilterGPUs returns the lines of lspci output for VGA and 3D controllers,
// unmodified.
func FilterGPUs(out []byte) []string {
	var gpus []string
	for _, line := range splitLines(out) {
		if strings.Contains(line, "VGA") || strings.Contains(line, "3D controller") {
			gpus = append(gpus, line)
		}
	}
	return gpus
}
