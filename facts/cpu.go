package facts

import "strings"

// cpuinfo's fifth line is "model name" on x86.
const cpuModelLine = 4

// CPUModel returns the CPU model name from /proc/cpuinfo.
func (c *Collector) CPUModel() (string, error) {
	b, err := c.FS.ReadFile(pathCPUInfo)
	if err != nil {
		return "", err
	}
	lines := splitLines(b)
	if len(lines) <= cpuModelLine {
		return "", malformed(pathCPUInfo, "expected at least %d lines, got %d", cpuModelLine+1, len(lines))
	}
	line := lines[cpuModelLine]
	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		return "", malformed(pathCPUInfo, "line %d has no ':'", cpuModelLine+1)
	}
	return strings.TrimSpace(line[idx+1:]), nil
}
