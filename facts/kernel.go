package facts

import "strings"

// Kernel returns the kernel release, the third field of /proc/version.
func (c *Collector) Kernel() (string, error) {
	b, err := c.FS.ReadFile(pathVersion)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(b))
	if len(fields) < 3 {
		return "", malformed(pathVersion, "expected at least 3 fields, got %d", len(fields))
	}
	return fields[2], nil
}
