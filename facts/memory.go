package facts

import (
	"fmt"
	"strconv"
	"strings"
)

// MemoryUnit selects how memory sizes are displayed.
type MemoryUnit string

const (
	// MemoryLegacy truncates KiB/1024 to a whole number and labels it "MB".
	MemoryLegacy MemoryUnit = "legacy"
	// MemoryMiB divides exactly and labels the result "MiB".
	MemoryMiB MemoryUnit = "mib"
)

func ParseMemoryUnit(s string) (MemoryUnit, error) {
	switch u := MemoryUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case "", MemoryLegacy:
		return MemoryLegacy, nil
	case MemoryMiB:
		return u, nil
	default:
		return "", fmt.Errorf("invalid memory unit %q (want %q or %q)", s, MemoryLegacy, MemoryMiB)
	}
}

// Memory holds the first two /proc/meminfo values, in KiB.
type Memory struct {
	TotalKiB int64
	FreeKiB  int64
}

func (m Memory) UsedKiB() int64 { return m.TotalKiB - m.FreeKiB }

// Format renders used/total memory. In legacy mode the values are truncated
// before formatting, so the decimals are always ".00".
func (m Memory) Format(unit MemoryUnit) string {
	used, total := m.UsedKiB(), m.TotalKiB
	if unit == MemoryMiB {
		return fmt.Sprintf("%.2fMiB/%.2fMiB", float64(used)/1024, float64(total)/1024)
	}
	return fmt.Sprintf("%.2fMB/%.2fMB", float64(used/1024), float64(total/1024))
}

func (c *Collector) Memory() (Memory, error) {
	b, err := c.FS.ReadFile(pathMemInfo)
	if err != nil {
		return Memory{}, err
	}
	return ParseMemInfo(b)
}

// ParseMemInfo reads the total from the first line and the free amount from
// the second, whatever their keys.
func ParseMemInfo(b []byte) (Memory, error) {
	lines := splitLines(b)
	if len(lines) < 2 {
		return Memory{}, malformed(pathMemInfo, "expected at least 2 lines, got %d", len(lines))
	}
	total, err := memInfoValue(lines[0])
	if err != nil {
		return Memory{}, err
	}
	free, err := memInfoValue(lines[1])
	if err != nil {
		return Memory{}, err
	}
	return Memory{TotalKiB: total, FreeKiB: free}, nil
}

func memInfoValue(line string) (int64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, malformed(pathMemInfo, "no value in %q", line)
	}
	n, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, malformed(pathMemInfo, "%v", err)
	}
	return n, nil
}
