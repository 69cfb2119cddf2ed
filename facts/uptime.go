package facts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Uptime returns the seconds since boot from /proc/uptime.
func (c *Collector) Uptime() (float64, error) {
	b, err := c.FS.ReadFile(pathUptime)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return 0, malformed(pathUptime, "empty")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, malformed(pathUptime, "%v", err)
	}
	return secs, nil
}

// FormatUptime renders secs as days, hours and minutes, leaving out leading
// units whose whole part is zero. Each unit is rounded on its own, so 5399
// seconds is "1 Hours 30 Minutes" but 5400 is "2 Hours 30 Minutes".
func FormatUptime(secs float64) string {
	days := secs / secondsPerDay
	hours := math.Mod(secs, secondsPerDay) / secondsPerHour
	mins := math.Mod(secs, secondsPerHour) / secondsPerMinute

	switch {
	case math.Trunc(days) == 0 && math.Trunc(hours) == 0:
		return fmt.Sprintf("%.0f Minutes", mins)
	case math.Trunc(days) == 0:
		return fmt.Sprintf("%.0f Hours %.0f Minutes", hours, mins)
	default:
		return fmt.Sprintf("%.0f Days %.0f Hours %.0f Minutes", days, hours, mins)
	}
}
