// Package facts gathers "facts", which are data read from the environment
// the program runs in: identity, OS, hardware, and shell metadata.
//
// Each accessor on Collector reads a single pseudo-file, environment variable
// or subprocess and returns its value along with any error. Accessors never
// decide whether a failure is fatal; Gather does that using a Policy.
package facts

import (
	"os"
	"os/user"

	"github.com/jeffrom/sysfetch/facts/pkgcount"
	"github.com/jeffrom/sysfetch/facts/sysfs"
	"github.com/jeffrom/sysfetch/stdio"
)

const (
	pathOSRelease    = "etc/os-release"
	pathOSReleaseLib = "usr/lib/os-release"
	pathSysVendor    = "sys/class/dmi/id/sys_vendor"
	pathProductName  = "sys/class/dmi/id/product_name"
	pathBoardVendor  = "sys/class/dmi/id/board_vendor"
	pathBoardName    = "sys/class/dmi/id/board_name"
	pathVersion      = "proc/version"
	pathUptime       = "proc/uptime"
	pathCPUInfo      = "proc/cpuinfo"
	pathMemInfo      = "proc/meminfo"
)

// Facts are the values gathered by Gather, ready for display.
type Facts struct {
	Username       string           `json:"username"`
	Hostname       string           `json:"hostname"`
	Distro         string           `json:"distro"`
	Host           string           `json:"host"`
	Kernel         string           `json:"kernel"`
	UptimeSeconds  float64          `json:"uptimeSeconds"`
	Uptime         string           `json:"uptime"`
	Packages       []pkgcount.Count `json:"packages"`
	PackageSummary string           `json:"packageSummary"`
	Shell          string           `json:"shell"`
	ShellVersion   string           `json:"shellVersion"`
	Terminal       string           `json:"terminal"`
	Motherboard    string           `json:"motherboard"`
	CPU            string           `json:"cpu"`
	Memory         string           `json:"memory"`
	GPUs           []string         `json:"gpus"`
}

type Collector struct {
	FS         sysfs.FS
	Counters   []pkgcount.Counter
	MemoryUnit MemoryUnit
	IO         stdio.StdIO

	lookupEnv   func(string) (string, bool)
	hostname    func() (string, error)
	currentUser func() (*user.User, error)
	// osName is the distro fallback when no os-release file is usable. It
	// is only set when reading the live root.
	osName func() string
}

// New returns a Collector reading pseudo-files relative to root. An empty
// root means "/".
func New(root string) *Collector {
	c := &Collector{
		FS:          sysfs.New(root),
		Counters:    pkgcount.Defaults(),
		MemoryUnit:  MemoryLegacy,
		lookupEnv:   os.LookupEnv,
		hostname:    os.Hostname,
		currentUser: user.Current,
	}
	if c.FS.Live() {
		c.osName = sysinfoOSName
	}
	return c
}
