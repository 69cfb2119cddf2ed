package facts

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zcalusic/sysinfo"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

var (
	si     sysinfo.SysInfo
	siOnce sync.Once
)

// sysinfoOSName reads the OS name the way sysinfo does on the live system.
func sysinfoOSName() string {
	siOnce.Do(si.GetSysInfo)
	return si.OS.Name
}

// Distro returns the human-readable OS name from os-release. When reading
// the live system, sysinfo is consulted if no os-release file is usable.
func (c *Collector) Distro() (string, error) {
	for _, p := range c.osReleasePaths() {
		b, err := c.FS.ReadFile(p)
		if err != nil {
			continue
		}
		name, err := parseOSRelease(p, b)
		if err != nil {
			c.IO.Debugf("distro: %v", err)
			continue
		}
		return name, nil
	}

	if c.osName != nil {
		if name := strings.TrimSpace(c.osName()); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("distro: %w", ErrNotFound)
}

// osReleasePaths returns the os-release files present, /etc first.
func (c *Collector) osReleasePaths() []string {
	matches, err := c.FS.Glob("{etc,usr/lib}/os-release")
	if err != nil || len(matches) == 0 {
		return []string{pathOSRelease, pathOSReleaseLib}
	}
	sort.Strings(matches)
	return matches
}

// parseOSRelease evaluates an os-release file, which is a list of shell
// variable assignments, and picks the most descriptive name in it.
func parseOSRelease(path string, b []byte) (string, error) {
	vars, err := osReleaseVars(path, b)
	if err != nil {
		return "", err
	}
	get := func(key string) string { return strings.TrimSpace(vars[key]) }

	if pretty := get("PRETTY_NAME"); pretty != "" {
		return pretty, nil
	}
	name, version := get("NAME"), get("VERSION")
	switch {
	case name != "" && version != "":
		return name + " " + version, nil
	case name != "":
		return name, nil
	}
	return "", malformed(path, "no PRETTY_NAME or NAME")
}

// osReleaseVars collects the top-level assignments in an os-release file.
// Values may refer to variables assigned earlier in the file. Command
// substitutions are rejected.
func osReleaseVars(path string, b []byte) (map[string]string, error) {
	f, err := syntax.NewParser().Parse(bytes.NewReader(b), path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	vars := make(map[string]string)
	cfg := &expand.Config{
		Env: expand.FuncEnviron(func(name string) string { return vars[name] }),
	}
	for _, stmt := range f.Stmts {
		var assigns []*syntax.Assign
		switch cmd := stmt.Cmd.(type) {
		case *syntax.CallExpr:
			if len(cmd.Args) == 0 {
				assigns = cmd.Assigns
			}
		case *syntax.DeclClause:
			assigns = cmd.Args
		}
		for _, as := range assigns {
			if as.Name == nil || as.Naked || as.Array != nil {
				continue
			}
			val, err := expand.Literal(cfg, as.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", path, as.Name.Value, err)
			}
			vars[as.Name.Value] = val
		}
	}
	return vars, nil
}
