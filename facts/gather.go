package facts

import (
	"context"

	"github.com/jeffrom/sysfetch/facts/pkgcount"
	"github.com/jeffrom/sysfetch/stdio"
)

// Gather reads every fact in display order. The first failure of a field the
// policy marks Fatal stops gathering and is returned as a *FieldError; other
// failures are replaced by the field's placeholder.
func (c *Collector) Gather(ctx context.Context, pol Policy) (*Facts, error) {
	g := &gatherer{pol: pol, io: c.IO.AppendScope("facts")}
	f := &Facts{}

	f.Distro = g.str(FieldDistro, c.Distro)
	secs, err := c.Uptime()
	g.check(FieldUptime, err)
	f.UptimeSeconds = secs
	f.Shell = g.str(FieldShell, c.ShellName)
	f.Username = g.str(FieldUsername, c.Username)
	f.Hostname = g.str(FieldHostname, c.Hostname)
	f.Host = g.str(FieldHost, c.Host)
	f.Kernel = g.str(FieldKernel, c.Kernel)
	f.Uptime = FormatUptime(secs)

	if g.err == nil {
		counts, err := c.Packages(ctx)
		g.check(FieldPackages, err)
		f.Packages = counts
		f.PackageSummary = pkgcount.Summary(counts)
	}

	f.ShellVersion = g.str(FieldShellVersion, func() (string, error) { return c.ShellVersion(ctx, f.Shell) })
	f.Terminal = g.str(FieldTerminal, c.Terminal)
	f.Motherboard = g.str(FieldMotherboard, c.Motherboard)
	f.CPU = g.str(FieldCPU, c.CPUModel)
	f.Memory = g.str(FieldMemory, func() (string, error) {
		m, err := c.Memory()
		if err != nil {
			return "", err
		}
		return m.Format(c.MemoryUnit), nil
	})

	if g.err == nil {
		gpus, err := c.GPUs(ctx)
		if g.check(FieldGPU, err) {
			f.GPUs = gpus
		}
	}

	if g.err != nil {
		return nil, g.err
	}
	return f, nil
}

type gatherer struct {
	pol Policy
	io  stdio.StdIO
	err error
}

// check applies the policy to err and reports whether the field succeeded.
// Once a fatal error is recorded, nothing else is read.
func (g *gatherer) check(f Field, err error) bool {
	if err == nil {
		return g.err == nil
	}
	if g.err != nil {
		return false
	}
	if g.pol.action(f) == Fatal {
		g.err = &FieldError{Field: f, Err: err}
		return false
	}
	g.io.Warningf("%s: %v (using %q)", f, err, PlaceholderFor(f))
	return false
}

func (g *gatherer) str(f Field, fn func() (string, error)) string {
	if g.err != nil {
		return ""
	}
	s, err := fn()
	if g.check(f, err) {
		return s
	}
	return PlaceholderFor(f)
}
