package facts

import (
	"context"
	"errors"

	"github.com/jeffrom/sysfetch/facts/pkgcount"
)

// Packages queries every configured package manager. Failed queries count as
// zero; their errors are joined and returned alongside the counts.
func (c *Collector) Packages(ctx context.Context) ([]pkgcount.Count, error) {
	counts := make([]pkgcount.Count, 0, len(c.Counters))
	var errs []error
	for _, ctr := range c.Counters {
		n, err := pkgcount.Query(ctx, ctr, c.IO.CommandStderr(ctr.Name()))
		if err != nil {
			errs = append(errs, err)
		}
		counts = append(counts, pkgcount.Count{Manager: ctr.Name(), Installed: n})
	}
	return counts, errors.Join(errs...)
}
