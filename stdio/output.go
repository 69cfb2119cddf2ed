package stdio

import (
	"fmt"
	"strings"
)

func (o StdIO) Debugf(msg string, args ...interface{}) {
	if !o.Verbose {
		return
	}
	msg = fmt.Sprintf("DEBUG: %s%s", fmtScopes(o.scopes), msg)
	fmt.Fprintf(o.Stderr(), msg+"\n", args...)
}

// Warningf reports a degraded result on stderr unless o is quiet.
func (o StdIO) Warningf(msg string, args ...interface{}) {
	if o.Quiet {
		return
	}
	fmt.Fprintf(o.Stderr(), "WARNING: "+fmtScopes(o.scopes)+msg+"\n", args...)
}

func fmtScopes(scopes []string) string {
	if len(scopes) == 0 {
		return ""
	}
	return strings.Join(scopes, ":") + ": "
}
