package facts

import (
	"fmt"
	"strings"
)

// Username returns the current user's login name, falling back to $USER.
func (c *Collector) Username() (string, error) {
	u, err := c.currentUser()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}
	if name, ok := c.lookupEnv("USER"); ok && name != "" {
		return name, nil
	}
	if err == nil {
		err = ErrNotFound
	}
	return "", fmt.Errorf("username: %w", err)
}

func (c *Collector) Hostname() (string, error) {
	name, err := c.hostname()
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("hostname: %w", ErrNotFound)
	}
	return name, nil
}
