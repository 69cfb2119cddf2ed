package facts

import "strings"

// Host returns the system vendor and product name.
func (c *Collector) Host() (string, error) {
	return c.readPair(pathSysVendor, pathProductName)
}

// Motherboard returns the board vendor and board name.
func (c *Collector) Motherboard() (string, error) {
	return c.readPair(pathBoardVendor, pathBoardName)
}

func (c *Collector) readPair(first, second string) (string, error) {
	a, err := c.readTrimmed(first)
	if err != nil {
		return "", err
	}
	b, err := c.readTrimmed(second)
	if err != nil {
		return "", err
	}
	return a + " " + b, nil
}

func (c *Collector) readTrimmed(path string) (string, error) {
	b, err := c.FS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
