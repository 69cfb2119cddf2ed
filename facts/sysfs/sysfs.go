// Package sysfs is a read-only fs rooted at a directory that stands in for
// "/", so /proc, /sys and /etc can be read from fixture trees in tests.
package sysfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type FS struct {
	dirFS fs.FS
	root  string
}

func New(root string) FS {
	if root == "" {
		root = "/"
	}
	root = filepath.Clean(root)
	return FS{
		dirFS: os.DirFS(root),
		root:  root,
	}
}

// Root returns the directory standing in for "/".
func (fs FS) Root() string { return fs.root }

// Live reports whether the fs reads the running system rather than a fixture
// tree.
func (fs FS) Live() bool { return fs.root == "/" }

func (fs FS) Open(name string) (fs.File, error) { return fs.dirFS.Open(clean(name)) }

func (fs FS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(fs.Abs(name))
}

// ReadFile reads the named file. Pseudo-files report a size of zero, so this
// reads until EOF instead of trusting Stat.
func (fs FS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(fs.Abs(name))
}

func (fs FS) Glob(pattern string) ([]string, error) {
	return doublestar.Glob(fs, clean(pattern))
}

// Abs returns the real path of name, which may be given with or without a
// leading slash.
func (fs FS) Abs(name string) string {
	return filepath.Join(fs.root, clean(name))
}

func clean(name string) string {
	return strings.TrimPrefix(filepath.Clean("/"+name), "/")
}
