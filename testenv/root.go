package testenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
)

// TempRoot copies the fixture filesystem under testdata/root into a temp
// directory and returns its path. Tests may freely modify the copy; it is
// removed when the test passes.
func TempRoot(t testing.TB) string {
	t.Helper()
	return TempRootFrom(t, Path("testdata", "root"))
}

func TempRootFrom(t testing.TB, fixtureDir string) string {
	t.Helper()
	if info, err := os.Stat(fixtureDir); err != nil {
		panic(err)
	} else if !info.IsDir() {
		panic(fixtureDir + " is not a directory")
	}
	tmpDir := TempDir(t, "root")
	t.Cleanup(func() { RemoveOnSuccess(t, tmpDir) })

	root := filepath.Join(tmpDir, "root")
	die(copy.Copy(fixtureDir, root, copy.Options{
		OnDirExists: func(src, dest string) copy.DirExistsAction { return copy.Replace },
	}))
	return root
}
