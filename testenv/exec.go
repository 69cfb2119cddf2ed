package testenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/jeffrom/sysfetch/executil"
)

// FakeCommand is the canned result of a faked subprocess.
type FakeCommand struct {
	Stdout   string
	ExitCode int
}

// FakeExec returns a replacement for executil.CommandContext. Commands are
// matched first by their full command line ("name arg1 arg2"), then by name
// alone. Commands with no match fail to start, as if the binary were missing.
//
// The returned commands re-execute the test binary, so every package using
// FakeExec needs a test calling HelperProcess:
//
//	func TestHelperProcess(t *testing.T) { testenv.HelperProcess() }
func FakeExec(cmds map[string]FakeCommand) func(context.Context, string, ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		fc, ok := cmds[strings.Join(append([]string{name}, args...), " ")]
		if !ok {
			fc, ok = cmds[name]
		}
		if !ok {
			return exec.CommandContext(ctx, filepath.Join(os.TempDir(), "sysfetch-test-missing", name), args...)
		}

		arg := []string{"-test.run=TestHelperProcess", "--", name}
		arg = append(arg, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], arg...)
		cmd.Env = []string{
			"_TEST_WANT_HELPER_PROCESS=1",
			"_TEST_STDOUT=" + fc.Stdout,
			"_TEST_EXITCODE=" + strconv.Itoa(fc.ExitCode),
		}
		return cmd
	}
}

// FakeLookPath returns a replacement for executil.LookPath that only finds
// the given binaries.
func FakeLookPath(present ...string) func(string) (string, error) {
	found := make(map[string]bool, len(present))
	for _, p := range present {
		found[p] = true
	}
	return func(name string) (string, error) {
		if !found[name] {
			return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
		}
		return "/usr/bin/" + name, nil
	}
}

// UseFakeExec installs FakeExec and FakeLookPath into executil for the
// duration of the test.
func UseFakeExec(t testing.TB, cmds map[string]FakeCommand, present ...string) {
	executil.SetCommand(FakeExec(cmds))
	executil.SetLookPath(FakeLookPath(present...))
	t.Cleanup(func() {
		executil.ResetCommand()
		executil.ResetLookPath()
	})
}

// HelperProcess is the fake subprocess body. It does nothing unless the test
// binary was started by FakeExec.
func HelperProcess() {
	if os.Getenv("_TEST_WANT_HELPER_PROCESS") != "1" {
		return
	}

	code := 0
	if codes := os.Getenv("_TEST_EXITCODE"); codes != "" {
		c, err := strconv.ParseInt(codes, 10, 8)
		if err != nil {
			panic(err)
		}
		code = int(c)
	}
	fmt.Fprint(os.Stdout, os.Getenv("_TEST_STDOUT"))
	os.Exit(code)
}
