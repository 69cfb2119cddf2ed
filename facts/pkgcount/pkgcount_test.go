package pkgcount

import (
	"context"
	"strings"
	"testing"

	"github.com/jeffrom/sysfetch/testenv"
)

func TestHelperProcess(t *testing.T) { testenv.HelperProcess() }

func TestSummary(t *testing.T) {
	counts := []Count{
		{Manager: "apt", Installed: 120},
		{Manager: "dnf", Installed: 0},
		{Manager: "pacman", Installed: 0},
		{Manager: "snap", Installed: 5},
	}
	if got, want := Summary(counts), "apt:120 snap:5 "; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := Summary(nil); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
}

func TestCount(t *testing.T) {
	tcs := []struct {
		counter Counter
		fixture string
		want    int
	}{
		{Apt, "dpkg-query.txt", 5},
		{Dnf, "dnf.txt", 3},
		{Pacman, "pacman.txt", 3},
		{Snap, "snap.txt", 4},
	}
	for _, tc := range tcs {
		t.Run(tc.counter.Name(), func(t *testing.T) {
			out := testenv.ReadFile(t, testenv.Path("testdata", "pkgcount", tc.fixture))
			if got := tc.counter.Count([]byte(out)); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCountNoTrailingNewline(t *testing.T) {
	if got := Pacman.Count([]byte("a 1\nb 2")); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := Pacman.Count(nil); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestCountLongLines(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	out := []byte(long + "\n" + long + "\n" + long)
	if got := Apt.Count(out); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestDefaultsOrder(t *testing.T) {
	want := []string{"apt", "dnf", "pacman", "snap"}
	counters := Defaults()
	if len(counters) != len(want) {
		t.Fatalf("expected %d counters, got %d", len(want), len(counters))
	}
	for i, c := range counters {
		if c.Name() != want[i] {
			t.Errorf("counter %d: expected %q, got %q", i, want[i], c.Name())
		}
	}
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	testenv.UseFakeExec(t, map[string]testenv.FakeCommand{
		"pacman": {Stdout: testenv.ReadFile(t, testenv.Path("testdata", "pkgcount", "pacman.txt"))},
		"snap":   {Stdout: "Name Version\n", ExitCode: 1},
	}, "pacman", "snap", "dpkg")

	n, err := Query(ctx, Pacman, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("pacman: expected 3, got %d", n)
	}

	// dnf is not in $PATH: absent, not an error.
	n, err = Query(ctx, Dnf, nil)
	if err != nil || n != 0 {
		t.Errorf("dnf: expected 0 and no error, got %d, %v", n, err)
	}

	n, err = Query(ctx, Snap, nil)
	if err == nil {
		t.Error("snap: expected error from non-zero exit")
	}
	if n != 0 {
		t.Errorf("snap: expected 0 on failure, got %d", n)
	}

	// dpkg is present but dpkg-query can't be started.
	n, err = Query(ctx, Apt, nil)
	if err == nil || n != 0 {
		t.Errorf("apt: expected 0 and an error, got %d, %v", n, err)
	}
}
