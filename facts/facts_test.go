package facts

import (
	"errors"
	"io/fs"
	"os/user"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeffrom/sysfetch/testenv"
)

func TestHelperProcess(t *testing.T) { testenv.HelperProcess() }

func newTestCollector(t testing.TB, root string, env map[string]string) *Collector {
	t.Helper()
	c := New(root)
	c.lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	c.hostname = func() (string, error) { return "testhost", nil }
	c.currentUser = func() (*user.User, error) { return &user.User{Username: "jeff"}, nil }
	return c
}

func fixtureCollector(t testing.TB) *Collector {
	t.Helper()
	return newTestCollector(t, testenv.Path("testdata", "root"), nil)
}

func TestHost(t *testing.T) {
	c := fixtureCollector(t)
	host, err := c.Host()
	if err != nil {
		t.Fatal(err)
	}
	if want := "LENOVO 20HRCTO1WW"; host != want {
		t.Errorf("expected %q, got %q", want, host)
	}
}

func TestMotherboard(t *testing.T) {
	root := testenv.TempRoot(t)
	testenv.WriteFile(t, filepath.Join(root, pathBoardName), "  Z390 AORUS PRO  \n")
	c := newTestCollector(t, root, nil)

	mb, err := c.Motherboard()
	if err != nil {
		t.Fatal(err)
	}
	if want := "LENOVO Z390 AORUS PRO"; mb != want {
		t.Errorf("expected %q, got %q", want, mb)
	}

	testenv.Remove(t, filepath.Join(root, pathBoardVendor))
	if _, err := c.Motherboard(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestKernel(t *testing.T) {
	c := fixtureCollector(t)
	k, err := c.Kernel()
	if err != nil {
		t.Fatal(err)
	}
	if want := "6.1.0-18-amd64"; k != want {
		t.Errorf("expected %q, got %q", want, k)
	}

	root := testenv.TempRoot(t)
	testenv.WriteFile(t, filepath.Join(root, pathVersion), "Linux version\n")
	c = newTestCollector(t, root, nil)
	if _, err := c.Kernel(); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestCPUModel(t *testing.T) {
	c := fixtureCollector(t)
	model, err := c.CPUModel()
	if err != nil {
		t.Fatal(err)
	}
	if want := "Intel(R) Core(TM) i7-7700HQ CPU @ 2.80GHz"; model != want {
		t.Errorf("expected %q, got %q", want, model)
	}
}

func TestCPUModelMalformed(t *testing.T) {
	tcs := []struct {
		name    string
		cpuinfo string
	}{
		{"too short", "processor\t: 0\nvendor_id\t: GenuineIntel\ncpu family\t: 6\nmodel\t\t: 158\n"},
		{"no colon", "a: 1\nb: 2\nc: 3\nd: 4\nmodel name Intel\n"},
		{"empty", ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			root := testenv.TempRoot(t)
			testenv.WriteFile(t, filepath.Join(root, pathCPUInfo), tc.cpuinfo)
			c := newTestCollector(t, root, nil)
			if _, err := c.CPUModel(); !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestCPUModelMissing(t *testing.T) {
	root := testenv.TempRoot(t)
	testenv.Remove(t, filepath.Join(root, pathCPUInfo))
	c := newTestCollector(t, root, nil)
	if _, err := c.CPUModel(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestUsername(t *testing.T) {
	c := newTestCollector(t, "", map[string]string{"USER": "fallback"})
	name, err := c.Username()
	if err != nil || name != "jeff" {
		t.Errorf("expected jeff, got %q (%v)", name, err)
	}

	c.currentUser = func() (*user.User, error) { return nil, errors.New("no passwd entry") }
	name, err = c.Username()
	if err != nil || name != "fallback" {
		t.Errorf("expected fallback, got %q (%v)", name, err)
	}

	c.lookupEnv = func(string) (string, bool) { return "", false }
	if _, err := c.Username(); err == nil {
		t.Error("expected error with no user source")
	}
}

func TestHostname(t *testing.T) {
	c := fixtureCollector(t)
	c.hostname = func() (string, error) { return "box\n", nil }
	if name, err := c.Hostname(); err != nil || name != "box" {
		t.Errorf("expected box, got %q (%v)", name, err)
	}
	c.hostname = func() (string, error) { return "", nil }
	if _, err := c.Hostname(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitLines(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024)
	tcs := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
		{long + "\nend\n", []string{long, "end"}},
	}
	for _, tc := range tcs {
		got := splitLines([]byte(tc.in))
		if len(got) != len(tc.want) {
			t.Errorf("expected %d lines, got %d", len(tc.want), len(got))
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("line %d: expected %.20q, got %.20q", i, tc.want[i], got[i])
			}
		}
	}
}
