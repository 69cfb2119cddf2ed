package facts

import (
	"context"
	"testing"

	"github.com/jeffrom/sysfetch/testenv"
)

var wantGPUs = []string{
	"00:02.0 VGA compatible controller [0300]: Intel Corporation HD Graphics 630 [8086:591b] (rev 04)",
	"01:00.0 3D controller [0302]: NVIDIA Corporation GP107M [GeForce GTX 1050 Mobile] [10de:1c8d] (rev a1)",
}

func TestFilterGPUs(t *testing.T) {
	out := testenv.ReadFile(t, testenv.Path("testdata", "lspci.txt"))
	gpus := FilterGPUs([]byte(out))
	if len(gpus) != len(wantGPUs) {
		t.Fatalf("expected %d gpus, got %q", len(wantGPUs), gpus)
	}
	for i := range gpus {
		if gpus[i] != wantGPUs[i] {
			t.Errorf("gpu %d: expected %q, got %q", i, wantGPUs[i], gpus[i])
		}
	}

	if gpus := FilterGPUs([]byte("00:1f.3 Audio device [0403]: Intel Corporation\n")); len(gpus) != 0 {
		t.Errorf("expected no gpus, got %q", gpus)
	}
}

func TestGPUs(t *testing.T) {
	ctx := context.Background()
	testenv.UseFakeExec(t, map[string]testenv.FakeCommand{
		"lspci -nn -v": {Stdout: testenv.ReadFile(t, testenv.Path("testdata", "lspci.txt"))},
	})
	c := fixtureCollector(t)
	gpus, err := c.GPUs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(gpus) != 2 {
		t.Errorf("expected 2 gpus, got %q", gpus)
	}

	testenv.UseFakeExec(t, map[string]testenv.FakeCommand{
		"lspci": {ExitCode: 1},
	})
	if _, err := c.GPUs(ctx); err == nil {
		t.Error("expected error when lspci fails")
	}
}
