package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(3)
	r.Update(1, "fetched work")
	r.Update(2, "fetched about")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"3 steps", "[1/3] fetched work", "[2/3] fetched about", "complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestTerminalReporterNoStart(t *testing.T) {
	r := &TerminalReporter{}
	r.Update(1, "x")
	r.Finish()
}
