package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColorEmitterLabels(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	var out bytes.Buffer
	e := NewColorEmitter(&out)
	e.Info("starting")
	e.Success("done")
	e.Warning("slow")
	e.Error("broken")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{
		"[ .. ] starting",
		"[ OK ] done",
		"[WARN] slow",
		"[FAIL] broken",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), out.String())
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestRecorderCapturesBySeverity(t *testing.T) {
	var r Recorder
	r.Info("a")
	r.Success("b")
	r.Warning("c")
	r.Error("d")

	if len(r.Infos) != 1 || r.Infos[0] != "a" {
		t.Errorf("unexpected infos %v", r.Infos)
	}
	if len(r.Successes) != 1 || r.Successes[0] != "b" {
		t.Errorf("unexpected successes %v", r.Successes)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "c" {
		t.Errorf("unexpected warnings %v", r.Warnings)
	}
	if len(r.Errors) != 1 || r.Errors[0] != "d" {
		t.Errorf("unexpected errors %v", r.Errors)
	}
}
