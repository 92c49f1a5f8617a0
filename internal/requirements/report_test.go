package requirements

import (
	"strings"
	"testing"

	"github.com/framekit-dev/framekit/internal/emit"
	"github.com/framekit-dev/framekit/internal/platform"
	"github.com/framekit-dev/framekit/internal/version"
)

func TestReportEmitsHeaderEntriesAndGuidance(t *testing.T) {
	rec := &emit.Recorder{}
	failures := []Result{
		{
			Requirement: Requirement{Name: ToolPython, Command: "python3", MinVersion: version.MustParse("3.12"), Mandatory: true},
			Verdict:     VerdictMissing,
		},
		{
			Requirement: Requirement{Name: ToolGit, Command: "git", MinVersion: version.MustParse("2.0"), Mandatory: true},
			Found:       true,
			Detected:    &version.Version{Major: 1, Minor: 8, Patch: 0, HasPatch: true},
			Verdict:     VerdictVersionTooLow,
		},
	}

	Report(failures, platform.KindDebian, rec)

	if len(rec.Errors) != 3 {
		t.Fatalf("expected header plus one error per failure, got %v", rec.Errors)
	}
	if !strings.Contains(rec.Errors[1], "python") {
		t.Errorf("expected python entry, got %q", rec.Errors[1])
	}
	if !strings.Contains(rec.Errors[2], "1.8.0") {
		t.Errorf("expected detected git version, got %q", rec.Errors[2])
	}

	var sawAptHint, sawFooter bool
	for _, line := range rec.Infos {
		if strings.Contains(line, "apt") {
			sawAptHint = true
		}
		if strings.Contains(line, "--skip-checks") {
			sawFooter = true
		}
	}
	if !sawAptHint {
		t.Errorf("expected apt guidance, got %v", rec.Infos)
	}
	if !sawFooter {
		t.Errorf("expected bypass footer, got %v", rec.Infos)
	}
}

func TestReportNoFailuresEmitsNothing(t *testing.T) {
	rec := &emit.Recorder{}
	Report(nil, platform.KindMacOS, rec)
	if len(rec.Errors) != 0 || len(rec.Infos) != 0 {
		t.Fatalf("expected silence, got errors=%v infos=%v", rec.Errors, rec.Infos)
	}
}
