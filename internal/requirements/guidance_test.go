package requirements

import (
	"testing"

	"github.com/framekit-dev/framekit/internal/platform"
)

func TestGuidancePerPlatform(t *testing.T) {
	if got := Guidance(ToolPython, platform.KindDebian); got != "sudo apt install python3" {
		t.Errorf("debian python guidance = %q", got)
	}
	if got := Guidance(ToolGit, platform.KindMacOS); got != "brew install git" {
		t.Errorf("macos git guidance = %q", got)
	}
}

func TestGuidanceFallsBackToGeneric(t *testing.T) {
	if got := Guidance(ToolNode, platform.KindUnknown); got == "" {
		t.Error("expected generic guidance for unknown platform")
	}
	if got := Guidance("made-up-tool", platform.KindDebian); got != "" {
		t.Errorf("unknown tool guidance = %q, want empty", got)
	}
}
