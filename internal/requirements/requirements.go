// Package requirements verifies that the external tools FrameKit depends on
// are present and recent enough before any installation operation runs.
package requirements

import (
	"regexp"

	"github.com/framekit-dev/framekit/internal/version"
)

// Tool identifiers recognized by defaults and by the min-version file.
const (
	ToolPython = "python"
	ToolNode   = "node"
	ToolNPM    = "npm"
	ToolGit    = "git"
)

// Verdict is the categorical outcome of probing one requirement.
type Verdict int

const (
	VerdictSatisfied Verdict = iota
	VerdictMissing
	VerdictVersionTooLow
	VerdictVersionUnknown
)

// String renders the verdict for diagnostics.
func (v Verdict) String() string {
	switch v {
	case VerdictSatisfied:
		return "satisfied"
	case VerdictMissing:
		return "missing"
	case VerdictVersionTooLow:
		return "version-too-low"
	case VerdictVersionUnknown:
		return "version-unknown"
	default:
		return "invalid"
	}
}

// Requirement describes one external tool check. Requirements are built once
// at startup and never mutated.
type Requirement struct {
	// Name is the tool identifier shown to the user (also the config key).
	Name string
	// Command is the executable looked up on PATH.
	Command string
	// MinVersion is the minimum acceptable (major, minor).
	MinVersion version.Version
	// Pattern optionally overrides the generic version extraction pattern.
	Pattern *regexp.Regexp
	// Mandatory marks requirements whose failure blocks installation.
	Mandatory bool
}

// Result is the outcome of probing one requirement. Produced once per run,
// never mutated.
type Result struct {
	Requirement Requirement
	Found       bool
	Detected    *version.Version
	Verdict     Verdict
}

// Satisfied reports whether the result passed its check.
func (r Result) Satisfied() bool {
	return r.Verdict == VerdictSatisfied
}

// Blocking reports whether the result fails the aggregate: any unsatisfied
// verdict on a mandatory requirement, including an unknown version.
func (r Result) Blocking() bool {
	return r.Requirement.Mandatory && !r.Satisfied()
}

// DefaultMinVersions holds the built-in thresholds used when the min-version
// file is absent or silent on a tool.
func DefaultMinVersions() map[string]version.Version {
	return map[string]version.Version{
		ToolPython: version.MustParse("3.12"),
		ToolNode:   version.MustParse("18.0"),
		ToolNPM:    version.MustParse("6.0"),
		ToolGit:    version.MustParse("2.0"),
	}
}

// Defaults builds the requirement set from the given thresholds, in the
// fixed order probes are run and reported.
func Defaults(mins map[string]version.Version) []Requirement {
	builtin := DefaultMinVersions()
	minFor := func(name string) version.Version {
		if v, ok := mins[name]; ok {
			return v
		}
		return builtin[name]
	}
	return []Requirement{
		{Name: ToolPython, Command: "python3", MinVersion: minFor(ToolPython), Mandatory: true},
		{Name: ToolGit, Command: "git", MinVersion: minFor(ToolGit), Mandatory: true},
		{Name: ToolNode, Command: "node", MinVersion: minFor(ToolNode)},
		{Name: ToolNPM, Command: "npm", MinVersion: minFor(ToolNPM)},
	}
}
