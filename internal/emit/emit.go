// Package emit renders advisory status lines with severity levels.
package emit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Emitter receives one human-readable status line per event. Output is
// advisory only; callers never branch on whether emission succeeded.
type Emitter interface {
	Info(message string)
	Success(message string)
	Warning(message string)
	Error(message string)
}

const (
	labelInfo    = "[ .. ]"
	labelSuccess = "[ OK ]"
	labelWarning = "[WARN]"
	labelError   = "[FAIL]"
)

// ColorEmitter writes severity-labeled lines to a writer. Colors follow the
// package-global color.NoColor setting.
type ColorEmitter struct {
	Out io.Writer
}

// NewColorEmitter returns an emitter writing to out.
func NewColorEmitter(out io.Writer) *ColorEmitter {
	return &ColorEmitter{Out: out}
}

// Info writes an unstyled status line.
func (e *ColorEmitter) Info(message string) {
	e.line(labelInfo, message)
}

// Success writes a green status line.
func (e *ColorEmitter) Success(message string) {
	e.line(color.GreenString(labelSuccess), message)
}

// Warning writes a yellow status line.
func (e *ColorEmitter) Warning(message string) {
	e.line(color.YellowString(labelWarning), message)
}

// Error writes a red status line.
func (e *ColorEmitter) Error(message string) {
	e.line(color.RedString(labelError), message)
}

func (e *ColorEmitter) line(label string, message string) {
	// Write errors are intentionally discarded; failing to display an
	// advisory line must not abort the operation.
	_, _ = fmt.Fprintf(e.Out, "%s %s\n", label, message)
}

// Recorder captures emitted lines for assertions in tests.
type Recorder struct {
	Infos     []string
	Successes []string
	Warnings  []string
	Errors    []string
}

// Info records an info line.
func (r *Recorder) Info(message string) { r.Infos = append(r.Infos, message) }

// Success records a success line.
func (r *Recorder) Success(message string) { r.Successes = append(r.Successes, message) }

// Warning records a warning line.
func (r *Recorder) Warning(message string) { r.Warnings = append(r.Warnings, message) }

// Error records an error line.
func (r *Recorder) Error(message string) { r.Errors = append(r.Errors, message) }
