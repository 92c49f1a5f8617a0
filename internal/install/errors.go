package install

import (
	"errors"
	"fmt"
	"strings"

	"github.com/framekit-dev/framekit/internal/messages"
)

// ErrUsage wraps malformed command-line invocations: conflicting or missing
// mode flags. Callers print usage text when they see it.
var ErrUsage = errors.New("usage error")

// ErrRequirements marks an aggregated mandatory-requirement failure. The
// per-item report has already been emitted by the time it is returned.
var ErrRequirements = errors.New(messages.ChecksFailedError)

// EnvironmentError reports framework modules missing from the source tree.
// It is fatal and surfaced before any probe or file operation.
type EnvironmentError struct {
	Missing []string
}

func (e *EnvironmentError) Error() string {
	var b strings.Builder
	b.WriteString(messages.EnvMissingHeader)
	for _, path := range e.Missing {
		fmt.Fprintf(&b, messages.EnvMissingLineFmt, path)
	}
	return b.String()
}
