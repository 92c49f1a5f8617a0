package install

import (
	"fmt"

	"github.com/framekit-dev/framekit/internal/messages"
)

// Mode is the single terminal operation selected for this invocation.
type Mode int

const (
	ModeUnset Mode = iota
	ModeStandard
	ModeDevelopment
	ModeUpdate
	ModeUninstall
)

// String renders the mode as its flag spelling.
func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return messages.InstallModeStandard
	case ModeDevelopment:
		return messages.InstallModeDevelopment
	case ModeUpdate:
		return messages.InstallModeUpdate
	case ModeUninstall:
		return messages.InstallModeUninstall
	default:
		return messages.InstallModeUnset
	}
}

// Session captures one invocation's parsed command-line input.
type Session struct {
	Mode       Mode
	SkipChecks bool
	SourceDir  string
	TargetDir  string
	AssumeYes  bool
}

// SetMode records the selected mode. Selecting a second, different mode is a
// usage error, never a silent overwrite.
func (s *Session) SetMode(m Mode) error {
	if s.Mode != ModeUnset && s.Mode != m {
		return fmt.Errorf("%w: "+messages.SessionModeConflictFmt, ErrUsage, s.Mode, m)
	}
	s.Mode = m
	return nil
}
