package requirements

import (
	"fmt"

	"github.com/framekit-dev/framekit/internal/emit"
	"github.com/framekit-dev/framekit/internal/messages"
	"github.com/framekit-dev/framekit/internal/platform"
)

// Report emits the combined failure list with per-item remediation guidance.
// It is called once, after every requirement has been probed.
func Report(failures []Result, kind platform.Kind, emitter emit.Emitter) {
	if len(failures) == 0 || emitter == nil {
		return
	}
	emitter.Error(messages.ChecksFailedHeader)
	for _, result := range failures {
		emitter.Error(fmt.Sprintf(messages.ChecksFailedLine, FailureLine(result)))
		if hint := Guidance(result.Requirement.Name, kind); hint != "" {
			emitter.Info(fmt.Sprintf(messages.ChecksGuidanceFmt, hint))
		}
	}
	emitter.Info(messages.ChecksFailedFooter)
}
