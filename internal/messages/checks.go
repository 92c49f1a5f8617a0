package messages

// Requirement check messages, including the probe status lines and the
// aggregated failure report.
const (
	ChecksHeaderFmt = "Checking environment requirements (%d tools)..."
	ChecksSkipped   = "Environment requirement checks skipped (--skip-checks)."

	CheckSatisfiedFmt      = "%s %s found (>= %s required)"
	CheckMissingFmt        = "%s not found on PATH"
	CheckVersionTooLowFmt  = "%s %s is below the required minimum %s"
	CheckVersionUnknownFmt = "%s found, but its version could not be determined"
	CheckOptionalSuffix    = " (optional)"

	ChecksFailedHeader = "The following requirements are not satisfied:"
	ChecksFailedLine   = "  - %s"
	ChecksGuidanceFmt  = "    install: %s"
	ChecksFailedFooter = "Resolve the items above and re-run, or re-run with --skip-checks to bypass verification."
	ChecksFailedError  = "environment requirements not satisfied"

	// VersionNoMatchFmt reports input with no extractable major.minor pair.
	VersionNoMatchFmt    = "no major.minor version found in %q"
	VersionBadSegmentFmt = "invalid version segment %q: %v"
)

// Requirement config messages.
const (
	RequirementsFileName = "requirements.yml"
)
