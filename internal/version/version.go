// Package version parses dotted version strings out of free-form tool output
// and compares them against minimum thresholds.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/framekit-dev/framekit/internal/messages"
)

// extractPattern matches the first major.minor pair with an optional patch
// component anywhere in the input (v prefixes, surrounding words, and build
// metadata are ignored).
var extractPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Version is a parsed version. Ordering is defined on (Major, Minor) only;
// Patch is informational and never compared.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	HasPatch bool
}

// Parse extracts the first major.minor(.patch)? pattern from raw.
// It fails explicitly when no pattern is present rather than defaulting to zero.
func Parse(raw string) (Version, error) {
	m := extractPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, fmt.Errorf(messages.VersionNoMatchFmt, strings.TrimSpace(raw))
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf(messages.VersionBadSegmentFmt, m[1], err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf(messages.VersionBadSegmentFmt, m[2], err)
	}
	v := Version{Major: major, Minor: minor}
	if m[3] != "" {
		patch, err := strconv.Atoi(m[3])
		if err != nil {
			return Version{}, fmt.Errorf(messages.VersionBadSegmentFmt, m[3], err)
		}
		v.Patch = patch
		v.HasPatch = true
	}
	return v, nil
}

// MustParse parses raw and panics on failure. It is intended for built-in
// defaults that are fixed at compile time.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// AtLeast reports whether v satisfies min on (major, minor) ordering.
// Patch digits are never compared.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// String renders the version as it was parsed, with the patch component only
// when one was present.
func (v Version) String() string {
	if v.HasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare reports whether actual satisfies minimum. Either side failing to
// yield a major.minor pair counts as not satisfied, never as an error.
func Compare(actual string, minimum string) bool {
	a, err := Parse(actual)
	if err != nil {
		return false
	}
	m, err := Parse(minimum)
	if err != nil {
		return false
	}
	return a.AtLeast(m)
}

// IsDev reports whether raw identifies an unversioned development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}

// Normalize validates raw as a version and returns it in canonical dotted
// form without a v prefix.
func Normalize(raw string) (string, error) {
	v, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
