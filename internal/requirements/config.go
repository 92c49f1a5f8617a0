package requirements

import (
	"os"
	"regexp"
	"strings"

	"github.com/framekit-dev/framekit/internal/version"
)

// The min-version file is scanned tolerantly line by line rather than parsed
// as a full document: a bare `name:` line opens a section, a `min_version:`
// line inside a recognized section sets that tool's threshold. Keeping the
// scanner behind LoadMinVersions means a stricter parser can replace it
// without touching callers.
var (
	sectionLinePattern    = regexp.MustCompile(`^([A-Za-z0-9_-]+):\s*$`)
	minVersionLinePattern = regexp.MustCompile(`^min_version:\s*["']?([^"'\s]+)["']?\s*$`)
)

// recognizedSections is the fixed allow-list of tool names the file may
// configure. Unrecognized sections are ignored, never errors.
var recognizedSections = map[string]bool{
	ToolPython: true,
	ToolNode:   true,
	ToolNPM:    true,
	ToolGit:    true,
}

// LoadMinVersions reads per-tool minimum versions from path. Every
// recognized tool starts at its built-in default; the file only overrides.
// A missing, unreadable, or malformed file is never fatal.
func LoadMinVersions(path string) map[string]version.Version {
	mins := DefaultMinVersions()
	data, err := os.ReadFile(path)
	if err != nil {
		return mins
	}
	return parseMinVersions(string(data), mins)
}

func parseMinVersions(data string, mins map[string]version.Version) map[string]version.Version {
	section := ""
	for _, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if m := sectionLinePattern.FindStringSubmatch(trimmed); m != nil {
			section = strings.ToLower(m[1])
			continue
		}
		m := minVersionLinePattern.FindStringSubmatch(trimmed)
		if m == nil || !recognizedSections[section] {
			continue
		}
		v, err := version.Parse(m[1])
		if err != nil {
			// A threshold that does not parse keeps the built-in default.
			continue
		}
		mins[section] = v
	}
	return mins
}
