package requirements

import "github.com/framekit-dev/framekit/internal/platform"

// installHints maps tool name to per-platform install commands shown in the
// failure report.
var installHints = map[string]map[platform.Kind]string{
	ToolPython: {
		platform.KindMacOS:   "brew install python@3.12",
		platform.KindDebian:  "sudo apt install python3",
		platform.KindFedora:  "sudo dnf install python3",
		platform.KindArch:    "sudo pacman -S python",
		platform.KindWindows: "winget install Python.Python.3.12",
	},
	ToolGit: {
		platform.KindMacOS:   "brew install git",
		platform.KindDebian:  "sudo apt install git",
		platform.KindFedora:  "sudo dnf install git",
		platform.KindArch:    "sudo pacman -S git",
		platform.KindWindows: "winget install Git.Git",
	},
	ToolNode: {
		platform.KindMacOS:   "brew install node",
		platform.KindDebian:  "sudo apt install nodejs",
		platform.KindFedora:  "sudo dnf install nodejs",
		platform.KindArch:    "sudo pacman -S nodejs",
		platform.KindWindows: "winget install OpenJS.NodeJS.LTS",
	},
	ToolNPM: {
		platform.KindMacOS:   "brew install node",
		platform.KindDebian:  "sudo apt install npm",
		platform.KindFedora:  "sudo dnf install npm",
		platform.KindArch:    "sudo pacman -S npm",
		platform.KindWindows: "winget install OpenJS.NodeJS.LTS",
	},
}

// genericHints is the fallback when no platform-specific command is known.
var genericHints = map[string]string{
	ToolPython: "install Python 3 from https://www.python.org/downloads/",
	ToolGit:    "install Git from https://git-scm.com/downloads",
	ToolNode:   "install Node.js from https://nodejs.org/",
	ToolNPM:    "npm ships with Node.js: https://nodejs.org/",
}

// Guidance returns the install remediation text for a tool on the given
// platform, or an empty string for tools it knows nothing about.
func Guidance(name string, kind platform.Kind) string {
	if hints, ok := installHints[name]; ok {
		if hint, ok := hints[kind]; ok {
			return hint
		}
	}
	return genericHints[name]
}
