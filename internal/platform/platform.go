// Package platform identifies the host OS family. The tag is coarse on
// purpose: it only selects which install-instruction text to show.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Kind is a coarse host platform tag.
type Kind string

const (
	KindMacOS   Kind = "macos"
	KindDebian  Kind = "debian"
	KindFedora  Kind = "fedora"
	KindArch    Kind = "arch"
	KindWindows Kind = "windows"
	KindLinux   Kind = "linux"
	KindUnknown Kind = "unknown"
)

var readOSRelease = func() (string, error) {
	data, err := os.ReadFile("/etc/os-release")
	return string(data), err
}

// Detect returns the host platform tag.
func Detect() Kind {
	switch runtime.GOOS {
	case "darwin":
		return KindMacOS
	case "windows":
		return KindWindows
	case "linux":
		return detectLinux()
	default:
		return KindUnknown
	}
}

// detectLinux distinguishes major Linux families via /etc/os-release.
func detectLinux() Kind {
	data, err := readOSRelease()
	if err != nil {
		return KindLinux
	}
	ids := osReleaseIDs(data)
	switch {
	case ids["debian"] || ids["ubuntu"]:
		return KindDebian
	case ids["fedora"] || ids["rhel"] || ids["centos"]:
		return KindFedora
	case ids["arch"]:
		return KindArch
	default:
		return KindLinux
	}
}

// osReleaseIDs collects the ID and ID_LIKE values from os-release content.
func osReleaseIDs(data string) map[string]bool {
	ids := make(map[string]bool)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if key != "ID" && key != "ID_LIKE" {
			continue
		}
		value = strings.Trim(value, `"`)
		for _, id := range strings.Fields(value) {
			ids[strings.ToLower(id)] = true
		}
	}
	return ids
}
