package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/framekit-dev/framekit/internal/messages"
)

// ManifestName is the installation-state file kept inside the target
// directory. It is machine-owned and rewritten whole on every operation.
const ManifestName = "install.toml"

// Manifest records what is installed in the target directory.
type Manifest struct {
	Mode        string    `toml:"mode"`
	Version     string    `toml:"version"`
	Source      string    `toml:"source"`
	InstalledAt time.Time `toml:"installed_at"`
}

func defaultManifestNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// ManifestPath returns the manifest location for a target directory.
func ManifestPath(targetDir string) string {
	return filepath.Join(targetDir, ManifestName)
}

// ReadManifest loads the manifest from the target directory. A missing
// manifest returns (nil, nil): no installation is recorded.
func ReadManifest(sys System, targetDir string) (*Manifest, error) {
	path := ManifestPath(targetDir)
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(messages.ManifestParseFailedFmt, path, err)
	}
	return &m, nil
}

// WriteManifest stores the manifest in the target directory.
func WriteManifest(sys System, targetDir string, m Manifest) error {
	path := ManifestPath(targetDir)
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf(messages.ManifestWriteFailedFmt, path, err)
	}
	if err := sys.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ManifestWriteFailedFmt, path, err)
	}
	return nil
}
