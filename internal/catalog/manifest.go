package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"plugdeck/internal/domain"
)

// ManifestName is the file a plugin directory must contain to be picked up
const ManifestName = "plugin.toml"

// Manifest is the on-disk description of an installed plugin
type Manifest struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Vendor      string   `toml:"vendor"`
	Description string   `toml:"description"`
	Version     string   `toml:"version"`
	Tags        []string `toml:"tags"`
	Repository  string   `toml:"repository"`

	State ManifestState `toml:"state"`
}

// ManifestState mirrors domain.InstallState in TOML form
type ManifestState struct {
	Enabled     bool `toml:"enabled"`
	Bundled     bool `toml:"bundled"`
	NeedUpdate  bool `toml:"need_update"`
	Deleted     bool `toml:"deleted"`
	NeedRestart bool `toml:"need_restart"`
}

// LoadManifest reads and decodes a plugin.toml file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if m.ID == "" {
		// Fall back to the directory name
		m.ID = filepath.Base(filepath.Dir(path))
	}
	if m.Name == "" {
		m.Name = m.ID
	}

	return &m, nil
}

// Plugin converts a manifest into the domain model
func (m *Manifest) Plugin() domain.Plugin {
	return domain.Plugin{
		ID:          m.ID,
		Name:        m.Name,
		Vendor:      m.Vendor,
		Description: m.Description,
		Tags:        m.Tags,
		Repository:  m.Repository,
		State: domain.InstallState{
			Version:     m.Version,
			Enabled:     m.State.Enabled,
			Bundled:     m.State.Bundled,
			NeedUpdate:  m.State.NeedUpdate,
			Deleted:     m.State.Deleted,
			NeedRestart: m.State.NeedRestart,
		},
	}
}
