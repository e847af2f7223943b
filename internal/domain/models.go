package domain

// Plugin represents a single catalog entry, either a marketplace
// listing or a plugin discovered on disk.
type Plugin struct {
	ID          string
	Name        string
	Vendor      string
	Description string
	Tags        []string
	Downloads   int
	Rating      float64
	Repository  string // marketplace channel the plugin came from ("" for local-only)
	State       InstallState
}

// InstallState represents the current install status of a plugin
type InstallState struct {
	Version     string
	Enabled     bool
	Bundled     bool   // shipped with the host, not user-installed
	Invalid     bool   // manifest broken or plugin failed to load
	NeedUpdate  bool   // a newer version exists in the marketplace
	Deleted     bool   // uninstalled, removal pending restart
	NeedRestart bool   // inactive until the host restarts
	Error       string // error message if the manifest could not be read
}

// HasTag reports whether the plugin carries the given catalog tag.
func (p *Plugin) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScanProgress represents the current manifest scanning state
type ScanProgress struct {
	IsScanning   bool
	PluginsFound int
	CurrentPath  string
}
