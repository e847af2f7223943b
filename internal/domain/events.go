package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPluginDiscovered EventType = "PluginDiscovered"
	EventStateUpdated     EventType = "StateUpdated"
	EventError            EventType = "Error"
	EventScanStarted      EventType = "ScanStarted"
	EventScanCompleted    EventType = "ScanCompleted"
	EventScanRequested    EventType = "ScanRequested"
	EventSearchChanged    EventType = "SearchChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PluginDiscoveredEvent is emitted when a plugin manifest is found on disk
type PluginDiscoveredEvent struct {
	Plugin Plugin
}

func (e PluginDiscoveredEvent) Type() EventType { return EventPluginDiscovered }

// StateUpdatedEvent is emitted when a plugin's install state changes
type StateUpdatedEvent struct {
	PluginID string
	State    InstallState
}

func (e StateUpdatedEvent) Type() EventType { return EventStateUpdated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when manifest scanning begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when manifest scanning completes
type ScanCompletedEvent struct {
	PluginsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Paths []string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// SearchChangedEvent is emitted when the user submits a new search query
type SearchChangedEvent struct {
	Raw string
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	PluginsDir     string
	MarketplaceURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	PluginsDir     string
	MarketplaceURL string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
