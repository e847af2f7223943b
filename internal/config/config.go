package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"plugdeck/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version     int         `toml:"version"`
	PluginsDir  string      `toml:"plugins_dir"`
	Marketplace Marketplace `toml:"marketplace"`
	UISettings  UISettings  `toml:"ui"`
}

// Marketplace holds the remote catalog settings
type Marketplace struct {
	BaseURL           string `toml:"base_url"`
	DefaultRepository string `toml:"default_repository"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDownloads  bool `toml:"show_downloads"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create plugdeck config directory
	plugdeckDir := filepath.Join(configDir, "plugdeck")
	os.MkdirAll(plugdeckDir, 0755)

	return &configService{
		filePath: filepath.Join(plugdeckDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()

		// Publish ConfigLoaded event if bus is available
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{
				PluginsDir:     cfg.PluginsDir,
				MarketplaceURL: cfg.Marketplace.BaseURL,
			})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			PluginsDir:     cfg.PluginsDir,
			MarketplaceURL: cfg.Marketplace.BaseURL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	// Try to get home directory for the default plugins dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Version:    1,
		PluginsDir: filepath.Join(homeDir, ".plugdeck", "plugins"),
		Marketplace: Marketplace{
			BaseURL:           "https://marketplace.plugdeck.dev/api/search?",
			DefaultRepository: "stable",
		},
		UISettings: UISettings{
			ShowDownloads:  true,
			AutosaveOnExit: true,
		},
	}
}
