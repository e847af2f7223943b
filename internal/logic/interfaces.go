package logic

import "plugdeck/internal/domain"

// PluginStore provides access to plugin data
type PluginStore interface {
	GetPlugin(id string) *domain.Plugin
	GetAllPlugins() map[string]*domain.Plugin
	AddPlugin(plugin *domain.Plugin)
	UpdatePlugin(plugin *domain.Plugin)
	RemovePlugin(id string)
}
