package logic

import (
	"plugdeck/internal/domain"
	"sync"
)

// MemoryPluginStore is an in-memory implementation of PluginStore
type MemoryPluginStore struct {
	mu      sync.RWMutex
	plugins map[string]*domain.Plugin
}

// NewMemoryPluginStore creates a new memory-based plugin store
func NewMemoryPluginStore() *MemoryPluginStore {
	return &MemoryPluginStore{
		plugins: make(map[string]*domain.Plugin),
	}
}

func (s *MemoryPluginStore) GetPlugin(id string) *domain.Plugin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plugins[id]
}

func (s *MemoryPluginStore) GetAllPlugins() map[string]*domain.Plugin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]*domain.Plugin)
	for k, v := range s.plugins {
		result[k] = v
	}
	return result
}

func (s *MemoryPluginStore) AddPlugin(plugin *domain.Plugin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plugins[plugin.ID] = plugin
}

func (s *MemoryPluginStore) UpdatePlugin(plugin *domain.Plugin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plugins[plugin.ID] = plugin
}

func (s *MemoryPluginStore) RemovePlugin(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plugins, id)
}
