package logic

import (
	"sort"
	"strings"

	"plugdeck/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByName SortMode = iota
	SortByDownloads
	SortByRating
	SortByVendor
)

// String returns the display name of the sort mode
func (m SortMode) String() string {
	switch m {
	case SortByDownloads:
		return "downloads"
	case SortByRating:
		return "rating"
	case SortByVendor:
		return "vendor"
	default:
		return "name"
	}
}

// SortModeFor maps the search-box sort_by vocabulary onto a SortMode.
// Unknown values fall back to name order.
func SortModeFor(sortBy string) SortMode {
	switch sortBy {
	case "downloads":
		return SortByDownloads
	case "rating":
		return SortByRating
	default:
		return SortByName
	}
}

// PluginSorter handles plugin sorting logic
type PluginSorter struct {
	plugins map[string]*domain.Plugin
}

// NewPluginSorter creates a new plugin sorter
func NewPluginSorter(plugins map[string]*domain.Plugin) *PluginSorter {
	return &PluginSorter{
		plugins: plugins,
	}
}

// SortPlugins sorts a slice of plugin IDs according to the given sort mode
func (s *PluginSorter) SortPlugins(ids []string, mode SortMode) {
	switch mode {
	case SortByName:
		s.sortByName(ids)
	case SortByDownloads:
		s.sortByDownloads(ids)
	case SortByRating:
		s.sortByRating(ids)
	case SortByVendor:
		s.sortByVendor(ids)
	default:
		sort.Strings(ids)
	}
}

// sortByName sorts plugins alphabetically by name
func (s *PluginSorter) sortByName(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		pI, okI := s.plugins[ids[i]]
		pJ, okJ := s.plugins[ids[j]]
		if !okI || !okJ {
			return !okI
		}
		return strings.ToLower(pI.Name) < strings.ToLower(pJ.Name)
	})
}

// sortByDownloads sorts plugins by download count, most downloaded first
func (s *PluginSorter) sortByDownloads(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		pI, okI := s.plugins[ids[i]]
		pJ, okJ := s.plugins[ids[j]]
		if !okI || !okJ {
			return !okI
		}
		if pI.Downloads != pJ.Downloads {
			return pI.Downloads > pJ.Downloads
		}
		return strings.ToLower(pI.Name) < strings.ToLower(pJ.Name)
	})
}

// sortByRating sorts plugins by rating, highest first
func (s *PluginSorter) sortByRating(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		pI, okI := s.plugins[ids[i]]
		pJ, okJ := s.plugins[ids[j]]
		if !okI || !okJ {
			return !okI
		}
		if pI.Rating != pJ.Rating {
			return pI.Rating > pJ.Rating
		}
		return strings.ToLower(pI.Name) < strings.ToLower(pJ.Name)
	})
}

// sortByVendor sorts plugins by vendor then name
func (s *PluginSorter) sortByVendor(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		pI, okI := s.plugins[ids[i]]
		pJ, okJ := s.plugins[ids[j]]
		if !okI || !okJ {
			return !okI
		}
		vI := strings.ToLower(pI.Vendor)
		vJ := strings.ToLower(pJ.Vendor)
		if vI != vJ {
			return vI < vJ
		}
		return strings.ToLower(pI.Name) < strings.ToLower(pJ.Name)
	})
}
