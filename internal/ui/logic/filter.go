package logic

import (
	"strings"

	"plugdeck/internal/domain"
	"plugdeck/internal/query"
)

// SearchFilter applies parsed search queries to the displayed plugin lists
type SearchFilter struct {
	plugins map[string]*domain.Plugin
}

// NewSearchFilter creates a new search filter
func NewSearchFilter(plugins map[string]*domain.Plugin) *SearchFilter {
	return &SearchFilter{
		plugins: plugins,
	}
}

// MatchesInstalled checks if a plugin passes the installed-listing query:
// every non-nil tri-state flag must agree with the plugin's state, and the
// free text (if any) must match name, vendor or description.
func (sf *SearchFilter) MatchesInstalled(p *domain.Plugin, q *query.Installed) bool {
	if q == nil {
		return true
	}

	if q.Enabled != nil && *q.Enabled != p.State.Enabled {
		return false
	}
	if q.Bundled != nil && *q.Bundled != p.State.Bundled {
		return false
	}
	if q.Invalid != nil && *q.Invalid != p.State.Invalid {
		return false
	}
	if q.NeedUpdate != nil && *q.NeedUpdate != p.State.NeedUpdate {
		return false
	}
	if q.Deleted != nil && *q.Deleted != p.State.Deleted {
		return false
	}
	if q.NeedRestart != nil && *q.NeedRestart != p.State.NeedRestart {
		return false
	}

	if q.HasSearch {
		return sf.matchesText(p, q.SearchQuery)
	}
	return true
}

// MatchesTrending checks if a plugin passes the marketplace query applied
// client-side: all included tags present, no excluded tag present, the
// repository channel matching when set, and the free text matching.
func (sf *SearchFilter) MatchesTrending(p *domain.Plugin, q *query.Trending) bool {
	if q == nil {
		return true
	}

	for tag := range q.Tags {
		if !p.HasTag(tag) {
			return false
		}
	}
	for tag := range q.ExcludeTags {
		if p.HasTag(tag) {
			return false
		}
	}
	if q.Repository != "" && p.Repository != q.Repository {
		return false
	}

	if q.HasSearch {
		return sf.matchesText(p, q.SearchQuery)
	}
	return true
}

// matchesText does a case-insensitive substring match over the visible
// plugin fields
func (sf *SearchFilter) matchesText(p *domain.Plugin, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Vendor), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// FilterInstalled returns the IDs from the given order that pass the query
func (sf *SearchFilter) FilterInstalled(ordered []string, q *query.Installed) []string {
	var out []string
	for _, id := range ordered {
		if p, ok := sf.plugins[id]; ok && sf.MatchesInstalled(p, q) {
			out = append(out, id)
		}
	}
	return out
}

// FilterTrending returns the IDs from the given order that pass the query
func (sf *SearchFilter) FilterTrending(ordered []string, q *query.Trending) []string {
	var out []string
	for _, id := range ordered {
		if p, ok := sf.plugins[id]; ok && sf.MatchesTrending(p, q) {
			out = append(out, id)
		}
	}
	return out
}
