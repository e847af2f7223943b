package query

import (
	"net/url"
	"sort"
	"strings"
)

// Trending is the parsed form of a marketplace search: inclusion and
// exclusion tag sets, a sort order, a repository channel and the free-text
// remainder.
type Trending struct {
	SearchQuery string
	HasSearch   bool

	Tags        map[string]bool
	ExcludeTags map[string]bool
	SortBy      string
	Repository  string
}

// ParseTrending parses a raw marketplace search-box query.
func ParseTrending(raw string) *Trending {
	t := &Trending{
		Tags:        make(map[string]bool),
		ExcludeTags: make(map[string]bool),
	}
	t.SearchQuery, t.HasSearch = Parse(raw, t)
	return t
}

// HandleAttribute implements Sink. Tags use toggle semantics: repeating a
// tag with the opposite polarity cancels the earlier occurrence, so a tag
// is never both included and excluded. sort_by and repository are
// last-write-wins and ignore inversion. Unknown names are ignored.
func (t *Trending) HandleAttribute(name, value string, invert bool) {
	switch name {
	case "tag":
		if invert {
			if t.Tags[value] {
				delete(t.Tags, value)
			} else {
				t.ExcludeTags[value] = true
			}
		} else if t.ExcludeTags[value] {
			delete(t.ExcludeTags, value)
		} else {
			t.Tags[value] = true
		}
	case "sort_by":
		t.SortBy = value
	case "repository":
		t.Repository = value
	}
}

// URLQuery serializes the query for the marketplace HTTP API: the sort
// clause, one tags= pair per included tag (sorted, so output is stable)
// and the search= pair, joined with '&'. Exclusion tags are applied
// client-side and never serialized.
func (t *Trending) URLQuery() string {
	var b strings.Builder

	switch t.SortBy {
	case "featured":
		b.WriteString("is_featured_search=true")
	case "updates":
		b.WriteString("orderBy=update+date")
	case "downloads":
		b.WriteString("orderBy=downloads")
	case "rating":
		b.WriteString("orderBy=rating")
	case "name":
		b.WriteString("orderBy=name")
	}

	tags := make([]string, 0, len(t.Tags))
	for tag := range t.Tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		if b.Len() > 0 {
			b.WriteString("&")
		}
		b.WriteString("tags=")
		b.WriteString(url.QueryEscape(tag))
	}

	if t.HasSearch {
		if b.Len() > 0 {
			b.WriteString("&")
		}
		b.WriteString("search=")
		b.WriteString(url.QueryEscape(t.SearchQuery))
	}

	return b.String()
}
