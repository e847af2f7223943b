package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingTags(t *testing.T) {
	q := ParseTrending("tag:ui -tag:legacy")
	assert.True(t, q.Tags["ui"])
	assert.True(t, q.ExcludeTags["legacy"])
	assert.False(t, q.HasSearch)
}

func TestTrendingTagToggleCancels(t *testing.T) {
	// Including a tag and then excluding it cancels the inclusion instead
	// of contradicting it.
	q := ParseTrending("tag:a -tag:a")
	assert.Empty(t, q.Tags)
	assert.Empty(t, q.ExcludeTags)

	// Same in the other direction.
	q = ParseTrending("-tag:a tag:a")
	assert.Empty(t, q.Tags)
	assert.Empty(t, q.ExcludeTags)
}

func TestTrendingTagSetsStayDisjoint(t *testing.T) {
	// Any alternating sequence leaves a tag in at most one set.
	q := ParseTrending("tag:a -tag:a -tag:a tag:a tag:a")
	for tag := range q.Tags {
		assert.False(t, q.ExcludeTags[tag], "tag %q in both sets", tag)
	}
	// The odd trailing inclusion wins.
	assert.True(t, q.Tags["a"])
	assert.False(t, q.ExcludeTags["a"])
}

func TestTrendingSortByLastWins(t *testing.T) {
	q := ParseTrending("sort_by:rating sort_by:name")
	assert.Equal(t, "name", q.SortBy)
}

func TestTrendingRepository(t *testing.T) {
	q := ParseTrending("repository:stable vim")
	assert.Equal(t, "stable", q.Repository)
	require.True(t, q.HasSearch)
	assert.Equal(t, "vim", q.SearchQuery)
}

func TestTrendingUnknownAttributeIgnored(t *testing.T) {
	q := ParseTrending("status:enabled vim")
	assert.Empty(t, q.Tags)
	assert.Empty(t, q.ExcludeTags)
	assert.Empty(t, q.SortBy)
	assert.Equal(t, "vim", q.SearchQuery)
}

func TestTrendingInvertIgnoredForSortAndRepository(t *testing.T) {
	q := ParseTrending("-sort_by:rating -repository:nightly")
	assert.Equal(t, "rating", q.SortBy)
	assert.Equal(t, "nightly", q.Repository)
}

func TestTrendingURLQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty", "", ""},
		{"search only", "vim", "search=vim"},
		{"featured sort", "sort_by:featured x", "is_featured_search=true&search=x"},
		{"updates sort", "sort_by:updates x", "orderBy=update+date&search=x"},
		{"downloads sort", "sort_by:downloads x", "orderBy=downloads&search=x"},
		{"rating sort", "sort_by:rating x", "orderBy=rating&search=x"},
		{"name sort", "sort_by:name x", "orderBy=name&search=x"},
		{"unknown sort omitted", "sort_by:velocity x", "search=x"},
		{"tags sorted", "tag:b tag:a", "tags=a&tags=b"},
		{"exclusion never serialized", "-tag:legacy tag:ui", "tags=ui"},
		{"everything", `sort_by:featured tag:b tag:a "code style"`, "is_featured_search=true&tags=a&tags=b&search=code+style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTrending(tt.query).URLQuery())
		})
	}
}

func TestTrendingURLQueryEscapesValues(t *testing.T) {
	q := ParseTrending(`tag:"c++" "100% free"`)
	assert.Equal(t, "tags=c%2B%2B&search=100%25+free", q.URLQuery())
}

func TestTrendingURLQueryDeterministic(t *testing.T) {
	q := ParseTrending("tag:zeta tag:alpha tag:mid")
	want := q.URLQuery()
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, ParseTrending("tag:zeta tag:alpha tag:mid").URLQuery())
	}
}

func TestTrendingFallbackKeepsAppliedTags(t *testing.T) {
	// The ambiguity fallback resets only the free text; the tag set built
	// before the fallback stays applied.
	raw := "tag:a foo bar"
	q := ParseTrending(raw)
	assert.True(t, q.Tags["a"])
	require.True(t, q.HasSearch)
	assert.Equal(t, raw, q.SearchQuery)
}
