package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plugdeck/internal/domain"
)

func sorterFixture() map[string]*domain.Plugin {
	return map[string]*domain.Plugin{
		"a": {ID: "a", Name: "Zeta", Vendor: "acme", Downloads: 10, Rating: 4.5},
		"b": {ID: "b", Name: "alpha", Vendor: "acme", Downloads: 300, Rating: 3.0},
		"c": {ID: "c", Name: "Mid", Vendor: "beta-co", Downloads: 300, Rating: 4.5},
	}
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	s := NewPluginSorter(sorterFixture())
	ids := []string{"a", "b", "c"}
	s.SortPlugins(ids, SortByName)
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestSortByDownloadsDescending(t *testing.T) {
	s := NewPluginSorter(sorterFixture())
	ids := []string{"a", "b", "c"}
	s.SortPlugins(ids, SortByDownloads)
	// Ties break on name.
	assert.Equal(t, []string{"b", "c", "a"}, ids)
}

func TestSortByRatingDescending(t *testing.T) {
	s := NewPluginSorter(sorterFixture())
	ids := []string{"a", "b", "c"}
	s.SortPlugins(ids, SortByRating)
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestSortModeFor(t *testing.T) {
	assert.Equal(t, SortByDownloads, SortModeFor("downloads"))
	assert.Equal(t, SortByRating, SortModeFor("rating"))
	assert.Equal(t, SortByName, SortModeFor("name"))
	assert.Equal(t, SortByName, SortModeFor("velocity"))
}
