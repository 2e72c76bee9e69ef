package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cities = []Option{
	{Value: "nyc", Label: "New York"},
	{Value: "nwk", Label: "Newark"},
	{Value: "yrk", Label: "York"},
	{Value: "ber", Label: "Berlin"},
}

func TestFilterOptionsCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := FilterOptions(cities, "YORK", 0)
	assert.Equal(t, []Option{cities[0], cities[2]}, got)
}

func TestFilterOptionsEmptyQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cities, FilterOptions(cities, "  ", 0))
}

func TestFilterOptionsLimit(t *testing.T) {
	t.Parallel()

	got := FilterOptions(cities, "new", 1)
	assert.Equal(t, []Option{cities[0]}, got)
}

func TestFilterOptionsNoMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FilterOptions(cities, "paris", 0))
}

func TestFindOption(t *testing.T) {
	t.Parallel()

	opt, ok := FindOption(cities, "ber")
	assert.True(t, ok)
	assert.Equal(t, "Berlin", opt.Label)

	_, ok = FindOption(cities, "xyz")
	assert.False(t, ok)
}
