package catalog

import (
	"math"
	"testing"

	"projects/showcase/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.CatalogKind
		items []domain.Item
	}{
		{"duplicate id", domain.CatalogKindGames, []domain.Item{{ID: 1, Tag: health}, {ID: 1, Tag: climate}}},
		{"rating above range", domain.CatalogKindWebsites, []domain.Item{{ID: 1, Tag: health, Rating: 5.1}}},
		{"negative rating", domain.CatalogKindWebsites, []domain.Item{{ID: 1, Tag: health, Rating: -1}}},
		{"NaN rating", domain.CatalogKindWebsites, []domain.Item{{ID: 1, Tag: health, Rating: math.NaN()}}},
		{"unknown tag", domain.CatalogKindVideos, []domain.Item{{ID: 1, Tag: "SDG 99: Nope"}}},
		{"negative views", domain.CatalogKindVideos, []domain.Item{{ID: 1, Tag: health, ViewCount: -5}}},
		{"likes outside games", domain.CatalogKindDigitalArt, []domain.Item{{ID: 1, Tag: health, LikeCount: 3}}},
		{"unknown kind", "comics", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.kind, tt.items)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	items := sampleGames()
	c, err := New(domain.CatalogKindGames, items)
	require.NoError(t, err)

	items[0].Title = "changed"
	got, ok := c.Item(1)
	require.True(t, ok)
	assert.Equal(t, "Snake Multiplayer", got.Title)
}

func TestCatalog_Tags(t *testing.T) {
	items := append(sampleGames(), domain.Item{ID: 4, Tag: health})
	c, err := New(domain.CatalogKindGames, items)
	require.NoError(t, err)

	assert.Equal(t, []domain.Tag{health, climate, school}, c.Tags())
}

func TestCatalog_IncrementLike(t *testing.T) {
	c, err := New(domain.CatalogKindGames, sampleGames())
	require.NoError(t, err)

	before := c.Items()
	version := c.Version()

	updated, err := c.IncrementLike(2)
	require.NoError(t, err)
	assert.Equal(t, int64(79), updated.LikeCount)
	assert.NotEqual(t, version, c.Version())

	after := c.Items()
	for i := range before {
		want := before[i]
		if want.ID == 2 {
			want.LikeCount++
		}
		assert.Equal(t, want, after[i])
	}

	_, err = c.IncrementLike(2)
	require.NoError(t, err)
	got, _ := c.Item(2)
	assert.Equal(t, int64(80), got.LikeCount, "each call adds exactly one")
}

func TestCatalog_IncrementLikeErrors(t *testing.T) {
	games, err := New(domain.CatalogKindGames, sampleGames())
	require.NoError(t, err)

	_, err = games.IncrementLike(99)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	sites, err := New(domain.CatalogKindWebsites, []domain.Item{{ID: 1, Tag: health}})
	require.NoError(t, err)

	_, err = sites.IncrementLike(1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCatalog_View(t *testing.T) {
	games, err := New(domain.CatalogKindGames, sampleGames())
	require.NoError(t, err)

	got, err := games.View(domain.NoTag, domain.SortMostLiked)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, ids(got))

	_, err = games.View("SDG 42: Unknown", domain.SortTopRated)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	sites, err := New(domain.CatalogKindWebsites, []domain.Item{{ID: 1, Tag: health}})
	require.NoError(t, err)

	_, err = sites.View(domain.NoTag, domain.SortMostLiked)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
