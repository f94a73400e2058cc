package repository

import (
	"context"
	"testing"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/printer"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestORMCatalog(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		act  func(t *testing.T, c *ORMCatalog)
	}{
		{
			name: "artists ordered by id",
			act: func(t *testing.T, c *ORMCatalog) {
				artists, err := c.Artists(ctx)
				require.NoError(t, err)
				assert.Equal(t, testdb.Artists(), artists)
			},
		},
		{
			name: "artist names in id order",
			act: func(t *testing.T, c *ORMCatalog) {
				names, err := c.ArtistNames(ctx)
				require.NoError(t, err)
				assert.Equal(t, []model.Name{"AC/DC", "Metallica", "Queen", "Kiss"}, names)
			},
		},
		{
			name: "artist by name and by id agree",
			act: func(t *testing.T, c *ORMCatalog) {
				byName, err := c.ArtistByName(ctx, "Queen")
				require.NoError(t, err)
				byID, err := c.ArtistByID(ctx, 51)
				require.NoError(t, err)
				assert.Equal(t, byName, byID)
				assert.Equal(t, model.Artist{ArtistID: 51, Name: "Queen"}, byID)
			},
		},
		{
			name: "unknown artist",
			act: func(t *testing.T, c *ORMCatalog) {
				_, err := c.ArtistByName(ctx, "Nobody")
				require.True(t, errs.IsNotFound(err), "got %v", err)
				assert.EqualError(t, err, "Artist not found")

				_, err = c.ArtistByID(ctx, 9999)
				assert.True(t, errs.IsNotFound(err))
			},
		},
		{
			name: "albums of an artist",
			act: func(t *testing.T, c *ORMCatalog) {
				albums, err := c.AlbumsByArtist(ctx, 51)
				require.NoError(t, err)
				require.Len(t, albums, 3)
				assert.Equal(t, []int{36, 185, 186}, []int{albums[0].AlbumID, albums[1].AlbumID, albums[2].AlbumID})
				for _, a := range albums {
					assert.Equal(t, 51, a.ArtistID)
				}

				none, err := c.AlbumsByArtist(ctx, 9999)
				require.NoError(t, err)
				assert.Empty(t, none)
			},
		},
		{
			name: "tracks by composer are exactly the matching subset",
			act: func(t *testing.T, c *ORMCatalog) {
				tracks, err := c.TracksByComposer(ctx, "Queen")
				require.NoError(t, err)

				var want []int
				for _, tr := range testdb.Tracks() {
					if tr.Composer != nil && *tr.Composer == "Queen" {
						want = append(want, tr.TrackID)
					}
				}
				var got []int
				for _, tr := range tracks {
					got = append(got, tr.TrackID)
					assert.Equal(t, "0.99", tr.UnitPrice.String())
				}
				assert.Equal(t, want, got)
			},
		},
		{
			name: "track filter with missing composer",
			act: func(t *testing.T, c *ORMCatalog) {
				tracks, err := c.Tracks(ctx, schema.Filter{"AlbumId": 186})
				require.NoError(t, err)
				require.Len(t, tracks, 1)
				assert.Nil(t, tracks[0].Composer)
				assert.Equal(t, "2270 | We Will Rock You | 186 | 1 | 1 |  | 122880 | 2007145 | 0.99",
					printer.Line(tracks[0]))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orm := testdb.NewCatalog(t)
			tt.act(t, NewORMCatalog(orm.DB))
		})
	}
}

func TestRepositories(t *testing.T) {
	orm := testdb.NewCatalog(t)
	repos := NewRepositories(orm.DB)

	var c Catalog = repos.Catalog
	artist, err := c.ArtistByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "AC/DC", artist.Name)

	people, err := repos.Programmers.Find(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, people)
}
