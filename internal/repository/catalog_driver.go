package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const (
	qArtistsAll       = `SELECT "ArtistId", "Name" FROM "Artist" ORDER BY "ArtistId"`
	qArtistNames      = `SELECT "Name" FROM "Artist" ORDER BY "ArtistId"`
	qArtistByName     = `SELECT "ArtistId", "Name" FROM "Artist" WHERE "Name" = $1 ORDER BY "ArtistId" LIMIT 1`
	qArtistByID       = `SELECT "ArtistId", "Name" FROM "Artist" WHERE "ArtistId" = $1`
	qAlbumsByArtist   = `SELECT "AlbumId", "Title", "ArtistId" FROM "Album" WHERE "ArtistId" = $1 ORDER BY "AlbumId"`
	qTracksByComposer = `SELECT "TrackId", "Name", "AlbumId", "MediaTypeId", "GenreId", "Composer", "Milliseconds", "Bytes", "UnitPrice" FROM "Track" WHERE "Composer" = $1 ORDER BY "TrackId"`
	qTracksAll        = `SELECT "TrackId", "Name", "AlbumId", "MediaTypeId", "GenreId", "Composer", "Milliseconds", "Bytes", "UnitPrice" FROM "Track"`
)

// DriverCatalog reads the catalog with hand-written SQL.
type DriverCatalog struct {
	db Querier
}

func NewDriverCatalog(db Querier) *DriverCatalog {
	return &DriverCatalog{db: db}
}

func (c *DriverCatalog) Artists(ctx context.Context) ([]model.Artist, error) {
	rows, err := c.db.Query(ctx, qArtistsAll)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "query artists"))
	}
	artists, err := collect(rows, scanArtist)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "scan artists"))
	}
	return artists, nil
}

func (c *DriverCatalog) ArtistNames(ctx context.Context) ([]model.Name, error) {
	rows, err := c.db.Query(ctx, qArtistNames)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "query artist names"))
	}
	names, err := collect(rows, scanName)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "scan artist names"))
	}
	return names, nil
}

func (c *DriverCatalog) ArtistByName(ctx context.Context, name string) (model.Artist, error) {
	a, err := scanArtist(c.db.QueryRow(ctx, qArtistByName, name))
	if err != nil {
		return model.Artist{}, sqlerr.HandleError(sqlerr.WithTable("Artist", "artist by name", err))
	}
	return a, nil
}

func (c *DriverCatalog) ArtistByID(ctx context.Context, id int) (model.Artist, error) {
	a, err := scanArtist(c.db.QueryRow(ctx, qArtistByID, id))
	if err != nil {
		return model.Artist{}, sqlerr.HandleError(sqlerr.WithTable("Artist", "artist by id", err))
	}
	return a, nil
}

func (c *DriverCatalog) AlbumsByArtist(ctx context.Context, artistID int) ([]model.Album, error) {
	rows, err := c.db.Query(ctx, qAlbumsByArtist, artistID)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrapf(err, "query albums of artist %d", artistID))
	}
	albums, err := collect(rows, scanAlbum)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrapf(err, "scan albums of artist %d", artistID))
	}
	return albums, nil
}

func (c *DriverCatalog) TracksByComposer(ctx context.Context, composer string) ([]model.Track, error) {
	rows, err := c.db.Query(ctx, qTracksByComposer, composer)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrapf(err, "query tracks by %q", composer))
	}
	tracks, err := collect(rows, scanTrack)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrapf(err, "scan tracks by %q", composer))
	}
	return tracks, nil
}

// Tracks runs an equality filter over Track. A nil value matches NULL.
func (c *DriverCatalog) Tracks(ctx context.Context, filter schema.Filter) ([]model.Track, error) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(qTracksAll)
	for i, col := range filter.Columns() {
		if _, ok := schema.Track.Column(col); !ok {
			return nil, errors.Errorf("track filter: no column %q", col)
		}
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(pgx.Identifier{col}.Sanitize())
		if filter[col] == nil {
			b.WriteString(" IS NULL")
			continue
		}
		args = append(args, filter[col])
		b.WriteString(" = $" + strconv.Itoa(len(args)))
	}
	b.WriteString(` ORDER BY "TrackId"`)

	rows, err := c.db.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "query tracks"))
	}
	tracks, err := collect(rows, scanTrack)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "scan tracks"))
	}
	return tracks, nil
}
