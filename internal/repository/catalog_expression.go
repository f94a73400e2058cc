package repository

import (
	"context"

	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// ExpressionCatalog reads the catalog with SQL built from schema.Table
// definitions instead of string literals.
type ExpressionCatalog struct {
	db Querier
}

func NewExpressionCatalog(db Querier) *ExpressionCatalog {
	return &ExpressionCatalog{db: db}
}

// selectAll runs q and maps every row through scan.
func selectAll[T any](ctx context.Context, db Querier, q *schema.Query, scan func(pgx.Row) (T, error)) ([]T, error) {
	sql, args, err := q.SQL()
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "run query"))
	}
	out, err := collect(rows, scan)
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "scan rows"))
	}
	return out, nil
}

// selectFirst runs q limited to one row.
func selectFirst[T any](ctx context.Context, db Querier, table string, q *schema.Query, scan func(pgx.Row) (T, error)) (T, error) {
	var zero T
	sql, args, err := q.Limit(1).SQL()
	if err != nil {
		return zero, errors.Wrap(err, "build query")
	}
	out, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		return zero, sqlerr.HandleError(sqlerr.WithTable(table, "first match", err))
	}
	return out, nil
}

func (c *ExpressionCatalog) Artists(ctx context.Context) ([]model.Artist, error) {
	return selectAll(ctx, c.db, schema.Artist.Select(), scanArtist)
}

func (c *ExpressionCatalog) ArtistNames(ctx context.Context) ([]model.Name, error) {
	return selectAll(ctx, c.db, schema.Artist.Select().Only("Name"), scanName)
}

func (c *ExpressionCatalog) ArtistByName(ctx context.Context, name string) (model.Artist, error) {
	return selectFirst(ctx, c.db, schema.Artist.Name, schema.Artist.Select().Where("Name", name), scanArtist)
}

func (c *ExpressionCatalog) ArtistByID(ctx context.Context, id int) (model.Artist, error) {
	return selectFirst(ctx, c.db, schema.Artist.Name, schema.Artist.Select().Where("ArtistId", id), scanArtist)
}

func (c *ExpressionCatalog) AlbumsByArtist(ctx context.Context, artistID int) ([]model.Album, error) {
	return selectAll(ctx, c.db, schema.Album.Select().Where("ArtistId", artistID), scanAlbum)
}

func (c *ExpressionCatalog) TracksByComposer(ctx context.Context, composer string) ([]model.Track, error) {
	return selectAll(ctx, c.db, schema.Track.Select().Where("Composer", composer), scanTrack)
}

// Tracks runs an arbitrary equality filter over Track.
func (c *ExpressionCatalog) Tracks(ctx context.Context, filter schema.Filter) ([]model.Track, error) {
	return selectAll(ctx, c.db, schema.Track.Select().Filter(filter), scanTrack)
}
