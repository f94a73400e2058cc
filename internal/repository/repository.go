// Package repository handles all interactions with the database.
//
// The chinook catalog (Artist, Album, Track) can be read three ways,
// all behind the Catalog interface:
//   - DriverCatalog: hand-written SQL through the pgx driver
//   - ExpressionCatalog: SQL generated from package schema, through pgx
//   - ORMCatalog: gorm models
//
// Programmer records are created, updated and deleted through gorm
// (ProgrammerRepository); every mutation runs in its own transaction.
package repository

import (
	"context"

	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Catalog is the read side of the chinook catalog.
//
// Single-record lookups return the first match by primary key and an
// errs.KindNotFound error when nothing matches. Multi-record lookups are
// ordered by primary key and may be empty. Tracks takes an equality
// filter keyed by column name; a nil value matches NULL.
type Catalog interface {
	Artists(ctx context.Context) ([]model.Artist, error)
	ArtistNames(ctx context.Context) ([]model.Name, error)
	ArtistByName(ctx context.Context, name string) (model.Artist, error)
	ArtistByID(ctx context.Context, id int) (model.Artist, error)
	AlbumsByArtist(ctx context.Context, artistID int) ([]model.Album, error)
	TracksByComposer(ctx context.Context, composer string) ([]model.Track, error)
	Tracks(ctx context.Context, filter schema.Filter) ([]model.Track, error)
}
