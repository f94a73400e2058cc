package repository

import (
	"context"

	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/sqlerr"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ORMCatalog reads the catalog through gorm models.
type ORMCatalog struct {
	db *gorm.DB
}

func NewORMCatalog(db *gorm.DB) *ORMCatalog {
	return &ORMCatalog{db: db}
}

func orderByKey(table schema.Table) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: table.PrimaryKey().Name}}
}

// find returns every T matching filter, ordered by the primary key.
func find[T any](ctx context.Context, db *gorm.DB, table schema.Table, filter schema.Filter) ([]T, error) {
	var out []T
	tx := db.WithContext(ctx).Order(orderByKey(table))
	if len(filter) > 0 {
		tx = tx.Where(map[string]any(filter))
	}
	if err := tx.Find(&out).Error; err != nil {
		return nil, sqlerr.HandleError(errors.Wrapf(err, "find %s", table.Name))
	}
	return out, nil
}

// first returns the first T matching filter by primary key.
func first[T any](ctx context.Context, db *gorm.DB, table schema.Table, filter schema.Filter) (T, error) {
	var out T
	tx := db.WithContext(ctx)
	if len(filter) > 0 {
		tx = tx.Where(map[string]any(filter))
	}
	if err := tx.First(&out).Error; err != nil {
		return out, sqlerr.HandleError(sqlerr.WithTable(table.Name, "first match", err))
	}
	return out, nil
}

func (c *ORMCatalog) Artists(ctx context.Context) ([]model.Artist, error) {
	return find[model.Artist](ctx, c.db, schema.Artist, nil)
}

func (c *ORMCatalog) ArtistNames(ctx context.Context) ([]model.Name, error) {
	var names []string
	err := c.db.WithContext(ctx).
		Model(&model.Artist{}).
		Order(orderByKey(schema.Artist)).
		Pluck("Name", &names).Error
	if err != nil {
		return nil, sqlerr.HandleError(errors.Wrap(err, "pluck artist names"))
	}

	out := make([]model.Name, len(names))
	for i, n := range names {
		out[i] = model.Name(n)
	}
	return out, nil
}

func (c *ORMCatalog) ArtistByName(ctx context.Context, name string) (model.Artist, error) {
	return first[model.Artist](ctx, c.db, schema.Artist, schema.Filter{"Name": name})
}

func (c *ORMCatalog) ArtistByID(ctx context.Context, id int) (model.Artist, error) {
	return first[model.Artist](ctx, c.db, schema.Artist, schema.Filter{"ArtistId": id})
}

func (c *ORMCatalog) AlbumsByArtist(ctx context.Context, artistID int) ([]model.Album, error) {
	return find[model.Album](ctx, c.db, schema.Album, schema.Filter{"ArtistId": artistID})
}

func (c *ORMCatalog) TracksByComposer(ctx context.Context, composer string) ([]model.Track, error) {
	return find[model.Track](ctx, c.db, schema.Track, schema.Filter{"Composer": composer})
}

// Tracks runs an arbitrary equality filter over Track.
func (c *ORMCatalog) Tracks(ctx context.Context, filter schema.Filter) ([]model.Track, error) {
	return find[model.Track](ctx, c.db, schema.Track, filter)
}
