// Package testdb opens throwaway ORM sessions for tests.
//
// Sessions run on an in-memory SQLite database with the chinook models
// migrated, so repository, service and command tests need no Postgres.
package testdb

import (
	"testing"

	"github.com/deppfellow/chinook/internal/config"
	"github.com/deppfellow/chinook/internal/database"
	"github.com/deppfellow/chinook/internal/logger"
	"github.com/deppfellow/chinook/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New opens an empty session with every table created.
func New(t testing.TB) *database.ORM {
	t.Helper()

	log := zerolog.Nop()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.NewGormLogger(&log, config.DefaultLoggingConfig()),
	})
	require.NoError(t, err)

	orm, err := database.WrapORM(gdb, &log)
	require.NoError(t, err)

	// Every connection to ":memory:" is a new database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() { _ = orm.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&model.Programmer{},
		&model.Artist{},
		&model.Album{},
		&model.Track{},
	))
	return orm
}

// NewCatalog opens a session holding a small slice of the chinook catalog.
func NewCatalog(t testing.TB) *database.ORM {
	t.Helper()
	orm := New(t)
	artists, albums, tracks := Artists(), Albums(), Tracks()
	require.NoError(t, orm.DB.Create(&artists).Error)
	require.NoError(t, orm.DB.Create(&albums).Error)
	require.NoError(t, orm.DB.Create(&tracks).Error)
	return orm
}

func Artists() []model.Artist {
	return []model.Artist{
		{ArtistID: 1, Name: "AC/DC"},
		{ArtistID: 50, Name: "Metallica"},
		{ArtistID: 51, Name: "Queen"},
		{ArtistID: 52, Name: "Kiss"},
	}
}

func Albums() []model.Album {
	return []model.Album{
		{AlbumID: 1, Title: "For Those About To Rock We Salute You", ArtistID: 1},
		{AlbumID: 36, Title: "Greatest Hits II", ArtistID: 51},
		{AlbumID: 185, Title: "Greatest Hits I", ArtistID: 51},
		{AlbumID: 186, Title: "News Of The World", ArtistID: 51},
	}
}

func Tracks() []model.Track {
	price := decimal.RequireFromString("0.99")
	return []model.Track{
		{TrackID: 1, Name: "For Those About To Rock (We Salute You)", AlbumID: 1, MediaTypeID: 1, GenreID: 1,
			Composer: Ptr("Angus Young, Malcolm Young, Brian Johnson"), Milliseconds: 343719, Bytes: 11170334, UnitPrice: price},
		{TrackID: 426, Name: "A Kind Of Magic", AlbumID: 36, MediaTypeID: 1, GenreID: 1,
			Composer: Ptr("Roger Taylor"), Milliseconds: 262608, Bytes: 8689618, UnitPrice: price},
		{TrackID: 428, Name: "One Vision", AlbumID: 36, MediaTypeID: 1, GenreID: 1,
			Composer: Ptr("Queen"), Milliseconds: 242599, Bytes: 7936928, UnitPrice: price},
		{TrackID: 429, Name: "Who Wants To Live Forever", AlbumID: 36, MediaTypeID: 1, GenreID: 1,
			Composer: Ptr("Queen"), Milliseconds: 297691, Bytes: 9577577, UnitPrice: price},
		{TrackID: 2254, Name: "Bohemian Rhapsody", AlbumID: 185, MediaTypeID: 1, GenreID: 1,
			Composer: Ptr("Mercury, Freddie"), Milliseconds: 358948, Bytes: 6049325, UnitPrice: price},
		{TrackID: 2270, Name: "We Will Rock You", AlbumID: 186, MediaTypeID: 1, GenreID: 1,
			Composer: nil, Milliseconds: 122880, Bytes: 2007145, UnitPrice: price},
	}
}

func Ptr[T any](v T) *T { return &v }
