package repository

import (
	"github.com/deppfellow/chinook/internal/model"
	"github.com/jackc/pgx/v5"
)

// Row -> record mapping functions. Scan order follows the column order of
// the matching schema.Table.

func scanArtist(row pgx.Row) (model.Artist, error) {
	var a model.Artist
	err := row.Scan(&a.ArtistID, &a.Name)
	return a, err
}

func scanName(row pgx.Row) (model.Name, error) {
	var n string
	err := row.Scan(&n)
	return model.Name(n), err
}

func scanAlbum(row pgx.Row) (model.Album, error) {
	var a model.Album
	err := row.Scan(&a.AlbumID, &a.Title, &a.ArtistID)
	return a, err
}

func scanTrack(row pgx.Row) (model.Track, error) {
	var t model.Track
	err := row.Scan(
		&t.TrackID,
		&t.Name,
		&t.AlbumID,
		&t.MediaTypeID,
		&t.GenreID,
		&t.Composer,
		&t.Milliseconds,
		&t.Bytes,
		&t.UnitPrice,
	)
	return t, err
}

// collect drains rows through scan. rows is always closed.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}
