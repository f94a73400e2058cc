// Package model contains the in-memory records of the chinook tables.
//
// Each record carries gorm tags matching the column definitions in
// package schema and a Fields method producing its printable columns.
package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

type Artist struct {
	ArtistID int    `gorm:"column:ArtistId;primaryKey"`
	Name     string `gorm:"column:Name"`
}

func (Artist) TableName() string { return "Artist" }

func (a Artist) Fields() []string {
	return []string{strconv.Itoa(a.ArtistID), a.Name}
}

type Album struct {
	AlbumID  int    `gorm:"column:AlbumId;primaryKey"`
	Title    string `gorm:"column:Title"`
	ArtistID int    `gorm:"column:ArtistId"`
}

func (Album) TableName() string { return "Album" }

func (a Album) Fields() []string {
	return []string{strconv.Itoa(a.AlbumID), a.Title, strconv.Itoa(a.ArtistID)}
}

type Track struct {
	TrackID      int             `gorm:"column:TrackId;primaryKey"`
	Name         string          `gorm:"column:Name"`
	AlbumID      int             `gorm:"column:AlbumId"`
	MediaTypeID  int             `gorm:"column:MediaTypeId"`
	GenreID      int             `gorm:"column:GenreId"`
	Composer     *string         `gorm:"column:Composer"`
	Milliseconds int             `gorm:"column:Milliseconds"`
	Bytes        int             `gorm:"column:Bytes"`
	UnitPrice    decimal.Decimal `gorm:"column:UnitPrice;type:numeric(10,2)"`
}

func (Track) TableName() string { return "Track" }

// Fields prints a missing Composer as an empty field.
func (t Track) Fields() []string {
	composer := ""
	if t.Composer != nil {
		composer = *t.Composer
	}
	return []string{
		strconv.Itoa(t.TrackID),
		t.Name,
		strconv.Itoa(t.AlbumID),
		strconv.Itoa(t.MediaTypeID),
		strconv.Itoa(t.GenreID),
		composer,
		strconv.Itoa(t.Milliseconds),
		strconv.Itoa(t.Bytes),
		t.UnitPrice.String(),
	}
}

// Name is a single projected column, used by the "artist names" query.
type Name string

func (n Name) Fields() []string { return []string{string(n)} }
