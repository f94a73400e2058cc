// Package schema holds the static table definitions of the chinook
// database: ordered (column name, type) pairs with primary and foreign keys.
//
// The definitions drive the expression query builder (see Query) and
// document what the driver-level scanners and the ORM models map to.
package schema

// ColumnType is the SQL type family of a column.
type ColumnType int

const (
	Integer ColumnType = iota
	String
	Numeric
)

func (t ColumnType) String() string {
	switch t {
	case Integer:
		return "integer"
	case String:
		return "string"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Column describes one table column.
type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	Nullable   bool
	// References is "Table.Column" for foreign keys, empty otherwise.
	References string
}

// Table is an ordered list of columns under a table name.
type Table struct {
	Name    string
	Columns []Column
}

// Column returns the named column.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKey returns the primary key column.
func (t Table) PrimaryKey() Column {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c
		}
	}
	return Column{}
}

var Programmer = Table{
	Name: "Programmer",
	Columns: []Column{
		{Name: "id", Type: Integer, PrimaryKey: true},
		{Name: "first_name", Type: String},
		{Name: "last_name", Type: String},
		{Name: "gender", Type: String},
		{Name: "nationality", Type: String},
		{Name: "famous_for", Type: String},
	},
}

var Artist = Table{
	Name: "Artist",
	Columns: []Column{
		{Name: "ArtistId", Type: Integer, PrimaryKey: true},
		{Name: "Name", Type: String},
	},
}

var Album = Table{
	Name: "Album",
	Columns: []Column{
		{Name: "AlbumId", Type: Integer, PrimaryKey: true},
		{Name: "Title", Type: String},
		{Name: "ArtistId", Type: Integer, References: "Artist.ArtistId"},
	},
}

var Track = Table{
	Name: "Track",
	Columns: []Column{
		{Name: "TrackId", Type: Integer, PrimaryKey: true},
		{Name: "Name", Type: String},
		{Name: "AlbumId", Type: Integer, References: "Album.AlbumId"},
		{Name: "MediaTypeId", Type: Integer},
		{Name: "GenreId", Type: Integer},
		{Name: "Composer", Type: String, Nullable: true},
		{Name: "Milliseconds", Type: Integer},
		{Name: "Bytes", Type: Integer},
		{Name: "UnitPrice", Type: Numeric},
	},
}
