package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Filter is a set of equality predicates keyed by column name.
type Filter map[string]any

// Columns returns the filter's column names in a deterministic order.
func (f Filter) Columns() []string {
	cols := make([]string, 0, len(f))
	for c := range f {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

type predicate struct {
	column string
	value  any
}

// Query is a SELECT statement over one Table.
//
// Unknown column names are collected and reported by SQL, so a chain of
// calls never panics.
type Query struct {
	table   Table
	columns []string
	where   []predicate
	limit   int
	err     error
}

// Select starts a query returning every column of t.
func (t Table) Select() *Query {
	return &Query{table: t, columns: t.ColumnNames()}
}

// Only restricts the projection to cols.
func (q *Query) Only(cols ...string) *Query {
	for _, c := range cols {
		q.check(c)
	}
	q.columns = cols
	return q
}

// Where adds "column = value". A nil value compares with IS NULL.
func (q *Query) Where(column string, value any) *Query {
	q.check(column)
	q.where = append(q.where, predicate{column: column, value: value})
	return q
}

// Filter adds every predicate of f.
func (q *Query) Filter(f Filter) *Query {
	for _, c := range f.Columns() {
		q.Where(c, f[c])
	}
	return q
}

// Limit caps the number of rows; 0 means no limit.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Columns returns the projected column names.
func (q *Query) Columns() []string {
	return q.columns
}

func (q *Query) check(column string) {
	if q.err != nil {
		return
	}
	if _, ok := q.table.Column(column); !ok {
		q.err = fmt.Errorf("schema: table %q has no column %q", q.table.Name, column)
	}
}

// SQL renders the statement with $n placeholders and its arguments.
func (q *Query) SQL() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	if len(q.columns) == 0 {
		return "", nil, fmt.Errorf("schema: empty projection on table %q", q.table.Name)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	for i, c := range q.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(c))
	}
	b.WriteString(" FROM ")
	b.WriteString(quote(q.table.Name))

	var args []any
	for i, p := range q.where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(quote(p.column))
		if p.value == nil {
			b.WriteString(" IS NULL")
			continue
		}
		args = append(args, p.value)
		b.WriteString(" = $")
		b.WriteString(strconv.Itoa(len(args)))
	}

	if pk := q.table.PrimaryKey(); pk.Name != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(quote(pk.Name))
	}

	if q.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}

	return b.String(), args, nil
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}
