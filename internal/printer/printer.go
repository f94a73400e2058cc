// Package printer writes records as pipe-delimited lines.
package printer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Separator joins the fields of one record.
const Separator = " | "

// Record is anything that can list its printable fields.
type Record interface {
	Fields() []string
}

// Line renders one record without the trailing newline.
func Line(r Record) string {
	return strings.Join(r.Fields(), Separator)
}

// Print writes one line per record. An empty slice writes nothing.
func Print[T Record](w io.Writer, records []T) error {
	for _, r := range records {
		if _, err := io.WriteString(w, Line(r)+"\n"); err != nil {
			return errors.Wrap(err, "print record")
		}
	}
	return nil
}

// PrintOne writes a single record.
func PrintOne(w io.Writer, r Record) error {
	_, err := io.WriteString(w, Line(r)+"\n")
	return errors.Wrap(err, "print record")
}
