package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/deppfellow/chinook/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		act  func(t *testing.T, logged string)
	}{
		{
			name: "database error carries both codes",
			err: sqlerr.HandleError(&pgconn.PgError{
				Severity:   "ERROR",
				Code:       "23502",
				TableName:  "Programmer",
				ColumnName: "last_name",
			}),
			act: func(t *testing.T, logged string) {
				assert.Contains(t, logged, `"sql_code":"not_null_violation"`)
				assert.Contains(t, logged, `"kind":"invalid"`)
				assert.Contains(t, logged, `"code":"PROGRAMMER_REQUIRED"`)
				assert.Contains(t, logged, `"message":"command failed"`)
			},
		},
		{
			name: "plain error has no codes",
			err:  errors.New("boom"),
			act: func(t *testing.T, logged string) {
				assert.Contains(t, logged, `"error":"boom"`)
				assert.NotContains(t, logged, "sql_code")
				assert.NotContains(t, logged, `"kind"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			logFailure(&log, tt.err)
			tt.act(t, buf.String())
		})
	}
}
