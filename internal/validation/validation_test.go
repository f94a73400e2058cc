package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name    string        `koanf:"name" validate:"required,max=10"`
	Retries int           `koanf:"retries" validate:"min=1"`
	Format  string        `validate:"oneof=json console"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

func (s settings) Validate() error { return Struct(s) }

type broken struct{}

func (broken) Validate() error { return errors.New("invalid logging level: verbose") }

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		record  Validatable
		fields  []errs.FieldError
		message string
	}{
		{
			name:   "valid",
			record: settings{Name: "chinook", Retries: 3, Format: "json", Timeout: time.Second},
		},
		{
			name:   "every failing field is reported by key",
			record: settings{Format: "xml", Timeout: time.Millisecond},
			fields: []errs.FieldError{
				{Field: "name", Error: "is required"},
				{Field: "retries", Error: "must be at least 1"},
				{Field: "Format", Error: "must be one of: json console"},
				{Field: "timeout", Error: "must be at least 1s"},
			},
			message: "Validation failed: name is required, retries must be at least 1, " +
				"Format must be one of: json console, timeout must be at least 1s",
		},
		{
			name:    "string length",
			record:  settings{Name: "a-very-long-name", Retries: 1, Format: "json", Timeout: time.Second},
			fields:  []errs.FieldError{{Field: "name", Error: "must not exceed 10 characters"}},
			message: "Validation failed: name must not exceed 10 characters",
		},
		{
			name:    "plain errors keep their message",
			record:  broken{},
			message: "invalid logging level: verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.record)
			if tt.message == "" {
				require.NoError(t, err)
				return
			}

			var appErr *errs.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errs.KindInvalid, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Equal(t, tt.fields, appErr.Errors)
		})
	}
}
