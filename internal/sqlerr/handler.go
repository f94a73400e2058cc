package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/chinook/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// tablePrefix marks the table name inside a wrapped error message,
// e.g. "table:Artist: artist by id: no rows in result set".
const tablePrefix = "table:"

var (
	uniqueKeyRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	camelRe     = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ErrCode reports the mapped Code for a given error.
//
// If err can be unwrapped into *Error, its Code is returned; otherwise Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into our Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates "<DOMAIN>_<ACTION>" codes from DB errors.
//
// Example:
//
//	Album + ForeignKeyViolation => ALBUM_REFERENCE_NOT_FOUND
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(camelRe.ReplaceAllString(tableName, "${1}_${2}"))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "REFERENCE_NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces a message meant for the terminal, not logs.
func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		// The failing column lives on the child table and names the parent:
		// Album.ArtistId -> "The referenced Artist does not exist".
		return fmt.Sprintf("The referenced %s does not exist", getEntityName(sqlErr.TableName, referencedColumn(sqlErr)))

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", getEntityName(sqlErr.TableName, ""))

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// referencedColumn guesses the FK column from a constraint name like
// "FK_AlbumArtistId" or "Album_ArtistId_fkey" when Postgres left ColumnName empty.
func referencedColumn(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}
	name := strings.TrimSuffix(sqlErr.ConstraintName, "_fkey")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimPrefix(name, sqlErr.TableName)
	if strings.HasSuffix(strings.ToLower(name), "id") {
		return name
	}
	return ""
}

// getEntityName infers an entity name from table/column data.
//
// Priority rules:
//  1. A column ending with "_id" or "Id" names the entity ("ArtistId" -> "Artist").
//  2. Otherwise the table name.
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	lower := strings.ToLower(columnName)
	switch {
	case strings.HasSuffix(lower, "_id") && len(columnName) > 3:
		return humanizeText(columnName[:len(columnName)-3])
	case strings.HasSuffix(columnName, "Id") && len(columnName) > 2:
		return humanizeText(columnName[:len(columnName)-2])
	}

	if tableName != "" {
		return humanizeText(tableName)
	}

	return "record"
}

// humanizeText converts snake_case or CamelCase into Title Case.
//
// Example:
//
//	"first_name" -> "First Name"
//	"MediaType"  -> "Media Type"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	text = camelRe.ReplaceAllString(text, "${1} ${2}")
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
// It supports "unique_<table>_<column>" and "<table>_<column>_(key|ukey)".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyRe.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - nil stays nil
//   - *errs.Error is returned unchanged
//   - *pgconn.PgError constraint violations become errs.KindInvalid
//   - pgx.ErrNoRows, sql.ErrNoRows, gorm.ErrRecordNotFound become errs.KindNotFound
//   - anything else becomes errs.KindInternal with the cause attached
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, CheckViolation:
			return errs.NewInvalidError(userMessage, &errorCode, nil, sqlErr)

		case UniqueViolation:
			columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName)
			if columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewInvalidError(userMessage, &errorCode, nil, sqlErr)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: sqlErr.ColumnName,
					Error: "is required",
				},
			}
			return errs.NewInvalidError(userMessage, &errorCode, fieldErrors, sqlErr)

		default:
			return errs.NewInternalError(err)
		}
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows), errors.Is(err, gorm.ErrRecordNotFound):
		errMsg := err.Error()
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			code := generateErrorCode(table, Other)
			code = strings.TrimSuffix(code, "_ERROR") + "_NOT_FOUND"
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(table, "")), &code)
		}
		return errs.NewNotFoundError("No records found", nil)
	}

	return errs.NewInternalError(err)
}

// WithTable annotates err with the table it came from so HandleError can
// name the entity in not-found messages.
func WithTable(table, op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s%s: %s: %w", tablePrefix, table, op, err)
}
