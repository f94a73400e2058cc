package errs

// NewNotFoundError creates a not-found Error.
//
// code is optional; if nil it defaults to "NOT_FOUND".
func NewNotFoundError(message string, code *string) *Error {
	formattedCode := MakeUpperCaseWithUnderscores("not found")
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:    KindNotFound,
		Code:    formattedCode,
		Message: message,
	}
}

// NewInvalidError creates an Error for data the database refused,
// typically a constraint violation.
//
// code is optional; if nil it defaults to "INVALID".
func NewInvalidError(message string, code *string, errors []FieldError, cause error) *Error {
	formattedCode := MakeUpperCaseWithUnderscores("invalid")
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:    KindInvalid,
		Code:    formattedCode,
		Message: message,
		Errors:  errors,
		Err:     cause,
	}
}

// NewInternalError wraps an unexpected failure (connection loss, failed commit).
//
// The cause stays reachable through errors.Unwrap so the command can log it.
func NewInternalError(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    MakeUpperCaseWithUnderscores("internal error"),
		Message: "database operation failed",
		Err:     cause,
	}
}
