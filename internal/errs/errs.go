// Package errs defines the application error type and utilities.
//
// Its purpose is to give every layer one error shape with a
// machine-friendly code and a human-friendly message, so the
// command layer can tell "no record found" apart from a broken
// connection without looking at driver internals.
package errs
