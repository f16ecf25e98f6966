package model

import (
	"errors"
	"fmt"
)

// ConfigurationError reports invalid input detected before any file system
// change is made.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}

	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// IsConfigurationError reports whether err wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// ConflictError reports a non-empty target directory whose overwrite was not confirmed.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("target %q already exists and is not empty; overwrite was not confirmed", e.Path)
}

// IsConflictError reports whether err wraps a ConflictError.
func IsConflictError(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// SourceMissingError reports a manifest entry that no longer exists in the
// source project. It aborts a copy batch.
type SourceMissingError struct {
	Path Path
	Err  error
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("source file %q is missing: %v", e.Path, e.Err)
}

func (e *SourceMissingError) Unwrap() error { return e.Err }

// IsSourceMissing reports whether err wraps a SourceMissingError.
func IsSourceMissing(err error) bool {
	var e *SourceMissingError
	return errors.As(err, &e)
}

// DecodeError reports a texture that could not be decoded or imported.
type DecodeError struct {
	Path Path
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode texture %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err wraps a DecodeError.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// ReportParseError reports a malformed report or settings document.
type ReportParseError struct {
	Path Path
	Err  error
}

func (e *ReportParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Path, e.Err)
}

func (e *ReportParseError) Unwrap() error { return e.Err }

// IsReportParseError reports whether err wraps a ReportParseError.
func IsReportParseError(err error) bool {
	var e *ReportParseError
	return errors.As(err, &e)
}
