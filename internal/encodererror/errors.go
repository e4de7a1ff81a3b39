// Package encodererror defines the typed errors produced by configuration
// validation and batch generation.
package encodererror

import "fmt"

// ConfigError represents an invalid debtor configuration detected at
// encoder construction time. Construction fails on the first invalid field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid debtor configuration: %s: %s", e.Field, e.Reason)
}

// FieldError represents a single record-level validation failure. All
// failures for all records of a batch are collected before the batch is
// rejected.
type FieldError struct {
	RecordID int64
	Field    string
	Value    string
	Message  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: %s='%s': %s", e.RecordID, e.Field, e.Value, e.Message)
}

// BatchError represents a batch-level failure with no per-record detail,
// such as an empty input list.
type BatchError struct {
	Reason string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch rejected: %s", e.Reason)
}
