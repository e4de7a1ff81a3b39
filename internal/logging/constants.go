package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file"
	FieldCount      = "count"
	FieldRunID      = "run_id"
	FieldRecords    = "records"
	FieldRecordID   = "record_id"
	FieldMessageID  = "message_id"
	FieldControlSum = "control_sum"
	FieldErrors     = "errors"
	FieldWarnings   = "warnings"
	FieldDelimiter  = "delimiter"
	FieldOutputFile = "output_file"
)
