// Package dateutils provides the date and time formats required by the
// pain.001 document and the record ingestion layer.
package dateutils

import (
	"fmt"
	"time"
)

// Layouts used by the document builder and the file loaders.
const (
	DateLayoutISO      = "2006-01-02"
	DateTimeLayoutISO  = "2006-01-02T15:04:05"
	DateLayoutEuropean = "02.01.2006"
	CompactTimestamp   = "20060102150405"
)

// CommonFormats is the list of formats tried when parsing record creation
// dates from upstream exports.
var CommonFormats = []string{
	DateTimeLayoutISO,
	time.RFC3339,
	DateLayoutISO,
	DateLayoutEuropean,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate attempts to parse a date string using the common formats.
func ParseDate(dateStr string) (time.Time, error) {
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDateTime renders a full ISO-8601 timestamp with time, as required
// for the group header CreDtTm element.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayoutISO)
}

// FormatDate renders a plain calendar date (YYYY-MM-DD), as required for
// the ReqdExctnDt element.
func FormatDate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// DefaultExecutionDate returns the execution date used when none is
// configured: the next calendar day after now.
func DefaultExecutionDate(now time.Time) time.Time {
	return now.AddDate(0, 0, 1)
}
