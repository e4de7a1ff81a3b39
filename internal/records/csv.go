package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"eventpay/sepa-refunds/internal/logging"
	"eventpay/sepa-refunds/internal/models"
)

// LoadCSV reads candidate refund records from a CSV export. The delimiter
// defaults to a comma; pass the configured rune to match exports that use
// semicolons.
func LoadCSV(filePath string, delimiter rune) ([]models.CandidateRefundRecord, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading refund records from CSV")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return readCSV(file, delimiter)
}

// readCSV parses CSV content into typed records.
func readCSV(r io.Reader, delimiter rune) ([]models.CandidateRefundRecord, error) {
	if delimiter == 0 {
		delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []refundRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	converted, err := convertRows(rows)
	if err != nil {
		return nil, err
	}

	log.WithField(logging.FieldCount, len(converted)).Info("Successfully read refund records")
	return converted, nil
}
