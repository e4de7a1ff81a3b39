package records

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"eventpay/sepa-refunds/internal/logging"
	"eventpay/sepa-refunds/internal/models"
)

// LoadXLSX reads candidate refund records from the first sheet of an XLSX
// export. The first row must be a header naming the same columns as the
// CSV format; column order is free.
func LoadXLSX(filePath string) ([]models.CandidateRefundRecord, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading refund records from XLSX")

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open XLSX file")
		return nil, fmt.Errorf("error opening XLSX file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("XLSX sheet '%s' has no data rows", sheet)
	}

	columns := headerIndex(rows[0])
	if _, ok := columns["id"]; !ok {
		return nil, fmt.Errorf("XLSX sheet '%s' is missing the 'id' column", sheet)
	}

	raw := make([]refundRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		raw = append(raw, refundRow{
			ID:          cell(row, columns, "id"),
			CreatedAt:   cell(row, columns, "created_at"),
			FirstName:   cell(row, columns, "first_name"),
			LastName:    cell(row, columns, "last_name"),
			Account:     cell(row, columns, "account"),
			CardID:      cell(row, columns, "card_id"),
			Amount:      cell(row, columns, "amount"),
			MatchStatus: cell(row, columns, "match_status"),
			MatchNotes:  cell(row, columns, "match_notes"),
		})
	}

	converted, err := convertRows(raw)
	if err != nil {
		return nil, err
	}

	log.WithField(logging.FieldCount, len(converted)).Info("Successfully read refund records")
	return converted, nil
}

// headerIndex maps lowercased header names to their column positions.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return columns
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func isRowEmpty(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
