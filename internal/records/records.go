// Package records loads candidate refund records from the CSV and XLSX
// exports produced by the upstream matching step.
package records

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"eventpay/sepa-refunds/internal/currencyutils"
	"eventpay/sepa-refunds/internal/dateutils"
	"eventpay/sepa-refunds/internal/fileutils"
	"eventpay/sepa-refunds/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Load reads refund records from a CSV or XLSX file, dispatching on the
// file extension.
func Load(filePath string, delimiter rune) ([]models.CandidateRefundRecord, error) {
	if !fileutils.FileExists(filePath) {
		return nil, fmt.Errorf("input file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return LoadCSV(filePath, delimiter)
	case ".xlsx":
		return LoadXLSX(filePath)
	default:
		return nil, fmt.Errorf("unsupported record file format: %s", filePath)
	}
}

// refundRow is the raw shape of one exported row. All fields are strings;
// conversion to typed values happens in toRecord so a malformed cell is
// reported with its row number instead of failing the whole unmarshal.
type refundRow struct {
	ID          string `csv:"id"`
	CreatedAt   string `csv:"created_at"`
	FirstName   string `csv:"first_name"`
	LastName    string `csv:"last_name"`
	Account     string `csv:"account"`
	CardID      string `csv:"card_id"`
	Amount      string `csv:"amount"`
	MatchStatus string `csv:"match_status"`
	MatchNotes  string `csv:"match_notes"`
}

// toRecord converts a raw row into a typed record. rowNum is 1-based and
// counts data rows, excluding the header.
func (r refundRow) toRecord(rowNum int) (models.CandidateRefundRecord, error) {
	var record models.CandidateRefundRecord

	id, err := strconv.ParseInt(strings.TrimSpace(r.ID), 10, 64)
	if err != nil {
		return record, fmt.Errorf("row %d: invalid record id '%s'", rowNum, r.ID)
	}

	amount, err := currencyutils.ParseAmount(r.Amount)
	if err != nil {
		return record, fmt.Errorf("row %d: %w", rowNum, err)
	}

	record = models.CandidateRefundRecord{
		ID:          id,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Account:     strings.TrimSpace(r.Account),
		CardID:      strings.TrimSpace(r.CardID),
		Amount:      amount,
		MatchStatus: strings.TrimSpace(r.MatchStatus),
		MatchNotes:  strings.TrimSpace(r.MatchNotes),
	}

	if created := strings.TrimSpace(r.CreatedAt); created != "" {
		t, err := dateutils.ParseDate(created)
		if err != nil {
			return record, fmt.Errorf("row %d: %w", rowNum, err)
		}
		record.CreatedAt = t
	}

	return record, nil
}

// convertRows turns raw rows into typed records, failing on the first
// malformed row.
func convertRows(rows []refundRow) ([]models.CandidateRefundRecord, error) {
	converted := make([]models.CandidateRefundRecord, 0, len(rows))
	for i, row := range rows {
		record, err := row.toRecord(i + 1)
		if err != nil {
			return nil, err
		}
		converted = append(converted, record)
	}
	return converted, nil
}
