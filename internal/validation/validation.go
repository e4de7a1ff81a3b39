// Package validation checks candidate refund records before they are
// reconciled into transactions. Validation never short-circuits: every
// violation of every record is collected so the caller can fix a batch in
// one pass.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"eventpay/sepa-refunds/internal/currencyutils"
	"eventpay/sepa-refunds/internal/encodererror"
	"eventpay/sepa-refunds/internal/iban"
	"eventpay/sepa-refunds/internal/models"
	"eventpay/sepa-refunds/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Result is the outcome of validating a batch. The batch is valid iff the
// error list is empty; warnings never fail a batch.
type Result struct {
	IsValid  bool
	Errors   []error
	Warnings []string
}

// ErrorStrings renders the collected errors for the generation result.
func (r Result) ErrorStrings() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		out[i] = err.Error()
	}
	return out
}

// ValidateRecords validates a batch of candidate refund records. An empty
// batch is rejected with a single batch-level error. Upstream warning
// statuses are surfaced as batch warnings, not errors.
func ValidateRecords(records []models.CandidateRefundRecord) Result {
	if len(records) == 0 {
		return Result{
			IsValid: false,
			Errors:  []error{&encodererror.BatchError{Reason: "no refund records to process"}},
		}
	}

	var errs []error
	var warnings []string

	for _, record := range records {
		errs = append(errs, validateRecord(record)...)

		if record.HasWarning() {
			notes := record.MatchNotes
			if notes == "" {
				notes = "no details provided"
			}
			warnings = append(warnings, fmt.Sprintf("record %d flagged by upstream matching: %s", record.ID, notes))
		}
	}

	if len(errs) > 0 {
		log.WithFields(logrus.Fields{
			"records": len(records),
			"errors":  len(errs),
		}).Warn("Batch failed validation")
	}

	return Result{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// validateRecord collects every violation of a single record.
func validateRecord(record models.CandidateRefundRecord) []error {
	var errs []error

	fail := func(field, value, message string) {
		errs = append(errs, &encodererror.FieldError{
			RecordID: record.ID,
			Field:    field,
			Value:    value,
			Message:  message,
		})
	}

	if record.FirstName == "" {
		fail("first_name", "", "payee first name is required")
	}
	if record.LastName == "" {
		fail("last_name", "", "payee last name is required")
	}

	if record.Account == "" {
		fail("account", "", "payee account is required")
	} else if !iban.Validate(record.Account) {
		fail("account", record.Account, "payee account is not a valid Belgian IBAN")
	}

	if !record.Amount.IsPositive() {
		fail("amount", record.Amount.String(), "amount must be positive")
	} else if currencyutils.ExceedsCap(record.Amount) {
		fail("amount", record.Amount.String(),
			fmt.Sprintf("amount exceeds the maximum of %s", currencyutils.MaxTransferAmount))
	}

	if name := record.FullName(); name != "" {
		if !textutils.IsAllowed(name) {
			fail("name", name, "payee name contains characters outside the allowed set")
		}
		if len([]rune(name)) > textutils.MaxNameLength {
			fail("name", name,
				fmt.Sprintf("payee name exceeds %d characters", textutils.MaxNameLength))
		}
	}

	return errs
}

// TotalAmount sums the amounts of a batch. Used for the money-conservation
// check against the reconciled transactions.
func TotalAmount(records []models.CandidateRefundRecord) decimal.Decimal {
	amounts := make([]decimal.Decimal, len(records))
	for i, record := range records {
		amounts[i] = record.Amount
	}
	return currencyutils.Sum(amounts)
}
