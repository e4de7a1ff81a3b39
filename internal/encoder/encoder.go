// Package encoder exposes the payment-file encoder: the public entry point
// that turns candidate refund records into a pain.001.001.03 file.
package encoder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"eventpay/sepa-refunds/internal/config"
	"eventpay/sepa-refunds/internal/currencyutils"
	"eventpay/sepa-refunds/internal/document"
	"eventpay/sepa-refunds/internal/encodererror"
	"eventpay/sepa-refunds/internal/identifier"
	"eventpay/sepa-refunds/internal/logging"
	"eventpay/sepa-refunds/internal/models"
	"eventpay/sepa-refunds/internal/reconcile"
	"eventpay/sepa-refunds/internal/validation"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package and the stages
// it drives.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
	validation.SetLogger(logger)
	reconcile.SetLogger(logger)
	document.SetLogger(logger)
}

// internalErrorMessage is the single generic error reported when a
// generation stage fails unexpectedly. Validation failures never take this
// path; they return the full structured error list.
const internalErrorMessage = "internal error while generating the payment file"

// PaymentFileEncoder generates SEPA credit transfer files for one debtor
// configuration. It holds only immutable state after construction: a single
// instance can be reused and shared across goroutines without
// synchronization. Construct one encoder per debtor and inject it where
// needed.
type PaymentFileEncoder struct {
	debtor  config.DebtorConfig
	options config.GenerationOptions
	ids     *identifier.Generator
}

// New validates the debtor configuration and options synchronously and
// returns a configured encoder. There is no partial or degraded encoder: an
// invalid configuration fails construction with a ConfigError.
func New(debtor config.DebtorConfig, options *config.GenerationOptions) (*PaymentFileEncoder, error) {
	if err := debtor.Validate(); err != nil {
		return nil, err
	}

	opts := config.DefaultOptions()
	if options != nil {
		if err := options.Validate(); err != nil {
			return nil, err
		}
		opts = options.Normalized()
	}

	return &PaymentFileEncoder{
		debtor:  debtor,
		options: opts,
		ids:     identifier.New(opts.MessageIDPrefix, opts.PaymentIDPrefix),
	}, nil
}

// overCapTransactions collects an error per reconciled transaction whose
// merged amount exceeds the single-transfer maximum.
func overCapTransactions(transactions []models.ReconciledTransaction) []string {
	var errs []string
	for _, tx := range transactions {
		if !currencyutils.ExceedsCap(tx.Amount) {
			continue
		}
		err := &encodererror.FieldError{
			RecordID: tx.RecordID,
			Field:    "amount",
			Value:    currencyutils.FormatAmount(tx.Amount),
			Message: fmt.Sprintf("merged amount exceeds the maximum of %s",
				currencyutils.MaxTransferAmount),
		}
		errs = append(errs, err.Error())
	}
	return errs
}

// Generate turns candidate refund records into a payment file. It never
// returns an error: every failure is reported inside the GenerationResult.
// Generation is all-or-nothing — a batch with any invalid record produces
// no XML at all, and a failed call leaves no side effect, so it can be
// retried with corrected input.
func (e *PaymentFileEncoder) Generate(records []models.CandidateRefundRecord) (result models.GenerationResult) {
	start := time.Now()
	runID := uuid.New().String()
	logger := log.WithFields(logrus.Fields{
		logging.FieldRunID:   runID,
		logging.FieldRecords: len(records),
	})

	// Unexpected faults in any stage surface as one generic error instead
	// of a panic crossing the API boundary.
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Generation failed unexpectedly")
			result = models.GenerationResult{
				Success:  false,
				Errors:   []string{internalErrorMessage},
				Duration: time.Since(start),
			}
		}
	}()

	validated := validation.ValidateRecords(records)
	if !validated.IsValid {
		logger.WithField(logging.FieldErrors, len(validated.Errors)).Warn("Refund batch rejected")
		return models.GenerationResult{
			Success:  false,
			Errors:   validated.ErrorStrings(),
			Warnings: validated.Warnings,
			Duration: time.Since(start),
		}
	}

	reconciled := reconcile.Reconcile(records)
	warnings := append(validated.Warnings, reconciled.Warnings...)

	// Merging can push a per-account total above the cap even when every
	// contributing record was within it. A transfer above the cap would be
	// rejected by the bank, so the batch fails here instead.
	if capErrs := overCapTransactions(reconciled.Transactions); len(capErrs) > 0 {
		logger.WithField(logging.FieldErrors, len(capErrs)).Warn("Refund batch rejected")
		return models.GenerationResult{
			Success:  false,
			Errors:   capErrs,
			Warnings: warnings,
			Duration: time.Since(start),
		}
	}

	builder := document.New(e.debtor, e.options, e.ids)
	output, err := builder.Build(reconciled.Transactions)
	if err != nil {
		logger.WithError(err).Error("Document assembly failed")
		return models.GenerationResult{
			Success:  false,
			Errors:   []string{internalErrorMessage},
			Warnings: warnings,
			Duration: time.Since(start),
		}
	}

	logger.WithFields(logrus.Fields{
		logging.FieldMessageID:  output.MessageID,
		logging.FieldCount:      output.Count,
		logging.FieldControlSum: output.ControlSum,
	}).Info("Payment file generated")

	return models.GenerationResult{
		Success:          true,
		XMLContent:       output.XMLContent,
		MessageID:        output.MessageID,
		TransactionCount: output.Count,
		TotalAmount:      output.ControlSum,
		Warnings:         warnings,
		Duration:         time.Since(start),
	}
}
