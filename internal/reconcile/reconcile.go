// Package reconcile collapses candidate refund records that represent the
// same physical payout before they become transactions. The upstream
// matching step may emit more than one record per payee, e.g. a payee
// re-scanned or matched through two different card identifiers.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"eventpay/sepa-refunds/internal/iban"
	"eventpay/sepa-refunds/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// MergeMarker is the literal carried in the remittance text of merged
// transfers. Downstream text matching depends on it staying stable.
const MergeMarker = "remboursements regroupes"

// Result holds the reconciled transactions in input order plus the
// warnings accumulated by the duplicate pass. Money is conserved: the sum
// of transaction amounts equals the sum of the surviving records' amounts,
// and every removed record is accounted for in a warning.
type Result struct {
	Transactions []models.ReconciledTransaction
	Warnings     []string
}

// Reconcile runs the two reconciliation passes over the validated records:
//
//  1. exact-duplicate pass — group by normalized card identifier, keep the
//     first record of each group, warn about the rest;
//  2. merge pass — group the survivors by normalized IBAN and collapse
//     multi-record groups into a single summed transaction marked as
//     grouped refunds.
//
// Input order is preserved throughout: it decides which record survives a
// duplicate group and the order of the resulting transactions.
func Reconcile(records []models.CandidateRefundRecord) Result {
	survivors, warnings := dropExactDuplicates(records)
	transactions := mergeByAccount(survivors)

	log.WithFields(logrus.Fields{
		"records":      len(records),
		"transactions": len(transactions),
		"removed":      len(records) - len(survivors),
	}).Debug("Reconciliation complete")

	return Result{
		Transactions: transactions,
		Warnings:     warnings,
	}
}

// dropExactDuplicates keeps the first record per normalized card identifier
// and emits one warning per group that lost records. Records without a card
// identifier are never treated as duplicates of each other.
func dropExactDuplicates(records []models.CandidateRefundRecord) ([]models.CandidateRefundRecord, []string) {
	survivors := make([]models.CandidateRefundRecord, 0, len(records))
	removedPerKey := make(map[string]int)
	var keyOrder []string

	seen := make(map[string]bool)
	for _, record := range records {
		key := normalizeKey(record.CardID)
		if key == "" {
			survivors = append(survivors, record)
			continue
		}
		if seen[key] {
			if removedPerKey[key] == 0 {
				keyOrder = append(keyOrder, key)
			}
			removedPerKey[key]++
			continue
		}
		seen[key] = true
		survivors = append(survivors, record)
	}

	var warnings []string
	for _, key := range keyOrder {
		warnings = append(warnings, fmt.Sprintf(
			"%d duplicate transfer(s) removed (same IBAN, amount, and card ID)",
			removedPerKey[key]))
	}
	return survivors, warnings
}

// mergeByAccount groups survivors by normalized destination IBAN. Groups of
// more than one record merge into a single transaction whose amount is the
// group sum and whose remittance text carries the merge marker; singletons
// pass through unchanged.
func mergeByAccount(records []models.CandidateRefundRecord) []models.ReconciledTransaction {
	groups := make(map[string][]models.CandidateRefundRecord)
	var order []string

	for _, record := range records {
		key := iban.Normalize(record.Account)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], record)
	}

	transactions := make([]models.ReconciledTransaction, 0, len(order))
	for _, key := range order {
		group := groups[key]
		first := group[0]

		tx := models.ReconciledTransaction{
			RecordID:    first.ID,
			Name:        first.FullName(),
			IBAN:        key,
			Amount:      first.Amount,
			MergedCount: len(group),
		}

		if len(group) > 1 {
			for _, record := range group[1:] {
				tx.Amount = tx.Amount.Add(record.Amount)
			}
			tx.Merged = true
			tx.RemittanceInfo = fmt.Sprintf("%d %s", len(group), MergeMarker)
		} else {
			tx.RemittanceInfo = singleRemittance(first)
		}

		transactions = append(transactions, tx)
	}
	return transactions
}

// singleRemittance builds the remittance text for an unmerged transfer.
func singleRemittance(record models.CandidateRefundRecord) string {
	if record.CardID == "" {
		return "Remboursement"
	}
	return fmt.Sprintf("Remboursement carte %s", record.CardID)
}

// normalizeKey produces the canonical grouping key for a card identifier:
// uppercase with whitespace stripped. The key is used only for grouping,
// never stored as a display value.
func normalizeKey(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
