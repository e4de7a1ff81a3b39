package models

import "github.com/shopspring/decimal"

// ReconciledTransaction is one outgoing wire transfer after the dedup and
// merge passes. Its amount equals the sum of the amounts of every candidate
// record that contributed to it.
type ReconciledTransaction struct {
	RecordID       int64           `json:"record_id"` // first contributing record, keys the identifiers
	Name           string          `json:"name"`
	IBAN           string          `json:"iban"` // normalized
	Amount         decimal.Decimal `json:"amount"`
	Merged         bool            `json:"merged"`
	MergedCount    int             `json:"merged_count"`
	RemittanceInfo string          `json:"remittance_info"`
}
