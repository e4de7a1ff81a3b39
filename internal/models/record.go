// Package models provides the data structures shared by validation,
// reconciliation, and document generation.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Match statuses inherited from the upstream matching step.
const (
	MatchStatusMatched = "matched"
	MatchStatusWarning = "warning"
)

// CandidateRefundRecord is one refund candidate produced by the upstream
// matching step. Records are consumed read-only; every transformation
// produces new values.
type CandidateRefundRecord struct {
	ID          int64           `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Account     string          `json:"account"` // IBAN, free-form casing and spacing
	CardID      string          `json:"card_id"`
	Amount      decimal.Decimal `json:"amount"`
	MatchStatus string          `json:"match_status"`
	MatchNotes  string          `json:"match_notes"`
}

// FullName returns the "first last" payee name used for validation and as
// the creditor name in the generated file.
func (r CandidateRefundRecord) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// HasWarning reports whether the upstream matching step flagged this record.
func (r CandidateRefundRecord) HasWarning() bool {
	return strings.EqualFold(r.MatchStatus, MatchStatusWarning)
}
