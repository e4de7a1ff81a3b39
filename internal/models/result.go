package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerationResult is the outcome of one Generate call. Success implies
// XMLContent, MessageID, TransactionCount, and TotalAmount are all set;
// failure implies no XML was produced at all.
type GenerationResult struct {
	Success          bool            `json:"success"`
	XMLContent       string          `json:"xml_content,omitempty"`
	MessageID        string          `json:"message_id,omitempty"`
	TransactionCount int             `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Errors           []string        `json:"errors,omitempty"`
	Warnings         []string        `json:"warnings,omitempty"`
	Duration         time.Duration   `json:"duration"`
}
