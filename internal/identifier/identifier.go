// Package identifier generates the message, payment, instruction, and
// end-to-end references stamped into the pain.001 document.
package identifier

import (
	"fmt"
	"math/rand"
	"time"

	"eventpay/sepa-refunds/internal/dateutils"
)

// Default reference prefixes, overridable through the generation options.
const (
	DefaultMessagePrefix = "MSG"
	DefaultPaymentPrefix = "PMT"

	// EndToEndPrefix keys a transfer back to its refund record for the
	// whole transfer lifecycle. Downstream matching depends on it.
	EndToEndPrefix = "REFUND_"
)

// Generator produces the identifiers for one generation run. Instruction
// and end-to-end identifiers are keyed off the unique record id, so no two
// records of a batch can collide. Message identifiers are distinguishable
// across runs with high probability but are advisory only: the bank
// deduplicates on its own reference.
type Generator struct {
	MessagePrefix string
	PaymentPrefix string

	// Now and RandInt are injectable for tests. RandInt must be safe for
	// concurrent use when the encoder is shared across goroutines; the
	// default math/rand source is.
	Now     func() time.Time
	RandInt func(n int) int
}

// New creates a Generator with the given prefixes, falling back to the
// defaults when a prefix is empty.
func New(messagePrefix, paymentPrefix string) *Generator {
	if messagePrefix == "" {
		messagePrefix = DefaultMessagePrefix
	}
	if paymentPrefix == "" {
		paymentPrefix = DefaultPaymentPrefix
	}
	return &Generator{
		MessagePrefix: messagePrefix,
		PaymentPrefix: paymentPrefix,
		Now:           time.Now,
		RandInt:       rand.Intn,
	}
}

// MessageID returns the group header message identifier:
// prefix + compact timestamp + 3-digit random suffix.
func (g *Generator) MessageID() string {
	return fmt.Sprintf("%s%s%03d",
		g.MessagePrefix,
		g.Now().Format(dateutils.CompactTimestamp),
		g.RandInt(1000))
}

// PaymentInfoID returns the payment-information block identifier:
// prefix + compact timestamp.
func (g *Generator) PaymentInfoID() string {
	return g.PaymentPrefix + g.Now().Format(dateutils.CompactTimestamp)
}

// InstructionID returns the per-transaction instruction identifier:
// fixed-width zero-padded record id + short timestamp.
func (g *Generator) InstructionID(recordID int64) string {
	return fmt.Sprintf("%010d-%s", recordID, g.Now().Format("150405"))
}

// EndToEndID returns the per-transaction end-to-end identifier:
// REFUND_ + fixed-width zero-padded record id.
func (g *Generator) EndToEndID(recordID int64) string {
	return fmt.Sprintf("%s%010d", EndToEndPrefix, recordID)
}
