// Package currencyutils provides the decimal amount operations shared by
// validation, reconciliation, and document generation.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxTransferAmount is the largest amount a single credit transfer may
// carry: 999,999,999.99.
var MaxTransferAmount = decimal.RequireFromString("999999999.99")

// currencyNoise matches currency symbols and whitespace stripped before
// parsing free-form amount strings.
var currencyNoise = regexp.MustCompile(`[€$£CHF\s]`)

// FormatAmount renders an amount as a canonical two-decimal string with
// half-away-from-zero rounding, e.g. 28 -> "28.00" and
// 999999.999 -> "1000000.00". It never rejects: negative and zero amounts
// are formatted too, the validator refuses them earlier.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// ParseAmount parses a string representation of an amount into a decimal
// value. It tolerates common export formats: "1,234.56", "1234,56",
// "1'234.56", "€28.00". Empty input parses as zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := standardize(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// standardize converts the various decimal/thousand separator conventions
// into a form decimal.NewFromString accepts.
func standardize(amountStr string) string {
	amountStr = currencyNoise.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Anglo format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	return strings.ReplaceAll(amountStr, "'", "")
}

// ExceedsCap reports whether the amount is above MaxTransferAmount.
func ExceedsCap(amount decimal.Decimal) bool {
	return amount.GreaterThan(MaxTransferAmount)
}

// Sum returns the total of the given amounts.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
