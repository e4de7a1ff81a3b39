package encoder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpay/sepa-refunds/internal/config"
	"eventpay/sepa-refunds/internal/encodererror"
	"eventpay/sepa-refunds/internal/models"
	"eventpay/sepa-refunds/internal/reconcile"
	"eventpay/sepa-refunds/internal/xmlutils"
)

func testDebtor() config.DebtorConfig {
	return config.DebtorConfig{
		Name:    "Test Organization",
		IBAN:    "BE68539007547034",
		BIC:     "GKCCBEBB",
		Country: "BE",
	}
}

func record(id int64, card string, amount string) models.CandidateRefundRecord {
	return models.CandidateRefundRecord{
		ID:          id,
		FirstName:   "John",
		LastName:    "Doe",
		Account:     "BE18001778394865",
		CardID:      card,
		Amount:      decimal.RequireFromString(amount),
		MatchStatus: models.MatchStatusMatched,
	}
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.DebtorConfig)
	}{
		{name: "MissingName", mutate: func(c *config.DebtorConfig) { c.Name = "" }},
		{name: "BadIBAN", mutate: func(c *config.DebtorConfig) { c.IBAN = "BE68539007547035" }},
		{name: "MissingCountry", mutate: func(c *config.DebtorConfig) { c.Country = "" }},
		{name: "BadNameCharset", mutate: func(c *config.DebtorConfig) { c.Name = "Test & Org" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debtor := testDebtor()
			tt.mutate(&debtor)
			enc, err := New(debtor, nil)
			assert.Nil(t, enc)
			var cfgErr *encodererror.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := config.GenerationOptions{InstructionPriority: "URGENT"}
	_, err := New(testDebtor(), &opts)
	assert.Error(t, err)
}

func TestGenerateEndToEnd(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	result := enc.Generate([]models.CandidateRefundRecord{record(1, "CARD001", "28.00")})

	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 1, result.TransactionCount)
	assert.True(t, decimal.RequireFromString("28.00").Equal(result.TotalAmount))
	assert.NotEmpty(t, result.MessageID)
	assert.Empty(t, result.Errors)
	assert.Contains(t, result.XMLContent, `<InstdAmt Ccy="EUR">28.00</InstdAmt>`)
	assert.Contains(t, result.XMLContent, "BE18001778394865")
	assert.Greater(t, result.Duration.Nanoseconds(), int64(0))

	agree, err := xmlutils.CheckTotalsAgree(result.XMLContent)
	require.NoError(t, err)
	assert.True(t, agree)
}

func TestGenerateAllOrNothing(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	records := []models.CandidateRefundRecord{
		record(1, "CARD001", "10.00"),
		record(2, "CARD002", "20.00"),
		record(3, "CARD003", "-5.00"), // invalid
	}

	result := enc.Generate(records)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.XMLContent, "no partial file is ever produced")
	assert.Empty(t, result.MessageID)
	assert.Zero(t, result.TransactionCount)
}

func TestGenerateEmptyBatch(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	result := enc.Generate(nil)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "batch rejected")
	assert.Empty(t, result.XMLContent)
}

func TestGenerateCarriesReconciliationWarnings(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	records := []models.CandidateRefundRecord{
		record(1, "CARD001", "15.00"),
		record(2, "CARD001", "15.00"), // duplicate card, removed
	}

	result := enc.Generate(records)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.TransactionCount)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "1 duplicate transfer(s) removed (same IBAN, amount, and card ID)", result.Warnings[0])
	assert.True(t, decimal.RequireFromString("15.00").Equal(result.TotalAmount))
}

func TestGenerateMergesSameAccount(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	records := []models.CandidateRefundRecord{
		record(1, "CARD001", "15.00"),
		record(2, "CARD002", "10.00"), // same IBAN, different card
	}

	result := enc.Generate(records)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.TransactionCount)
	assert.True(t, decimal.RequireFromString("25.00").Equal(result.TotalAmount))
	assert.Contains(t, result.XMLContent, reconcile.MergeMarker)
}

func TestGenerateRejectsOverCapMerge(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	// Both records are individually within the cap, but they share an IBAN
	// and merge into one transfer above it.
	records := []models.CandidateRefundRecord{
		record(1, "CARD001", "999999999.99"),
		record(2, "CARD002", "999999999.99"),
	}

	result := enc.Generate(records)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "merged amount exceeds the maximum of 999999999.99")
	assert.Contains(t, result.Errors[0], "1999999999.98")
	assert.Empty(t, result.XMLContent, "no partial file is ever produced")
}

func TestGenerateCarriesUpstreamWarnings(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	flagged := record(1, "CARD001", "15.00")
	flagged.MatchStatus = models.MatchStatusWarning
	flagged.MatchNotes = "matched via secondary card"

	result := enc.Generate([]models.CandidateRefundRecord{flagged})

	require.True(t, result.Success)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "matched via secondary card")
}

func TestGenerateIsRepeatable(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	records := []models.CandidateRefundRecord{record(1, "CARD001", "28.00")}

	first := enc.Generate(records)
	second := enc.Generate(records)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.Equal(t, first.TransactionCount, second.TransactionCount)
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
}

func TestGenerateCountMatchesTransactions(t *testing.T) {
	enc, err := New(testDebtor(), nil)
	require.NoError(t, err)

	records := []models.CandidateRefundRecord{
		record(1, "CARD001", "10.00"),
		{
			ID:          2,
			FirstName:   "Jane",
			LastName:    "Smith",
			Account:     "BE68539007547034",
			CardID:      "CARD002",
			Amount:      decimal.RequireFromString("20.00"),
			MatchStatus: models.MatchStatusMatched,
		},
	}

	result := enc.Generate(records)

	require.True(t, result.Success)
	assert.Equal(t, 2, result.TransactionCount)

	root, err := xmlutils.ParseString(result.XMLContent)
	require.NoError(t, err)
	ibans, err := xmlutils.ExtractAll(root, xmlutils.PathCreditorIBAN)
	require.NoError(t, err)
	assert.Len(t, ibans, result.TransactionCount)
}
