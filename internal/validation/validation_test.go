package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpay/sepa-refunds/internal/encodererror"
	"eventpay/sepa-refunds/internal/models"
)

func validRecord(id int64) models.CandidateRefundRecord {
	return models.CandidateRefundRecord{
		ID:          id,
		FirstName:   "John",
		LastName:    "Doe",
		Account:     "BE18001778394865",
		CardID:      "CARD001",
		Amount:      decimal.RequireFromString("28.00"),
		MatchStatus: models.MatchStatusMatched,
	}
}

func TestValidateRecordsEmptyBatch(t *testing.T) {
	result := ValidateRecords(nil)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	var batchErr *encodererror.BatchError
	assert.ErrorAs(t, result.Errors[0], &batchErr)
}

func TestValidateRecordsValidBatch(t *testing.T) {
	result := ValidateRecords([]models.CandidateRefundRecord{validRecord(1), validRecord(2)})

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateRecordsFieldChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CandidateRefundRecord)
		field  string
	}{
		{
			name:   "MissingFirstName",
			mutate: func(r *models.CandidateRefundRecord) { r.FirstName = "" },
			field:  "first_name",
		},
		{
			name:   "MissingLastName",
			mutate: func(r *models.CandidateRefundRecord) { r.LastName = "" },
			field:  "last_name",
		},
		{
			name:   "MissingAccount",
			mutate: func(r *models.CandidateRefundRecord) { r.Account = "" },
			field:  "account",
		},
		{
			name:   "BadChecksum",
			mutate: func(r *models.CandidateRefundRecord) { r.Account = "BE68539007547035" },
			field:  "account",
		},
		{
			name:   "ZeroAmount",
			mutate: func(r *models.CandidateRefundRecord) { r.Amount = decimal.Zero },
			field:  "amount",
		},
		{
			name:   "NegativeAmount",
			mutate: func(r *models.CandidateRefundRecord) { r.Amount = decimal.RequireFromString("-5") },
			field:  "amount",
		},
		{
			name:   "AmountOverCap",
			mutate: func(r *models.CandidateRefundRecord) { r.Amount = decimal.RequireFromString("1000000000") },
			field:  "amount",
		},
		{
			name:   "DisallowedNameCharacters",
			mutate: func(r *models.CandidateRefundRecord) { r.FirstName = "J@hn" },
			field:  "name",
		},
		{
			name: "NameTooLong",
			mutate: func(r *models.CandidateRefundRecord) {
				r.FirstName = strings.Repeat("A", 40)
				r.LastName = strings.Repeat("B", 40)
			},
			field: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord(7)
			tt.mutate(&record)
			result := ValidateRecords([]models.CandidateRefundRecord{record})

			assert.False(t, result.IsValid)
			require.NotEmpty(t, result.Errors)

			found := false
			for _, err := range result.Errors {
				var fieldErr *encodererror.FieldError
				if assert.ErrorAs(t, err, &fieldErr) {
					assert.Equal(t, int64(7), fieldErr.RecordID)
					if fieldErr.Field == tt.field {
						found = true
					}
				}
			}
			assert.True(t, found, "expected an error on field %q", tt.field)
		})
	}
}

func TestValidateRecordsCollectsAllViolations(t *testing.T) {
	// One record with several broken fields, one fully valid, one more
	// broken: nothing short-circuits.
	broken := validRecord(1)
	broken.FirstName = ""
	broken.Account = "nope"
	broken.Amount = decimal.Zero

	alsoBroken := validRecord(3)
	alsoBroken.LastName = ""

	result := ValidateRecords([]models.CandidateRefundRecord{broken, validRecord(2), alsoBroken})

	assert.False(t, result.IsValid)
	assert.Len(t, result.Errors, 4)

	ids := map[int64]bool{}
	for _, err := range result.Errors {
		var fieldErr *encodererror.FieldError
		require.ErrorAs(t, err, &fieldErr)
		ids[fieldErr.RecordID] = true
	}
	assert.True(t, ids[1])
	assert.True(t, ids[3])
	assert.False(t, ids[2])
}

func TestValidateRecordsSurfacesUpstreamWarnings(t *testing.T) {
	flagged := validRecord(5)
	flagged.MatchStatus = models.MatchStatusWarning
	flagged.MatchNotes = "matched on secondary card"

	result := ValidateRecords([]models.CandidateRefundRecord{validRecord(1), flagged})

	assert.True(t, result.IsValid, "warnings must not fail the batch")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "record 5")
	assert.Contains(t, result.Warnings[0], "matched on secondary card")
}

func TestErrorStrings(t *testing.T) {
	result := ValidateRecords(nil)
	strs := result.ErrorStrings()
	require.Len(t, strs, 1)
	assert.Contains(t, strs[0], "batch rejected")

	assert.Nil(t, Result{}.ErrorStrings())
}

func TestTotalAmount(t *testing.T) {
	records := []models.CandidateRefundRecord{validRecord(1), validRecord(2)}
	assert.True(t, decimal.RequireFromString("56.00").Equal(TotalAmount(records)))
}
