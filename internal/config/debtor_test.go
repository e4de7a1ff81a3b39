package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpay/sepa-refunds/internal/encodererror"
)

func validDebtor() DebtorConfig {
	return DebtorConfig{
		Name:    "Test Organization",
		IBAN:    "BE68539007547034",
		BIC:     "GKCCBEBB",
		Country: "BE",
	}
}

func TestDebtorValidate(t *testing.T) {
	assert.NoError(t, validDebtor().Validate())
}

func TestDebtorValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DebtorConfig)
		field  string
	}{
		{
			name:   "MissingName",
			mutate: func(c *DebtorConfig) { c.Name = "" },
			field:  "name",
		},
		{
			name:   "MissingIBAN",
			mutate: func(c *DebtorConfig) { c.IBAN = "" },
			field:  "iban",
		},
		{
			name:   "BadIBANChecksum",
			mutate: func(c *DebtorConfig) { c.IBAN = "BE68539007547035" },
			field:  "iban",
		},
		{
			name:   "ForeignIBAN",
			mutate: func(c *DebtorConfig) { c.IBAN = "FR1420041010050500013M02606" },
			field:  "iban",
		},
		{
			name:   "MissingCountry",
			mutate: func(c *DebtorConfig) { c.Country = "" },
			field:  "country",
		},
		{
			name:   "DisallowedCharactersInName",
			mutate: func(c *DebtorConfig) { c.Name = "Test & Organization" },
			field:  "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debtor := validDebtor()
			tt.mutate(&debtor)
			err := debtor.Validate()
			require.Error(t, err)
			var cfgErr *encodererror.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, PriorityNormal, opts.InstructionPriority)
	assert.Equal(t, ServiceLevelSEPA, opts.ServiceLevel)
	assert.Equal(t, DefaultCategoryPurpose, opts.CategoryPurpose)
	assert.Equal(t, DefaultChargeBearer, opts.ChargeBearer)
	require.NotNil(t, opts.BatchBooking)
	assert.True(t, *opts.BatchBooking)
}

func TestNormalizedFillsOnlyUnsetFields(t *testing.T) {
	batch := false
	opts := GenerationOptions{
		InstructionPriority: PriorityHigh,
		BatchBooking:        &batch,
	}.Normalized()

	assert.Equal(t, PriorityHigh, opts.InstructionPriority)
	assert.Equal(t, ServiceLevelSEPA, opts.ServiceLevel)
	assert.Equal(t, DefaultCategoryPurpose, opts.CategoryPurpose)
	assert.Equal(t, DefaultChargeBearer, opts.ChargeBearer)
	require.NotNil(t, opts.BatchBooking)
	assert.False(t, *opts.BatchBooking)
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, GenerationOptions{}.Validate())
	assert.NoError(t, GenerationOptions{InstructionPriority: PriorityHigh, ServiceLevel: ServiceLevelPRPT}.Validate())
	assert.Error(t, GenerationOptions{InstructionPriority: "URGENT"}.Validate())
	assert.Error(t, GenerationOptions{ServiceLevel: "INSTANT"}.Validate())
}

func TestExecutionDateOrDefault(t *testing.T) {
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	opts := GenerationOptions{}
	assert.Equal(t, time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), opts.ExecutionDateOrDefault(now))

	explicit := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	opts.ExecutionDate = &explicit
	assert.Equal(t, explicit, opts.ExecutionDateOrDefault(now))
}
