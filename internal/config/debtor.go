package config

import (
	"time"

	"eventpay/sepa-refunds/internal/dateutils"
	"eventpay/sepa-refunds/internal/encodererror"
	"eventpay/sepa-refunds/internal/iban"
	"eventpay/sepa-refunds/internal/textutils"
)

// Instruction priorities accepted by the payment type information block.
const (
	PriorityNormal = "NORM"
	PriorityHigh   = "HIGH"
)

// Service levels accepted by the payment type information block.
const (
	ServiceLevelSEPA = "SEPA"
	ServiceLevelPRPT = "PRPT"
)

// Defaults for the remaining payment type codes.
const (
	DefaultCategoryPurpose = "SUPP"
	DefaultChargeBearer    = "SLEV"
)

// DebtorConfig identifies the paying organization. It is supplied once at
// encoder construction, validated fail-fast, and never changes afterwards.
type DebtorConfig struct {
	Name         string   `mapstructure:"name" yaml:"name"`
	IBAN         string   `mapstructure:"iban" yaml:"iban"`
	BIC          string   `mapstructure:"bic" yaml:"bic"`
	AddressLines []string `mapstructure:"address_lines" yaml:"address_lines,omitempty"`
	Country      string   `mapstructure:"country" yaml:"country"`
	OrgID        string   `mapstructure:"org_id" yaml:"org_id,omitempty"`
	OrgIssuer    string   `mapstructure:"org_issuer" yaml:"org_issuer,omitempty"`
}

// Validate checks the debtor configuration and returns a ConfigError for
// the first invalid field found. A DebtorConfig that fails here must never
// reach the document builder.
func (c DebtorConfig) Validate() error {
	if c.Name == "" {
		return &encodererror.ConfigError{Field: "name", Reason: "debtor name is required"}
	}
	if c.IBAN == "" {
		return &encodererror.ConfigError{Field: "iban", Reason: "debtor IBAN is required"}
	}
	if !iban.Validate(c.IBAN) {
		return &encodererror.ConfigError{Field: "iban", Reason: "debtor IBAN failed structural or checksum validation"}
	}
	if c.Country == "" {
		return &encodererror.ConfigError{Field: "country", Reason: "debtor country is required"}
	}
	if !textutils.IsAllowed(c.Name) {
		return &encodererror.ConfigError{Field: "name", Reason: "debtor name contains characters outside the allowed set"}
	}
	return nil
}

// GenerationOptions tunes the generated payment file. Zero values are
// replaced by the SEPA defaults through Normalized.
type GenerationOptions struct {
	MessageIDPrefix     string     `mapstructure:"message_id_prefix" yaml:"message_id_prefix,omitempty"`
	PaymentIDPrefix     string     `mapstructure:"payment_id_prefix" yaml:"payment_id_prefix,omitempty"`
	InstructionPriority string     `mapstructure:"instruction_priority" yaml:"instruction_priority,omitempty"`
	ServiceLevel        string     `mapstructure:"service_level" yaml:"service_level,omitempty"`
	CategoryPurpose     string     `mapstructure:"category_purpose" yaml:"category_purpose,omitempty"`
	ChargeBearer        string     `mapstructure:"charge_bearer" yaml:"charge_bearer,omitempty"`
	BatchBooking        *bool      `mapstructure:"batch_booking" yaml:"batch_booking,omitempty"`
	ExecutionDate       *time.Time `mapstructure:"-" yaml:"-"`
}

// DefaultOptions returns the options used when none are supplied:
// NORM priority, SEPA service level, SUPP category purpose, SLEV charge
// bearer, batch booking enabled, execution date next calendar day.
func DefaultOptions() GenerationOptions {
	batch := true
	return GenerationOptions{
		InstructionPriority: PriorityNormal,
		ServiceLevel:        ServiceLevelSEPA,
		CategoryPurpose:     DefaultCategoryPurpose,
		ChargeBearer:        DefaultChargeBearer,
		BatchBooking:        &batch,
	}
}

// Normalized returns a copy with every unset field replaced by its default.
func (o GenerationOptions) Normalized() GenerationOptions {
	defaults := DefaultOptions()
	if o.InstructionPriority == "" {
		o.InstructionPriority = defaults.InstructionPriority
	}
	if o.ServiceLevel == "" {
		o.ServiceLevel = defaults.ServiceLevel
	}
	if o.CategoryPurpose == "" {
		o.CategoryPurpose = defaults.CategoryPurpose
	}
	if o.ChargeBearer == "" {
		o.ChargeBearer = defaults.ChargeBearer
	}
	if o.BatchBooking == nil {
		o.BatchBooking = defaults.BatchBooking
	}
	return o
}

// Validate rejects option values the pain.001 schema would refuse.
func (o GenerationOptions) Validate() error {
	switch o.InstructionPriority {
	case "", PriorityNormal, PriorityHigh:
	default:
		return &encodererror.ConfigError{Field: "instruction_priority", Reason: "must be NORM or HIGH"}
	}
	switch o.ServiceLevel {
	case "", ServiceLevelSEPA, ServiceLevelPRPT:
	default:
		return &encodererror.ConfigError{Field: "service_level", Reason: "must be SEPA or PRPT"}
	}
	return nil
}

// ExecutionDateOrDefault resolves the requested execution date, falling
// back to the next calendar day after now.
func (o GenerationOptions) ExecutionDateOrDefault(now time.Time) time.Time {
	if o.ExecutionDate != nil {
		return *o.ExecutionDate
	}
	return dateutils.DefaultExecutionDate(now)
}
