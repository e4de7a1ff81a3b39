// Package validate handles the record and IBAN validation commands
package validate

import (
	"os"

	"eventpay/sepa-refunds/cmd/root"
	"eventpay/sepa-refunds/internal/iban"
	"eventpay/sepa-refunds/internal/logging"
	"eventpay/sepa-refunds/internal/records"
	"eventpay/sepa-refunds/internal/validation"

	"github.com/spf13/cobra"
)

// IBAN is the single account number to check instead of a records file
var IBAN string

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate refund records without generating a file",
	Long: `Validate runs the same record checks as generate and reports every
violation, but never writes a payment file. With --iban it checks a single
account number's checksum instead.`,
	Run: validateFunc,
}

func init() {
	Cmd.Flags().StringVar(&IBAN, "iban", "", "Check a single IBAN checksum")
}

func validateFunc(cmd *cobra.Command, args []string) {
	if IBAN != "" {
		if !iban.Validate(IBAN) {
			root.Log.Errorf("IBAN %s is not valid", iban.Normalize(IBAN))
			os.Exit(1)
		}
		root.Log.Infof("IBAN %s is valid", iban.Normalize(IBAN))
		return
	}

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input records file is required (--input or --iban)")
	}

	candidates, err := records.Load(root.SharedFlags.Input, root.Delimiter())
	if err != nil {
		root.Log.Fatalf("Failed to load records: %v", err)
	}

	result := validation.ValidateRecords(candidates)

	for _, warning := range result.Warnings {
		root.Log.Warn(warning)
	}
	if !result.IsValid {
		for _, msg := range result.ErrorStrings() {
			root.Log.Error(msg)
		}
		root.Log.WithField(logging.FieldErrors, len(result.Errors)).Error("Refund batch is not valid")
		os.Exit(1)
	}

	root.Log.WithField(logging.FieldCount, len(candidates)).Info("All refund records are valid")
}
