// Package generate handles the payment-file generation command
package generate

import (
	"fmt"
	"os"

	"eventpay/sepa-refunds/cmd/root"
	"eventpay/sepa-refunds/internal/encoder"
	"eventpay/sepa-refunds/internal/fileutils"
	"eventpay/sepa-refunds/internal/logging"
	"eventpay/sepa-refunds/internal/records"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a SEPA payment file from refund records",
	Long: `Generate reads candidate refund records from a CSV or XLSX export,
validates and reconciles them, and writes a pain.001.001.03 credit transfer
file. Generation is all-or-nothing: any invalid record rejects the batch.`,
	Run: generateFunc,
}

func generateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input records file is required (--input)")
	}

	candidates, err := records.Load(root.SharedFlags.Input, root.Delimiter())
	if err != nil {
		root.Log.Fatalf("Failed to load records: %v", err)
	}

	opts, err := root.Cfg.GenerationOptions()
	if err != nil {
		root.Log.Fatalf("Invalid generation options: %v", err)
	}

	enc, err := encoder.New(root.Cfg.Debtor, &opts)
	if err != nil {
		root.Log.Fatalf("Invalid debtor configuration: %v", err)
	}

	result := enc.Generate(candidates)

	for _, warning := range result.Warnings {
		root.Log.Warn(warning)
	}
	if !result.Success {
		for _, msg := range result.Errors {
			root.Log.Error(msg)
		}
		root.Log.WithField(logging.FieldErrors, len(result.Errors)).Error("Refund batch rejected, no file written")
		os.Exit(1)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = fmt.Sprintf("%s.xml", result.MessageID)
	}
	if err := fileutils.WriteFile(output, []byte(result.XMLContent), 0o600); err != nil {
		root.Log.Fatalf("Failed to write payment file: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		logging.FieldOutputFile: output,
		logging.FieldMessageID:  result.MessageID,
		logging.FieldCount:      result.TransactionCount,
		logging.FieldControlSum: result.TotalAmount,
	}).Info("Payment file generated successfully!")
}
