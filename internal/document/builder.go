package document

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"eventpay/sepa-refunds/internal/config"
	"eventpay/sepa-refunds/internal/currencyutils"
	"eventpay/sepa-refunds/internal/dateutils"
	"eventpay/sepa-refunds/internal/iban"
	"eventpay/sepa-refunds/internal/identifier"
	"eventpay/sepa-refunds/internal/models"
	"eventpay/sepa-refunds/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Builder assembles pain.001.001.03 documents for one debtor configuration.
// The configuration is assumed valid: the encoder validates it at
// construction time.
type Builder struct {
	debtor  config.DebtorConfig
	options config.GenerationOptions
	ids     *identifier.Generator

	// Now is injectable for tests.
	Now func() time.Time
}

// Output is the assembled document with the values the generation result
// reports.
type Output struct {
	XMLContent string
	MessageID  string
	ControlSum decimal.Decimal
	Count      int
}

// New creates a Builder for the given debtor and normalized options.
func New(debtor config.DebtorConfig, options config.GenerationOptions, ids *identifier.Generator) *Builder {
	return &Builder{
		debtor:  debtor,
		options: options,
		ids:     ids,
		Now:     time.Now,
	}
}

// Build assembles the document for the reconciled transactions. The control
// sum and transaction count are computed once and stamped identically into
// the group header and the payment information block; banks check that the
// two agree.
func (b *Builder) Build(transactions []models.ReconciledTransaction) (Output, error) {
	if len(transactions) == 0 {
		return Output{}, fmt.Errorf("cannot build a payment file without transactions")
	}

	now := b.Now()
	messageID := b.ids.MessageID()

	controlSum := decimal.Zero
	for _, tx := range transactions {
		controlSum = controlSum.Add(tx.Amount)
	}
	controlSumStr := currencyutils.FormatAmount(controlSum)
	count := len(transactions)

	batchBooking := true
	if b.options.BatchBooking != nil {
		batchBooking = *b.options.BatchBooking
	}

	doc := Document{
		Xmlns: Namespace,
		CstmrCdtTrfInitn: Initiation{
			GrpHdr: GroupHeader{
				MsgID:    messageID,
				CreDtTm:  dateutils.FormatDateTime(now),
				NbOfTxs:  count,
				CtrlSum:  controlSumStr,
				InitgPty: b.initiatingParty(),
			},
			PmtInf: PaymentInformation{
				PmtInfID:    b.ids.PaymentInfoID(),
				PmtMtd:      PaymentMethodTransfer,
				BtchBookg:   batchBooking,
				NbOfTxs:     count,
				CtrlSum:     controlSumStr,
				PmtTpInf: PaymentTypeInfo{
					InstrPrty: b.options.InstructionPriority,
					SvcLvl:    Code{Cd: b.options.ServiceLevel},
					CtgyPurp:  Code{Cd: b.options.CategoryPurpose},
				},
				ReqdExctnDt: dateutils.FormatDate(b.options.ExecutionDateOrDefault(now)),
				Dbtr:        b.debtorParty(),
				DbtrAcct: DebtorAccount{
					ID:  AccountID{IBAN: iban.Normalize(b.debtor.IBAN)},
					Ccy: Currency,
				},
				DbtrAgt:     Agent{FinInstnID: FinInstitution{BIC: b.debtor.BIC}},
				ChrgBr:      b.options.ChargeBearer,
				CdtTrfTxInf: b.creditTransfers(transactions),
			},
		},
	}

	marshalled, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Output{}, fmt.Errorf("failed to marshal pain.001 document: %w", err)
	}

	log.WithFields(logrus.Fields{
		"message_id":   messageID,
		"transactions": count,
		"control_sum":  controlSumStr,
	}).Info("Payment document assembled")

	return Output{
		XMLContent: xml.Header + string(marshalled),
		MessageID:  messageID,
		ControlSum: controlSum,
		Count:      count,
	}, nil
}

// initiatingParty builds the group header party: name plus the optional
// organization identifier, never a postal address.
func (b *Builder) initiatingParty() Party {
	return Party{
		Nm: textutils.Sanitize(b.debtor.Name),
		ID: b.organisationID(),
	}
}

// debtorParty builds the payment information debtor block. The postal
// address appears only when at least one address line was configured.
func (b *Builder) debtorParty() Party {
	party := Party{
		Nm: textutils.Sanitize(b.debtor.Name),
		ID: b.organisationID(),
	}

	if len(b.debtor.AddressLines) > 0 {
		address := &PostalAddress{Ctry: b.debtor.Country}
		for _, line := range b.debtor.AddressLines {
			if sanitized := textutils.Sanitize(line); sanitized != "" {
				address.AdrLine = append(address.AdrLine, sanitized)
			}
		}
		if len(address.AdrLine) > 0 {
			party.PstlAdr = address
		}
	}
	return party
}

// organisationID returns the Id block when an organization identifier was
// configured, nil otherwise.
func (b *Builder) organisationID() *PartyID {
	if b.debtor.OrgID == "" {
		return nil
	}
	return &PartyID{
		OrgID: OrganisationID{
			Othr: OtherID{
				ID:   b.debtor.OrgID,
				Issr: b.debtor.OrgIssuer,
			},
		},
	}
}

// creditTransfers renders one CdtTrfTxInf per reconciled transaction,
// preserving their order.
func (b *Builder) creditTransfers(transactions []models.ReconciledTransaction) []CreditTransferTx {
	transfers := make([]CreditTransferTx, 0, len(transactions))
	for _, tx := range transactions {
		transfers = append(transfers, CreditTransferTx{
			PmtID: PaymentID{
				InstrID:    b.ids.InstructionID(tx.RecordID),
				EndToEndID: b.ids.EndToEndID(tx.RecordID),
			},
			Amt: TransferAmount{
				InstdAmt: InstructedAmount{
					Ccy:   Currency,
					Value: currencyutils.FormatAmount(tx.Amount),
				},
			},
			Cdtr:     Party{Nm: textutils.Sanitize(tx.Name)},
			CdtrAcct: CreditorAccount{ID: AccountID{IBAN: tx.IBAN}},
			RmtInf:   RemittanceInfo{Ustrd: textutils.Sanitize(tx.RemittanceInfo)},
		})
	}
	return transfers
}
