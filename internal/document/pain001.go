// Package document assembles the ISO 20022 pain.001.001.03 customer credit
// transfer initiation XML from reconciled transactions.
package document

import "encoding/xml"

// Namespace is the pain.001.001.03 schema URN banks validate against.
const Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

// Fixed codes of a SEPA credit transfer batch.
const (
	PaymentMethodTransfer = "TRF"
	Currency              = "EUR"
)

// Document is the root element of a pain.001.001.03 message. Element order
// follows the schema: banks reject files whose elements are reordered.
type Document struct {
	XMLName          xml.Name   `xml:"Document"`
	Xmlns            string     `xml:"xmlns,attr"`
	CstmrCdtTrfInitn Initiation `xml:"CstmrCdtTrfInitn"`
}

// Initiation holds the group header and the single payment information
// block this encoder produces per file.
type Initiation struct {
	GrpHdr GroupHeader        `xml:"GrpHdr"`
	PmtInf PaymentInformation `xml:"PmtInf"`
}

// GroupHeader carries the message identification and the batch totals.
// NbOfTxs and CtrlSum must equal their PaymentInformation counterparts.
type GroupHeader struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  int    `xml:"NbOfTxs"`
	CtrlSum  string `xml:"CtrlSum"`
	InitgPty Party  `xml:"InitgPty"`
}

// PaymentInformation is the debtor-side batch block.
type PaymentInformation struct {
	PmtInfID    string             `xml:"PmtInfId"`
	PmtMtd      string             `xml:"PmtMtd"`
	BtchBookg   bool               `xml:"BtchBookg"`
	NbOfTxs     int                `xml:"NbOfTxs"`
	CtrlSum     string             `xml:"CtrlSum"`
	PmtTpInf    PaymentTypeInfo    `xml:"PmtTpInf"`
	ReqdExctnDt string             `xml:"ReqdExctnDt"`
	Dbtr        Party              `xml:"Dbtr"`
	DbtrAcct    DebtorAccount      `xml:"DbtrAcct"`
	DbtrAgt     Agent              `xml:"DbtrAgt"`
	ChrgBr      string             `xml:"ChrgBr"`
	CdtTrfTxInf []CreditTransferTx `xml:"CdtTrfTxInf"`
}

// PaymentTypeInfo carries the priority and service level codes.
type PaymentTypeInfo struct {
	InstrPrty string `xml:"InstrPrty"`
	SvcLvl    Code   `xml:"SvcLvl"`
	CtgyPurp  Code   `xml:"CtgyPurp"`
}

// Code wraps a bare Cd element.
type Code struct {
	Cd string `xml:"Cd"`
}

// Party is a named party with optional postal address and organization
// identification. The group header initiating party never carries an
// address.
type Party struct {
	Nm      string         `xml:"Nm"`
	PstlAdr *PostalAddress `xml:"PstlAdr,omitempty"`
	ID      *PartyID       `xml:"Id,omitempty"`
}

// PostalAddress holds the country and free-form address lines.
type PostalAddress struct {
	Ctry    string   `xml:"Ctry"`
	AdrLine []string `xml:"AdrLine"`
}

// PartyID wraps the organization identifier block.
type PartyID struct {
	OrgID OrganisationID `xml:"OrgId"`
}

// OrganisationID wraps the Othr identifier element.
type OrganisationID struct {
	Othr OtherID `xml:"Othr"`
}

// OtherID is an organization identifier with its optional issuer.
type OtherID struct {
	ID   string `xml:"Id"`
	Issr string `xml:"Issr,omitempty"`
}

// DebtorAccount is the debited account with its fixed currency.
type DebtorAccount struct {
	ID  AccountID `xml:"Id"`
	Ccy string    `xml:"Ccy"`
}

// AccountID wraps an IBAN.
type AccountID struct {
	IBAN string `xml:"IBAN"`
}

// Agent wraps the financial institution BIC.
type Agent struct {
	FinInstnID FinInstitution `xml:"FinInstnId"`
}

// FinInstitution carries the BIC of a financial institution.
type FinInstitution struct {
	BIC string `xml:"BIC"`
}

// CreditTransferTx is one outgoing transfer.
type CreditTransferTx struct {
	PmtID    PaymentID       `xml:"PmtId"`
	Amt      TransferAmount  `xml:"Amt"`
	Cdtr     Party           `xml:"Cdtr"`
	CdtrAcct CreditorAccount `xml:"CdtrAcct"`
	RmtInf   RemittanceInfo  `xml:"RmtInf"`
}

// PaymentID carries the instruction and end-to-end references.
type PaymentID struct {
	InstrID    string `xml:"InstrId"`
	EndToEndID string `xml:"EndToEndId"`
}

// TransferAmount wraps the instructed amount.
type TransferAmount struct {
	InstdAmt InstructedAmount `xml:"InstdAmt"`
}

// InstructedAmount is a two-decimal amount with its currency attribute.
type InstructedAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

// CreditorAccount is the destination account.
type CreditorAccount struct {
	ID AccountID `xml:"Id"`
}

// RemittanceInfo carries the unstructured remittance text.
type RemittanceInfo struct {
	Ustrd string `xml:"Ustrd"`
}
