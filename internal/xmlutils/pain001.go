package xmlutils

// XPath expressions for the elements of a pain.001.001.03 document that
// are checked after generation.
const (
	PathGroupMessageID   = "/Document/CstmrCdtTrfInitn/GrpHdr/MsgId"
	PathGroupCount       = "/Document/CstmrCdtTrfInitn/GrpHdr/NbOfTxs"
	PathGroupControlSum  = "/Document/CstmrCdtTrfInitn/GrpHdr/CtrlSum"
	PathPaymentCount     = "/Document/CstmrCdtTrfInitn/PmtInf/NbOfTxs"
	PathPaymentControl   = "/Document/CstmrCdtTrfInitn/PmtInf/CtrlSum"
	PathPaymentMethod    = "/Document/CstmrCdtTrfInitn/PmtInf/PmtMtd"
	PathExecutionDate    = "/Document/CstmrCdtTrfInitn/PmtInf/ReqdExctnDt"
	PathDebtorName       = "/Document/CstmrCdtTrfInitn/PmtInf/Dbtr/Nm"
	PathDebtorIBAN       = "/Document/CstmrCdtTrfInitn/PmtInf/DbtrAcct/Id/IBAN"
	PathDebtorBIC        = "/Document/CstmrCdtTrfInitn/PmtInf/DbtrAgt/FinInstnId/BIC"
	PathInstructedAmount = "/Document/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/Amt/InstdAmt"
	PathCreditorName     = "/Document/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/Cdtr/Nm"
	PathCreditorIBAN     = "/Document/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/CdtrAcct/Id/IBAN"
	PathEndToEndID       = "/Document/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/PmtId/EndToEndId"
	PathRemittance       = "/Document/CstmrCdtTrfInitn/PmtInf/CdtTrfTxInf/RmtInf/Ustrd"
)

// CheckTotalsAgree verifies the structural invariant banks check first:
// NbOfTxs and CtrlSum must be identical in the group header and the
// payment information block.
func CheckTotalsAgree(content string) (bool, error) {
	root, err := ParseString(content)
	if err != nil {
		return false, err
	}

	grpCount, ok := ExtractOne(root, PathGroupCount)
	if !ok {
		return false, nil
	}
	pmtCount, ok := ExtractOne(root, PathPaymentCount)
	if !ok {
		return false, nil
	}
	grpSum, ok := ExtractOne(root, PathGroupControlSum)
	if !ok {
		return false, nil
	}
	pmtSum, ok := ExtractOne(root, PathPaymentControl)
	if !ok {
		return false, nil
	}

	return grpCount == pmtCount && grpSum == pmtSum, nil
}
