package service

import "github.com/gofrs/uuid/v5"

// RawReceipt holds the entity strings an OCR provider extracted from a receipt.
type RawReceipt struct {
	Date        string
	Amount      string
	Description string
	Category    string
}

// NormalizedReceipt is a RawReceipt in canonical form. Date is empty when it
// could not be parsed and Amount is empty when it could not be normalized.
type NormalizedReceipt struct {
	Date        string
	Amount      string
	Description string
	Warnings    []string
}

// SavedReceipt is the outcome of saving a receipt as a transaction.
type SavedReceipt struct {
	TransactionID uuid.UUID
	Receipt       NormalizedReceipt
}
