package domain

import "fmt"

// SequenceFamily identifies a document family with its own per-business
// monotonically incrementing reference number sequence.
type SequenceFamily string

const (
	SequenceInvoice SequenceFamily = "invoice"
	SequenceExpense SequenceFamily = "expense"
	SequencePayment SequenceFamily = "payment"
	SequenceProject SequenceFamily = "project"
)

// Prefix returns the human-readable prefix used in reference numbers of this family.
func (f SequenceFamily) Prefix() string {
	switch f {
	case SequenceInvoice:
		return "INV"
	case SequenceExpense:
		return "EXP"
	case SequencePayment:
		return "PAY"
	case SequenceProject:
		return "SOLAR"
	}
	return string(f)
}

// FormatDocumentNumber renders the nth reference number of a family, e.g.
// INV-00001. Numbers are zero-padded to five digits and unbounded beyond that.
func FormatDocumentNumber(family SequenceFamily, n int64) string {
	return fmt.Sprintf("%s-%05d", family.Prefix(), n)
}
