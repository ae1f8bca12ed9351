package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "INV-00001", FormatDocumentNumber(SequenceInvoice, 1))
	assert.Equal(t, "EXP-00042", FormatDocumentNumber(SequenceExpense, 42))
	assert.Equal(t, "PAY-99999", FormatDocumentNumber(SequencePayment, 99999))
	assert.Equal(t, "SOLAR-00007", FormatDocumentNumber(SequenceProject, 7))
}

func TestFormatDocumentNumberBeyondPadding(t *testing.T) {
	// Padding is a minimum width, not a cap.
	assert.Equal(t, "INV-123456", FormatDocumentNumber(SequenceInvoice, 123456))
}
