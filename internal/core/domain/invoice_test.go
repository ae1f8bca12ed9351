package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeInvoiceTotals(t *testing.T) {
	items := []InvoiceItem{
		{Amount: dec("100"), TaxRate: dec("18")},
		{Amount: dec("50"), TaxRate: dec("12")},
	}

	subtotal, taxAmount, total := ComputeInvoiceTotals(items, decimal.Zero)

	assert.True(t, subtotal.Equal(dec("150")), "subtotal = %s", subtotal)
	assert.True(t, taxAmount.Equal(dec("24")), "tax = %s", taxAmount)
	assert.True(t, total.Equal(dec("174")), "total = %s", total)
}

func TestComputeInvoiceTotalsWithDiscount(t *testing.T) {
	items := []InvoiceItem{{Amount: dec("200"), TaxRate: dec("10")}}

	subtotal, taxAmount, total := ComputeInvoiceTotals(items, dec("20"))

	assert.True(t, subtotal.Equal(dec("200")))
	assert.True(t, taxAmount.Equal(dec("20")))
	assert.True(t, total.Equal(dec("200")))
}

func TestComputeInvoiceTotalsEmpty(t *testing.T) {
	subtotal, taxAmount, total := ComputeInvoiceTotals(nil, decimal.Zero)

	assert.True(t, subtotal.IsZero())
	assert.True(t, taxAmount.IsZero())
	assert.True(t, total.IsZero())
}

func TestDeriveInvoiceStatus(t *testing.T) {
	tests := []struct {
		name    string
		paid    string
		balance string
		want    InvoiceStatus
	}{
		{"untouched", "0", "174", InvoiceStatusUnpaid},
		{"partially settled", "74", "100", InvoiceStatusPartial},
		{"fully settled", "174", "0", InvoiceStatusPaid},
		{"over-paid", "200", "-26", InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveInvoiceStatus(dec(tt.paid), dec(tt.balance))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyPayment(t *testing.T) {
	inv := Invoice{
		Total:      dec("174"),
		PaidAmount: decimal.Zero,
		Balance:    dec("174"),
		Status:     InvoiceStatusUnpaid,
	}

	inv.ApplyPayment(dec("74"))
	assert.True(t, inv.PaidAmount.Equal(dec("74")))
	assert.True(t, inv.Balance.Equal(dec("100")))
	assert.Equal(t, InvoiceStatusPartial, inv.Status)

	inv.ApplyPayment(dec("100"))
	assert.True(t, inv.PaidAmount.Equal(dec("174")))
	assert.True(t, inv.Balance.IsZero())
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
}

func TestApplyPaymentOverpayment(t *testing.T) {
	inv := Invoice{Total: dec("100"), Balance: dec("100"), Status: InvoiceStatusUnpaid}

	inv.ApplyPayment(dec("150"))

	assert.True(t, inv.Balance.Equal(dec("-50")))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
}
