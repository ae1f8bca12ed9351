package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

const paymentColumns = `id, payment_number, invoice_id, customer_id, business_id, amount, payment_date, payment_method, reference, notes, created_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID,
		&p.PaymentNumber,
		&p.InvoiceID,
		&p.CustomerID,
		&p.BusinessID,
		&p.Amount,
		&p.PaymentDate,
		&p.PaymentMethod,
		&p.Reference,
		&p.Notes,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	number, err := nextSequenceNumber(ctx, tx, payment.BusinessID, domain.SequencePayment)
	if err != nil {
		return err
	}
	payment.PaymentNumber = number

	insertPayment := `
        INSERT INTO payments (id, payment_number, invoice_id, customer_id, business_id, amount, payment_date, payment_method, reference, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err = tx.Exec(ctx, insertPayment,
		payment.ID,
		payment.PaymentNumber,
		payment.InvoiceID,
		payment.CustomerID,
		payment.BusinessID,
		payment.Amount,
		payment.PaymentDate,
		payment.PaymentMethod,
		payment.Reference,
		payment.Notes,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	if payment.InvoiceID != nil {
		if err := r.applyToInvoice(ctx, tx, *payment.InvoiceID, payment); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment transaction: %w", err)
	}
	return nil
}

// applyToInvoice recomputes the invoice's derived fields under a row lock. A
// payment referencing a missing invoice is still recorded; the reconciliation
// step is simply skipped.
func (r *PgxPaymentRepository) applyToInvoice(ctx context.Context, tx pgx.Tx, invoiceID string, payment *domain.Payment) error {
	lockQuery := `SELECT total, paid_amount FROM invoices WHERE id = $1 FOR UPDATE;`
	var invoice domain.Invoice
	err := tx.QueryRow(ctx, lockQuery, invoiceID).Scan(&invoice.Total, &invoice.PaidAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to lock invoice %s for payment: %w", invoiceID, err)
	}

	invoice.ApplyPayment(payment.Amount)

	updateQuery := `UPDATE invoices SET paid_amount = $1, balance = $2, status = $3 WHERE id = $4;`
	if _, err := tx.Exec(ctx, updateQuery, invoice.PaidAmount, invoice.Balance, invoice.Status, invoiceID); err != nil {
		return fmt.Errorf("failed to apply payment to invoice %s: %w", invoiceID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE business_id = $1 ORDER BY payment_date DESC LIMIT $2;`
	rows, err := r.Pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for business %s: %w", businessID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}
