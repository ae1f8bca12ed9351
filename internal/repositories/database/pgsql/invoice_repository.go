package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `id, invoice_number, customer_id, customer_name, business_id, invoice_date, due_date, subtotal, tax_amount, discount, total, paid_amount, balance, status, notes, created_at`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.CustomerID,
		&inv.CustomerName,
		&inv.BusinessID,
		&inv.InvoiceDate,
		&inv.DueDate,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.Discount,
		&inv.Total,
		&inv.PaidAmount,
		&inv.Balance,
		&inv.Status,
		&inv.Notes,
		&inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so item loading can
// run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadInvoiceItems(ctx context.Context, q querier, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
        SELECT product_id, product_name, quantity, price, tax_rate, discount, amount
        FROM invoice_items
        WHERE invoice_id = $1
        ORDER BY position;
    `
	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	items := []domain.InvoiceItem{}
	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.Price, &item.TaxRate, &item.Discount, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	number, err := nextSequenceNumber(ctx, tx, invoice.BusinessID, domain.SequenceInvoice)
	if err != nil {
		return err
	}
	invoice.InvoiceNumber = number

	insertInvoice := `
        INSERT INTO invoices (id, invoice_number, customer_id, customer_name, business_id, invoice_date, due_date, subtotal, tax_amount, discount, total, paid_amount, balance, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err = tx.Exec(ctx, insertInvoice,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.CustomerID,
		invoice.CustomerName,
		invoice.BusinessID,
		invoice.InvoiceDate,
		invoice.DueDate,
		invoice.Subtotal,
		invoice.TaxAmount,
		invoice.Discount,
		invoice.Total,
		invoice.PaidAmount,
		invoice.Balance,
		invoice.Status,
		invoice.Notes,
		invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	insertItem := `
        INSERT INTO invoice_items (invoice_id, position, product_id, product_name, quantity, price, tax_rate, discount, amount)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	// Stock is decremented per line without a floor check; negative stock is
	// surfaced through the low-stock report instead of rejected here.
	decrementStock := `UPDATE products SET stock_quantity = stock_quantity - $1 WHERE id = $2;`

	for i, item := range invoice.Items {
		_, err = tx.Exec(ctx, insertItem,
			invoice.ID,
			i,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.Price,
			item.TaxRate,
			item.Discount,
			item.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to save invoice item %d: %w", i, err)
		}
		if _, err = tx.Exec(ctx, decrementStock, item.Quantity, item.ProductID); err != nil {
			return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice transaction: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1;`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	items, err := loadInvoiceItems(ctx, r.Pool, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoicesByBusiness(ctx context.Context, businessID string, limit int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	return listInvoices(ctx, r.Pool, query, businessID, limit)
}

func listInvoices(ctx context.Context, q querier, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range invoices {
		items, err := loadInvoiceItems(ctx, q, invoices[i].ID)
		if err != nil {
			return nil, err
		}
		invoices[i].Items = items
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, businessID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Items go first; the FK has no cascade.
	deleteItems := `DELETE FROM invoice_items WHERE invoice_id = (SELECT id FROM invoices WHERE id = $1 AND business_id = $2);`
	if _, err := tx.Exec(ctx, deleteItems, invoiceID, businessID); err != nil {
		return fmt.Errorf("failed to delete items of invoice %s: %w", invoiceID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND business_id = $2;`, invoiceID, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice delete transaction: %w", err)
	}
	return nil
}
