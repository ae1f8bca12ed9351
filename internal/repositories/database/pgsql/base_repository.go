package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/billbook-app/billbook_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Rollback rolls back a transaction, ignoring the error produced when the
// transaction already completed.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		// Nothing the caller can do about it at this point.
		_ = err
	}
}

// nextSequenceNumber atomically increments the per-(business, family) counter
// and returns the formatted reference number, e.g. INV-00001. The upsert is a
// single statement, so concurrent creates for the same business serialise on
// the counter row instead of reading a stale last value. Running it inside the
// document's own transaction keeps the sequence gap-free: a rolled-back insert
// rolls the counter back with it.
func nextSequenceNumber(ctx context.Context, tx pgx.Tx, businessID string, family domain.SequenceFamily) (string, error) {
	query := `
        INSERT INTO document_sequences (business_id, family, last_value)
        VALUES ($1, $2, 1)
        ON CONFLICT (business_id, family)
        DO UPDATE SET last_value = document_sequences.last_value + 1
        RETURNING last_value;
    `
	var lastValue int64
	if err := tx.QueryRow(ctx, query, businessID, string(family)).Scan(&lastValue); err != nil {
		return "", fmt.Errorf("failed to advance %s sequence for business %s: %w", family, businessID, err)
	}
	return domain.FormatDocumentNumber(family, lastValue), nil
}
