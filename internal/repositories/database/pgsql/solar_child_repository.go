package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/billbook-app/billbook_backend/internal/apperrors"
	"github.com/billbook-app/billbook_backend/internal/core/domain"
	portsrepo "github.com/billbook-app/billbook_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSolarChildRepository persists the project child records. None of these
// operations are business-scoped; child rows carry only a project reference.
type PgxSolarChildRepository struct {
	BaseRepository
}

func newPgxSolarChildRepository(db *pgxpool.Pool) portsrepo.SolarChildRepository {
	return &PgxSolarChildRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SolarChildRepository = (*PgxSolarChildRepository)(nil)

func (r *PgxSolarChildRepository) SaveMilestone(ctx context.Context, milestone domain.ProjectMilestone) error {
	query := `
        INSERT INTO project_milestones (id, project_id, milestone_name, description, status, due_date, completion_date, amount, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		milestone.ID,
		milestone.ProjectID,
		milestone.MilestoneName,
		milestone.Description,
		milestone.Status,
		milestone.DueDate,
		milestone.CompletionDate,
		milestone.Amount,
		milestone.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save milestone: %w", err)
	}
	return nil
}

func (r *PgxSolarChildRepository) FindMilestonesByProject(ctx context.Context, projectID string, limit int) ([]domain.ProjectMilestone, error) {
	query := `
        SELECT id, project_id, milestone_name, description, status, due_date, completion_date, amount, created_at
        FROM project_milestones
        WHERE project_id = $1
        ORDER BY created_at
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones for project %s: %w", projectID, err)
	}
	defer rows.Close()

	milestones := []domain.ProjectMilestone{}
	for rows.Next() {
		var m domain.ProjectMilestone
		err := rows.Scan(&m.ID, &m.ProjectID, &m.MilestoneName, &m.Description, &m.Status, &m.DueDate, &m.CompletionDate, &m.Amount, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milestone row: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *PgxSolarChildRepository) UpdateMilestoneStatus(ctx context.Context, milestoneID string, status string, completionDate *time.Time) error {
	query := `UPDATE project_milestones SET status = $1, completion_date = COALESCE($2, completion_date) WHERE id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, status, completionDate, milestoneID)
	if err != nil {
		return fmt.Errorf("failed to update milestone %s status: %w", milestoneID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSolarChildRepository) SaveMaterialConsumption(ctx context.Context, consumption domain.MaterialConsumption) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO material_consumption (id, project_id, product_id, product_name, quantity_used, consumption_date, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err = tx.Exec(ctx, query,
		consumption.ID,
		consumption.ProjectID,
		consumption.ProductID,
		consumption.ProductName,
		consumption.QuantityUsed,
		consumption.ConsumptionDate,
		consumption.Notes,
		consumption.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save material consumption: %w", err)
	}

	decrementStock := `UPDATE products SET stock_quantity = stock_quantity - $1 WHERE id = $2;`
	if _, err := tx.Exec(ctx, decrementStock, consumption.QuantityUsed, consumption.ProductID); err != nil {
		return fmt.Errorf("failed to decrement stock for product %s: %w", consumption.ProductID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit material consumption transaction: %w", err)
	}
	return nil
}

func (r *PgxSolarChildRepository) FindMaterialsByProject(ctx context.Context, projectID string, limit int) ([]domain.MaterialConsumption, error) {
	query := `
        SELECT id, project_id, product_id, product_name, quantity_used, consumption_date, notes, created_at
        FROM material_consumption
        WHERE project_id = $1
        ORDER BY consumption_date DESC
        LIMIT $2;
    `
	rows, err := r.Pool.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials for project %s: %w", projectID, err)
	}
	defer rows.Close()

	materials := []domain.MaterialConsumption{}
	for rows.Next() {
		var m domain.MaterialConsumption
		err := rows.Scan(&m.ID, &m.ProjectID, &m.ProductID, &m.ProductName, &m.QuantityUsed, &m.ConsumptionDate, &m.Notes, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material consumption row: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *PgxSolarChildRepository) SaveDocument(ctx context.Context, document domain.GovernmentDocument) error {
	query := `
        INSERT INTO government_documents (id, project_id, document_type, document_name, document_url, document_number, issue_date, expiry_date, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		document.ID,
		document.ProjectID,
		document.DocumentType,
		document.DocumentName,
		document.DocumentURL,
		document.DocumentNumber,
		document.IssueDate,
		document.ExpiryDate,
		document.Status,
		document.Notes,
		document.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save government document: %w", err)
	}
	return nil
}

// Documents and subsidies list newest first.
const findDocumentsByProjectQuery = `
        SELECT id, project_id, document_type, document_name, document_url, document_number, issue_date, expiry_date, status, notes, created_at
        FROM government_documents
        WHERE project_id = $1
        ORDER BY created_at DESC
        LIMIT $2;
    `

func (r *PgxSolarChildRepository) FindDocumentsByProject(ctx context.Context, projectID string, limit int) ([]domain.GovernmentDocument, error) {
	rows, err := r.Pool.Query(ctx, findDocumentsByProjectQuery, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for project %s: %w", projectID, err)
	}
	defer rows.Close()

	documents := []domain.GovernmentDocument{}
	for rows.Next() {
		var d domain.GovernmentDocument
		err := rows.Scan(&d.ID, &d.ProjectID, &d.DocumentType, &d.DocumentName, &d.DocumentURL, &d.DocumentNumber, &d.IssueDate, &d.ExpiryDate, &d.Status, &d.Notes, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan government document row: %w", err)
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

func (r *PgxSolarChildRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status string) error {
	query := `UPDATE government_documents SET status = $1 WHERE id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, status, documentID)
	if err != nil {
		return fmt.Errorf("failed to update document %s status: %w", documentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSolarChildRepository) SaveSubsidy(ctx context.Context, subsidy domain.SubsidyTracking) error {
	query := `
        INSERT INTO subsidy_tracking (id, project_id, scheme_name, applied_amount, approved_amount, received_amount, application_date, approval_date, received_date, application_number, status, remarks, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		subsidy.ID,
		subsidy.ProjectID,
		subsidy.SchemeName,
		subsidy.AppliedAmount,
		subsidy.ApprovedAmount,
		subsidy.ReceivedAmount,
		subsidy.ApplicationDate,
		subsidy.ApprovalDate,
		subsidy.ReceivedDate,
		subsidy.ApplicationNumber,
		subsidy.Status,
		subsidy.Remarks,
		subsidy.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save subsidy record: %w", err)
	}
	return nil
}

const findSubsidiesByProjectQuery = `
        SELECT id, project_id, scheme_name, applied_amount, approved_amount, received_amount, application_date, approval_date, received_date, application_number, status, remarks, created_at
        FROM subsidy_tracking
        WHERE project_id = $1
        ORDER BY created_at DESC
        LIMIT $2;
    `

func (r *PgxSolarChildRepository) FindSubsidiesByProject(ctx context.Context, projectID string, limit int) ([]domain.SubsidyTracking, error) {
	rows, err := r.Pool.Query(ctx, findSubsidiesByProjectQuery, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list subsidies for project %s: %w", projectID, err)
	}
	defer rows.Close()

	subsidies := []domain.SubsidyTracking{}
	for rows.Next() {
		var s domain.SubsidyTracking
		err := rows.Scan(&s.ID, &s.ProjectID, &s.SchemeName, &s.AppliedAmount, &s.ApprovedAmount, &s.ReceivedAmount, &s.ApplicationDate, &s.ApprovalDate, &s.ReceivedDate, &s.ApplicationNumber, &s.Status, &s.Remarks, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subsidy row: %w", err)
		}
		subsidies = append(subsidies, s)
	}
	return subsidies, rows.Err()
}

func (r *PgxSolarChildRepository) UpdateSubsidyStatus(ctx context.Context, subsidyID string, update portsrepo.SubsidyStatusUpdate) error {
	query := `
        UPDATE subsidy_tracking
        SET status = $1,
            approved_amount = COALESCE($2, approved_amount),
            approval_date = COALESCE($3, approval_date),
            received_amount = COALESCE($4, received_amount),
            received_date = COALESCE($5, received_date)
        WHERE id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		update.Status,
		update.ApprovedAmount,
		update.ApprovalDate,
		update.ReceivedAmount,
		update.ReceivedDate,
		subsidyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subsidy %s status: %w", subsidyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
