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

type PgxSolarProjectRepository struct {
	BaseRepository
}

func newPgxSolarProjectRepository(db *pgxpool.Pool) portsrepo.SolarProjectRepository {
	return &PgxSolarProjectRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SolarProjectRepository = (*PgxSolarProjectRepository)(nil)

const solarProjectColumns = `id, project_number, customer_id, customer_name, business_id, project_name, site_address, system_capacity_kw, panel_type, panel_quantity, inverter_type, inverter_quantity, estimated_cost, actual_cost, subsidy_amount, subsidy_status, discom_name, consumer_number, installation_status, start_date, completion_date, notes, created_at`

func scanSolarProject(row pgx.Row) (*domain.SolarProject, error) {
	var p domain.SolarProject
	err := row.Scan(
		&p.ID,
		&p.ProjectNumber,
		&p.CustomerID,
		&p.CustomerName,
		&p.BusinessID,
		&p.ProjectName,
		&p.SiteAddress,
		&p.SystemCapacityKW,
		&p.PanelType,
		&p.PanelQuantity,
		&p.InverterType,
		&p.InverterQuantity,
		&p.EstimatedCost,
		&p.ActualCost,
		&p.SubsidyAmount,
		&p.SubsidyStatus,
		&p.DiscomName,
		&p.ConsumerNumber,
		&p.InstallationStatus,
		&p.StartDate,
		&p.CompletionDate,
		&p.Notes,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxSolarProjectRepository) SaveProject(ctx context.Context, project *domain.SolarProject) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	number, err := nextSequenceNumber(ctx, tx, project.BusinessID, domain.SequenceProject)
	if err != nil {
		return err
	}
	project.ProjectNumber = number

	query := `
        INSERT INTO solar_projects (id, project_number, customer_id, customer_name, business_id, project_name, site_address, system_capacity_kw, panel_type, panel_quantity, inverter_type, inverter_quantity, estimated_cost, actual_cost, subsidy_amount, subsidy_status, discom_name, consumer_number, installation_status, start_date, completion_date, notes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
    `
	_, err = tx.Exec(ctx, query,
		project.ID,
		project.ProjectNumber,
		project.CustomerID,
		project.CustomerName,
		project.BusinessID,
		project.ProjectName,
		project.SiteAddress,
		project.SystemCapacityKW,
		project.PanelType,
		project.PanelQuantity,
		project.InverterType,
		project.InverterQuantity,
		project.EstimatedCost,
		project.ActualCost,
		project.SubsidyAmount,
		project.SubsidyStatus,
		project.DiscomName,
		project.ConsumerNumber,
		project.InstallationStatus,
		project.StartDate,
		project.CompletionDate,
		project.Notes,
		project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save solar project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit solar project transaction: %w", err)
	}
	return nil
}

func (r *PgxSolarProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.SolarProject, error) {
	query := `SELECT ` + solarProjectColumns + ` FROM solar_projects WHERE id = $1;`
	project, err := scanSolarProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find solar project by ID %s: %w", projectID, err)
	}
	return project, nil
}

func (r *PgxSolarProjectRepository) FindProjectsByBusiness(ctx context.Context, businessID string, limit int) ([]domain.SolarProject, error) {
	query := `SELECT ` + solarProjectColumns + ` FROM solar_projects WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`
	return listSolarProjects(ctx, r.Pool, query, businessID, limit)
}

func listSolarProjects(ctx context.Context, q querier, query string, args ...any) ([]domain.SolarProject, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solar projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.SolarProject{}
	for rows.Next() {
		project, err := scanSolarProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solar project row: %w", err)
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *PgxSolarProjectRepository) UpdateProject(ctx context.Context, project domain.SolarProject) error {
	query := `
        UPDATE solar_projects
        SET project_name = $1, site_address = $2, system_capacity_kw = $3, panel_type = $4, panel_quantity = $5,
            inverter_type = $6, inverter_quantity = $7, estimated_cost = $8, actual_cost = $9, subsidy_amount = $10,
            subsidy_status = $11, discom_name = $12, consumer_number = $13, installation_status = $14,
            start_date = $15, completion_date = $16, notes = $17
        WHERE id = $18 AND business_id = $19;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		project.ProjectName,
		project.SiteAddress,
		project.SystemCapacityKW,
		project.PanelType,
		project.PanelQuantity,
		project.InverterType,
		project.InverterQuantity,
		project.EstimatedCost,
		project.ActualCost,
		project.SubsidyAmount,
		project.SubsidyStatus,
		project.DiscomName,
		project.ConsumerNumber,
		project.InstallationStatus,
		project.StartDate,
		project.CompletionDate,
		project.Notes,
		project.ID,
		project.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update solar project %s: %w", project.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSolarProjectRepository) DeleteProject(ctx context.Context, projectID string, businessID string) error {
	query := `DELETE FROM solar_projects WHERE id = $1 AND business_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, projectID, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete solar project %s: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
