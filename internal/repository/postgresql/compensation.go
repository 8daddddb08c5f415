package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepository{db: db}
}

const structureColumns = `id, employee_id, company_id, effective_from,
	ctc, basic, hra, special_allowance, da, lta, bonus, created_at`

func scanStructure(row pgx.Row) (compensation.Structure, error) {
	var s compensation.Structure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CompanyID, &s.EffectiveFrom,
		&s.CTC, &s.Basic, &s.HRA, &s.SpecialAllowance, &s.DA, &s.LTA, &s.Bonus,
		&s.CreatedAt,
	)
	return s, err
}

func (r *compensationRepository) Create(ctx context.Context, s compensation.Structure) (compensation.Structure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensation_structures (
			id, employee_id, company_id, effective_from,
			ctc, basic, hra, special_allowance, da, lta, bonus
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + structureColumns

	created, err := scanStructure(q.QueryRow(ctx, query,
		uuid.New().String(), s.EmployeeID, s.CompanyID, s.EffectiveFrom,
		s.CTC, s.Basic, s.HRA, s.SpecialAllowance, s.DA, s.LTA, s.Bonus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_compensation_effective_from") {
			return compensation.Structure{}, compensation.ErrEffectiveFromConflict
		}
		return compensation.Structure{}, fmt.Errorf("failed to create compensation structure: %w", err)
	}

	return created, nil
}

func (r *compensationRepository) GetEffective(ctx context.Context, employeeID, companyID string, asOf time.Time) (compensation.Structure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + ` FROM compensation_structures
		WHERE employee_id = $1 AND company_id = $2 AND effective_from <= $3
		ORDER BY effective_from DESC, id DESC
		LIMIT 1`

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID, companyID, asOf))
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.Structure{}, compensation.ErrCompensationMissing
		}
		return compensation.Structure{}, fmt.Errorf("failed to get effective compensation: %w", err)
	}

	return s, nil
}

func (r *compensationRepository) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]compensation.Structure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + structureColumns + ` FROM compensation_structures
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY effective_from DESC`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation structures: %w", err)
	}
	defer rows.Close()

	var structures []compensation.Structure
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensation structure: %w", err)
		}
		structures = append(structures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return structures, nil
}
