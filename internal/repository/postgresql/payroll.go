package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

func (r *payrollRepository) GetSettings(ctx context.Context, companyID string) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, pf_rate, esi_rate, pt_rate, tds_threshold,
			   basic_percent, hra_percent, special_allowance_percent,
			   created_at, updated_at
		FROM payroll_settings
		WHERE company_id = $1
	`

	var s payroll.PayrollSettings
	err := q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PFRate, &s.ESIRate, &s.PTRate, &s.TDSThreshold,
		&s.BasicPercent, &s.HRAPercent, &s.SpecialAllowancePercent,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollSettings{}, payroll.ErrPayrollSettingsNotFound
		}
		return payroll.PayrollSettings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (
			id, company_id, pf_rate, esi_rate, pt_rate, tds_threshold,
			basic_percent, hra_percent, special_allowance_percent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id) DO UPDATE SET
			pf_rate = EXCLUDED.pf_rate,
			esi_rate = EXCLUDED.esi_rate,
			pt_rate = EXCLUDED.pt_rate,
			tds_threshold = EXCLUDED.tds_threshold,
			basic_percent = EXCLUDED.basic_percent,
			hra_percent = EXCLUDED.hra_percent,
			special_allowance_percent = EXCLUDED.special_allowance_percent,
			updated_at = NOW()
		RETURNING id, company_id, pf_rate, esi_rate, pt_rate, tds_threshold,
			basic_percent, hra_percent, special_allowance_percent,
			created_at, updated_at
	`

	var s payroll.PayrollSettings
	err := q.QueryRow(ctx, query,
		uuid.New().String(), settings.CompanyID, settings.PFRate, settings.ESIRate,
		settings.PTRate, settings.TDSThreshold,
		settings.BasicPercent, settings.HRAPercent, settings.SpecialAllowancePercent,
	).Scan(
		&s.ID, &s.CompanyID, &s.PFRate, &s.ESIRate, &s.PTRate, &s.TDSThreshold,
		&s.BasicPercent, &s.HRAPercent, &s.SpecialAllowancePercent,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollSettings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}

// ========== CYCLES ==========

const cycleColumns = `id, company_id, period_year, period_month, status,
	total_employees, total_amount, payday, created_by,
	submitted_by, submitted_at, approved_by, approved_at,
	rejected_by, rejected_at, rejection_reason, created_at, updated_at`

func scanCycle(row pgx.Row) (payroll.PayrollCycle, error) {
	var c payroll.PayrollCycle
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.PeriodYear, &c.PeriodMonth, &c.Status,
		&c.TotalEmployees, &c.TotalAmount, &c.Payday, &c.CreatedBy,
		&c.SubmittedBy, &c.SubmittedAt, &c.ApprovedBy, &c.ApprovedAt,
		&c.RejectedBy, &c.RejectedAt, &c.RejectionReason, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *payrollRepository) CreateCycle(ctx context.Context, cycle payroll.PayrollCycle) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (id, company_id, period_year, period_month, status, payday, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + cycleColumns

	created, err := scanCycle(q.QueryRow(ctx, query,
		uuid.New().String(), cycle.CompanyID, cycle.PeriodYear, cycle.PeriodMonth,
		cycle.Status, cycle.Payday, cycle.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_cycle_period") {
			return payroll.PayrollCycle{}, payroll.ErrCycleAlreadyExists
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetCycleByID(ctx context.Context, id string, companyID string) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleColumns + ` FROM payroll_cycles WHERE id = $1 AND company_id = $2`

	cycle, err := scanCycle(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to get payroll cycle: %w", err)
	}

	return cycle, nil
}

func (r *payrollRepository) GetCycleByPeriod(ctx context.Context, companyID string, year, month int) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleColumns + ` FROM payroll_cycles
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3`

	cycle, err := scanCycle(q.QueryRow(ctx, query, companyID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to get payroll cycle by period: %w", err)
	}

	return cycle, nil
}

func (r *payrollRepository) ListCycles(ctx context.Context, companyID string, filter payroll.CycleFilter) ([]payroll.PayrollCycle, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereParts := []string{"company_id = $1"}
	args := []interface{}{companyID}
	argIdx := 2

	if filter.PeriodYear != nil {
		whereParts = append(whereParts, fmt.Sprintf("period_year = $%d", argIdx))
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.PeriodMonth != nil {
		whereParts = append(whereParts, fmt.Sprintf("period_month = $%d", argIdx))
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.Status != nil {
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(whereParts, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM payroll_cycles WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll cycles: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM payroll_cycles WHERE %s
		ORDER BY period_year DESC, period_month DESC
		LIMIT $%d OFFSET $%d`, cycleColumns, where, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll cycles: %w", err)
	}
	defer rows.Close()

	var cycles []payroll.PayrollCycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll cycle: %w", err)
		}
		cycles = append(cycles, cycle)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return cycles, totalCount, nil
}

func (r *payrollRepository) TransitionCycle(ctx context.Context, companyID, cycleID string, t payroll.CycleTransition) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	// Single conditional update: the row only changes when the current
	// status still equals t.From, so concurrent transitions cannot both win.
	setParts := []string{"status = $3", "updated_at = NOW()"}
	args := []interface{}{cycleID, companyID, t.To, t.From}
	argIdx := 5

	switch t.To {
	case payroll.CycleStatusPendingApproval:
		setParts = append(setParts, fmt.Sprintf("submitted_by = $%d, submitted_at = NOW()", argIdx))
		args = append(args, t.Actor)
		argIdx++
	case payroll.CycleStatusApproved:
		setParts = append(setParts, fmt.Sprintf("approved_by = $%d, approved_at = NOW()", argIdx))
		args = append(args, t.Actor)
		argIdx++
	case payroll.CycleStatusDraft:
		// Rejection: pending_approval back to draft.
		setParts = append(setParts, fmt.Sprintf("rejected_by = $%d, rejected_at = NOW(), rejection_reason = $%d", argIdx, argIdx+1))
		args = append(args, t.Actor, t.Reason)
		argIdx += 2
	}

	query := fmt.Sprintf(`UPDATE payroll_cycles SET %s
		WHERE id = $1 AND company_id = $2 AND status = $4
		RETURNING %s`, strings.Join(setParts, ", "), cycleColumns)

	cycle, err := scanCycle(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish a missing cycle from one in the wrong state.
			if _, getErr := r.GetCycleByID(ctx, cycleID, companyID); getErr != nil {
				return payroll.PayrollCycle{}, getErr
			}
			return payroll.PayrollCycle{}, payroll.ErrIllegalTransition
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to transition payroll cycle: %w", err)
	}

	return cycle, nil
}

func (r *payrollRepository) RefreshCycleTotals(ctx context.Context, companyID, cycleID string) (payroll.PayrollCycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_cycles SET
			total_employees = (SELECT COUNT(*) FROM payroll_items WHERE payroll_cycle_id = $1),
			total_amount = (SELECT COALESCE(SUM(gross_salary), 0) FROM payroll_items WHERE payroll_cycle_id = $1),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING ` + cycleColumns

	cycle, err := scanCycle(q.QueryRow(ctx, query, cycleID, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollCycle{}, payroll.ErrCycleNotFound
		}
		return payroll.PayrollCycle{}, fmt.Errorf("failed to refresh cycle totals: %w", err)
	}

	return cycle, nil
}

func (r *payrollRepository) CompleteElapsedCycles(ctx context.Context, companyID string, year, month int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	statuses := make([]string, 0, len(payroll.SweepableStatuses))
	for _, s := range payroll.SweepableStatuses {
		statuses = append(statuses, string(s))
	}

	query := `
		UPDATE payroll_cycles
		SET status = $1, updated_at = NOW()
		WHERE company_id = $2
		  AND status = ANY($3)
		  AND (period_year * 12 + period_month) < $4
	`

	tag, err := q.Exec(ctx, query, payroll.CycleStatusCompleted, companyID, statuses, year*12+month)
	if err != nil {
		return 0, fmt.Errorf("failed to complete elapsed cycles: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ========== ITEMS ==========

const itemColumns = `id, payroll_cycle_id, employee_id, company_id,
	basic, hra, special_allowance, da, lta, bonus, gross_salary,
	pf_deduction, esi_deduction, pt_deduction, tds_deduction,
	total_deductions, net_salary, lop_days, paid_days, total_working_days,
	created_at, updated_at`

func scanItem(row pgx.Row) (payroll.PayrollItem, error) {
	var i payroll.PayrollItem
	err := row.Scan(
		&i.ID, &i.PayrollCycleID, &i.EmployeeID, &i.CompanyID,
		&i.Basic, &i.HRA, &i.SpecialAllowance, &i.DA, &i.LTA, &i.Bonus, &i.GrossSalary,
		&i.PFDeduction, &i.ESIDeduction, &i.PTDeduction, &i.TDSDeduction,
		&i.TotalDeductions, &i.NetSalary, &i.LOPDays, &i.PaidDays, &i.TotalWorkingDays,
		&i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func (r *payrollRepository) UpsertItem(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_items (
			id, payroll_cycle_id, employee_id, company_id,
			basic, hra, special_allowance, da, lta, bonus, gross_salary,
			pf_deduction, esi_deduction, pt_deduction, tds_deduction,
			total_deductions, net_salary, lop_days, paid_days, total_working_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (payroll_cycle_id, employee_id) DO UPDATE SET
			basic = EXCLUDED.basic,
			hra = EXCLUDED.hra,
			special_allowance = EXCLUDED.special_allowance,
			da = EXCLUDED.da,
			lta = EXCLUDED.lta,
			bonus = EXCLUDED.bonus,
			gross_salary = EXCLUDED.gross_salary,
			pf_deduction = EXCLUDED.pf_deduction,
			esi_deduction = EXCLUDED.esi_deduction,
			pt_deduction = EXCLUDED.pt_deduction,
			tds_deduction = EXCLUDED.tds_deduction,
			total_deductions = EXCLUDED.total_deductions,
			net_salary = EXCLUDED.net_salary,
			lop_days = EXCLUDED.lop_days,
			paid_days = EXCLUDED.paid_days,
			total_working_days = EXCLUDED.total_working_days,
			updated_at = NOW()
		RETURNING ` + itemColumns

	created, err := scanItem(q.QueryRow(ctx, query,
		uuid.New().String(), item.PayrollCycleID, item.EmployeeID, item.CompanyID,
		item.Basic, item.HRA, item.SpecialAllowance, item.DA, item.LTA, item.Bonus, item.GrossSalary,
		item.PFDeduction, item.ESIDeduction, item.PTDeduction, item.TDSDeduction,
		item.TotalDeductions, item.NetSalary, item.LOPDays, item.PaidDays, item.TotalWorkingDays,
	))
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("failed to upsert payroll item: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) ListItemsByCycle(ctx context.Context, cycleID, companyID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pi.id, pi.payroll_cycle_id, pi.employee_id, pi.company_id,
			pi.basic, pi.hra, pi.special_allowance, pi.da, pi.lta, pi.bonus, pi.gross_salary,
			pi.pf_deduction, pi.esi_deduction, pi.pt_deduction, pi.tds_deduction,
			pi.total_deductions, pi.net_salary, pi.lop_days, pi.paid_days, pi.total_working_days,
			pi.created_at, pi.updated_at, e.full_name
		FROM payroll_items pi
		JOIN employees e ON e.id = pi.employee_id
		WHERE pi.payroll_cycle_id = $1 AND pi.company_id = $2
		ORDER BY e.date_of_joining, e.id
	`

	rows, err := q.Query(ctx, query, cycleID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		var i payroll.PayrollItem
		if err := rows.Scan(
			&i.ID, &i.PayrollCycleID, &i.EmployeeID, &i.CompanyID,
			&i.Basic, &i.HRA, &i.SpecialAllowance, &i.DA, &i.LTA, &i.Bonus, &i.GrossSalary,
			&i.PFDeduction, &i.ESIDeduction, &i.PTDeduction, &i.TDSDeduction,
			&i.TotalDeductions, &i.NetSalary, &i.LOPDays, &i.PaidDays, &i.TotalWorkingDays,
			&i.CreatedAt, &i.UpdatedAt, &i.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *payrollRepository) CountItemsByCycle(ctx context.Context, cycleID, companyID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM payroll_items WHERE payroll_cycle_id = $1 AND company_id = $2`,
		cycleID, companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payroll items: %w", err)
	}

	return count, nil
}

func (r *payrollRepository) ListEmployeeIDsWithItems(ctx context.Context, cycleID, companyID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id FROM payroll_items WHERE payroll_cycle_id = $1 AND company_id = $2`,
		cycleID, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list item employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *payrollRepository) ListItemsByEmployee(ctx context.Context, employeeID, companyID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pi.id, pi.payroll_cycle_id, pi.employee_id, pi.company_id,
			pi.basic, pi.hra, pi.special_allowance, pi.da, pi.lta, pi.bonus, pi.gross_salary,
			pi.pf_deduction, pi.esi_deduction, pi.pt_deduction, pi.tds_deduction,
			pi.total_deductions, pi.net_salary, pi.lop_days, pi.paid_days, pi.total_working_days,
			pi.created_at, pi.updated_at, pc.period_year, pc.period_month
		FROM payroll_items pi
		JOIN payroll_cycles pc ON pc.id = pi.payroll_cycle_id
		WHERE pi.employee_id = $1 AND pi.company_id = $2
		ORDER BY pc.period_year DESC, pc.period_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		var i payroll.PayrollItem
		if err := rows.Scan(
			&i.ID, &i.PayrollCycleID, &i.EmployeeID, &i.CompanyID,
			&i.Basic, &i.HRA, &i.SpecialAllowance, &i.DA, &i.LTA, &i.Bonus, &i.GrossSalary,
			&i.PFDeduction, &i.ESIDeduction, &i.PTDeduction, &i.TDSDeduction,
			&i.TotalDeductions, &i.NetSalary, &i.LOPDays, &i.PaidDays, &i.TotalWorkingDays,
			&i.CreatedAt, &i.UpdatedAt, &i.PeriodYear, &i.PeriodMonth,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ========== AGGREGATIONS ==========

func (r *payrollRepository) GetCycleSummary(ctx context.Context, companyID string, year, month int) (payroll.CycleSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pc.period_year, pc.period_month, pc.status,
			COUNT(pi.id),
			COALESCE(SUM(pi.gross_salary), 0),
			COALESCE(SUM(pi.total_deductions), 0),
			COALESCE(SUM(pi.net_salary), 0)
		FROM payroll_cycles pc
		LEFT JOIN payroll_items pi ON pi.payroll_cycle_id = pc.id
		WHERE pc.company_id = $1 AND pc.period_year = $2 AND pc.period_month = $3
		GROUP BY pc.period_year, pc.period_month, pc.status
	`

	var s payroll.CycleSummary
	err := q.QueryRow(ctx, query, companyID, year, month).Scan(
		&s.PeriodYear, &s.PeriodMonth, &s.Status,
		&s.TotalEmployees, &s.TotalGross, &s.TotalDeductions, &s.TotalNet,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CycleSummary{}, payroll.ErrCycleNotFound
		}
		return payroll.CycleSummary{}, fmt.Errorf("failed to get cycle summary: %w", err)
	}

	return s, nil
}
