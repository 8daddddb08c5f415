package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paywise-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paywise-hr/payroll-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db               *database.DB
	employeeRepo     employee.EmployeeRepository
	compensationRepo compensation.CompensationRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	compensationRepo compensation.CompensationRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:               db,
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
	}
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// Create registers an employee. When the request carries an initial
// compensation structure, both rows are written in one transaction so a
// payroll-eligible employee never exists without pay data half-created.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	doj, _ := time.Parse("2006-01-02", req.DateOfJoining)
	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	emp := employee.Employee{
		CompanyID:     companyID,
		FullName:      req.FullName,
		Email:         req.Email,
		Status:        status,
		DateOfJoining: doj,
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var txErr error
		created, txErr = s.employeeRepo.Create(txCtx, emp)
		if txErr != nil {
			return txErr
		}

		if req.InitialCompensation == nil {
			return nil
		}

		effectiveFrom, _ := time.Parse("2006-01-02", req.InitialCompensation.EffectiveFrom)
		_, txErr = s.compensationRepo.Create(txCtx, compensation.Structure{
			EmployeeID:       created.ID,
			CompanyID:        companyID,
			EffectiveFrom:    effectiveFrom,
			CTC:              req.InitialCompensation.CTC,
			Basic:            req.InitialCompensation.Basic,
			HRA:              req.InitialCompensation.HRA,
			SpecialAllowance: req.InitialCompensation.SpecialAllowance,
			DA:               req.InitialCompensation.DA,
			LTA:              req.InitialCompensation.LTA,
			Bonus:            req.InitialCompensation.Bonus,
		})
		return txErr
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

func mapToEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		FullName:      e.FullName,
		Email:         e.Email,
		Status:        string(e.Status),
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
	}
}
