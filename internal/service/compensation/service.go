package compensation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/compensation"
	"github.com/paywise-hr/payroll-backend-go/internal/domain/employee"
)

type CompensationServiceImpl struct {
	compensationRepo compensation.CompensationRepository
	employeeRepo     employee.EmployeeRepository
}

func NewCompensationService(
	compensationRepo compensation.CompensationRepository,
	employeeRepo employee.EmployeeRepository,
) compensation.CompensationService {
	return &CompensationServiceImpl{
		compensationRepo: compensationRepo,
		employeeRepo:     employeeRepo,
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

// Create appends a new effective-dated structure for the employee. Existing
// rows are never edited in place; a pay change is always a new row with a
// later effective_from.
func (s *CompensationServiceImpl) Create(ctx context.Context, req compensation.CreateStructureRequest) (compensation.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.StructureResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return compensation.StructureResponse{}, err
	}

	// The employee must exist in this company before pay data is attached.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return compensation.StructureResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	created, err := s.compensationRepo.Create(ctx, compensation.Structure{
		EmployeeID:       req.EmployeeID,
		CompanyID:        companyID,
		EffectiveFrom:    effectiveFrom,
		CTC:              req.CTC,
		Basic:            req.Basic,
		HRA:              req.HRA,
		SpecialAllowance: req.SpecialAllowance,
		DA:               req.DA,
		LTA:              req.LTA,
		Bonus:            req.Bonus,
	})
	if err != nil {
		return compensation.StructureResponse{}, err
	}

	return mapToStructureResponse(created), nil
}

func (s *CompensationServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]compensation.StructureResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	structures, err := s.compensationRepo.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]compensation.StructureResponse, 0, len(structures))
	for _, st := range structures {
		result = append(result, mapToStructureResponse(st))
	}
	return result, nil
}

func mapToStructureResponse(s compensation.Structure) compensation.StructureResponse {
	return compensation.StructureResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		EffectiveFrom:    s.EffectiveFrom.Format("2006-01-02"),
		CTC:              s.CTC,
		Basic:            s.Basic,
		HRA:              s.HRA,
		SpecialAllowance: s.SpecialAllowance,
		DA:               s.DA,
		LTA:              s.LTA,
		Bonus:            s.Bonus,
	}
}
