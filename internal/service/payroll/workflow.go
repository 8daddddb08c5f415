package payroll

import (
	"context"

	"github.com/paywise-hr/payroll-backend-go/internal/domain/payroll"
)

// Workflow transitions. Each one is executed as a single compare-and-swap on
// the cycle status, so two concurrent requests cannot both win the same
// transition.

// SubmitCycle moves a draft cycle to pending_approval. A cycle with no
// payroll items cannot be submitted.
func (s *PayrollServiceImpl) SubmitCycle(ctx context.Context, id string) (payroll.CycleResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	count, err := s.payrollRepo.CountItemsByCycle(ctx, id, companyID)
	if err != nil {
		return payroll.CycleResponse{}, err
	}
	if count == 0 {
		return payroll.CycleResponse{}, payroll.ErrNoPayrollItems
	}

	cycle, err := s.payrollRepo.TransitionCycle(ctx, companyID, id, payroll.CycleTransition{
		From:  payroll.CycleStatusDraft,
		To:    payroll.CycleStatusPendingApproval,
		Actor: userID,
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return mapToCycleResponse(cycle), nil
}

// ApproveCycle moves a pending cycle to approved, locking its items.
func (s *PayrollServiceImpl) ApproveCycle(ctx context.Context, id string) (payroll.CycleResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.payrollRepo.TransitionCycle(ctx, companyID, id, payroll.CycleTransition{
		From:  payroll.CycleStatusPendingApproval,
		To:    payroll.CycleStatusApproved,
		Actor: userID,
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return mapToCycleResponse(cycle), nil
}

// RejectCycle returns a pending cycle to draft with a reason, unlocking its
// items for another generation run.
func (s *PayrollServiceImpl) RejectCycle(ctx context.Context, id string, req payroll.RejectCycleRequest) (payroll.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CycleResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.payrollRepo.TransitionCycle(ctx, companyID, id, payroll.CycleTransition{
		From:   payroll.CycleStatusPendingApproval,
		To:     payroll.CycleStatusDraft,
		Actor:  userID,
		Reason: &req.Reason,
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return mapToCycleResponse(cycle), nil
}

// ProcessCycle moves an approved cycle to processing. This relabels the
// status only; the items produced before approval are not recomputed.
func (s *PayrollServiceImpl) ProcessCycle(ctx context.Context, id string) (payroll.CycleResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	cycle, err := s.payrollRepo.TransitionCycle(ctx, companyID, id, payroll.CycleTransition{
		From:  payroll.CycleStatusApproved,
		To:    payroll.CycleStatusProcessing,
		Actor: userID,
	})
	if err != nil {
		return payroll.CycleResponse{}, err
	}

	return mapToCycleResponse(cycle), nil
}
