package compensation

import "context"

type CompensationService interface {
	Create(ctx context.Context, req CreateStructureRequest) (StructureResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]StructureResponse, error)
}
