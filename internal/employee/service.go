package employee

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/personnel-management/internal"
)

// Repository is the Employee Record Store contract. Update applies the given
// column changes all-or-nothing. The approve workflow does not go through
// Update: it needs the mutation and the action status flip in one transaction,
// which lives in the personnelaction repository.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetAll(ctx context.Context, limit, offset int) ([]*Employee, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]*Employee, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, internal.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *Service) GetEmployees(ctx context.Context, limit, offset int) ([]*Employee, error) {
	employees, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to get employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *Service) GetDepartmentEmployees(ctx context.Context, departmentID string) ([]*Employee, error) {
	employees, err := s.repo.GetByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("failed to get department employees", "error", err, "department_id", departmentID)
		return nil, err
	}
	return employees, nil
}
