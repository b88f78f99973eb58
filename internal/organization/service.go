package organization

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*masterdata.Snapshot, error)
}

type EmployeeLister interface {
	GetByDepartment(ctx context.Context, departmentID string) ([]*employee.Employee, error)
}

type Service struct {
	masterData SnapshotProvider
	employees  EmployeeLister
	logger     *slog.Logger
}

func NewService(masterData SnapshotProvider, employees EmployeeLister, logger *slog.Logger) *Service {
	return &Service{
		masterData: masterData,
		employees:  employees,
		logger:     logger,
	}
}

// GetTree builds the department forest from a fresh snapshot. A non-empty
// query marks matching nodes by name and expands their ancestor chains.
func (s *Service) GetTree(ctx context.Context, query string) ([]*Node, error) {
	snap, err := s.masterData.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to load master data snapshot for tree", "error", err)
		return nil, err
	}

	roots := BuildTree(snap.Departments)

	if query != "" {
		needle := strings.ToLower(query)
		matches := Search(roots, func(d masterdata.Department) bool {
			return strings.Contains(strings.ToLower(d.Name), needle)
		})
		s.logger.Info("organization tree searched", "query", query, "matches", matches)
	}

	return roots, nil
}

// GetDepartmentHead resolves the head of a department, nil-tolerant per the
// first-in-store-order tie-break documented on FindHead.
func (s *Service) GetDepartmentHead(ctx context.Context, departmentID string) (*employee.Employee, error) {
	snap, err := s.masterData.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to load master data snapshot for department head", "error", err)
		return nil, err
	}

	if _, ok := snap.DepartmentByID(departmentID); !ok {
		return nil, internal.ErrDepartmentNotFound
	}

	staff, err := s.employees.GetByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("failed to list department employees", "error", err, "department_id", departmentID)
		return nil, err
	}

	head := FindHead(departmentID, snap, staff)
	if head != nil {
		s.logger.Info("department head resolved",
			"department_id", departmentID,
			"employee_id", head.ID,
			"head_name", head.FullName())
	}

	return head, nil
}
