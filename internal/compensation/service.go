package compensation

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

// SnapshotProvider sources the master data snapshot once per operation.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*masterdata.Snapshot, error)
}

// EmployeeGetter reads the current authoritative employee record.
type EmployeeGetter interface {
	GetByID(ctx context.Context, id string) (*employee.Employee, error)
}

// Service wraps the pure resolver for on-demand payslip preview.
type Service struct {
	masterData SnapshotProvider
	employees  EmployeeGetter
	logger     *slog.Logger
}

func NewService(masterData SnapshotProvider, employees EmployeeGetter, logger *slog.Logger) *Service {
	return &Service{
		masterData: masterData,
		employees:  employees,
		logger:     logger,
	}
}

// PreviewCompensation resolves the pay breakdown for an employee from a fresh
// snapshot. NoActiveStructure propagates so the caller can render the
// "compensation not configured" condition.
func (s *Service) PreviewCompensation(ctx context.Context, employeeID string) (*Breakdown, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("failed to get employee for compensation preview", "error", err, "employee_id", employeeID)
		return nil, internal.ErrEmployeeNotFound
	}

	snap, err := s.masterData.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to load master data snapshot", "error", err, "employee_id", employeeID)
		return nil, err
	}

	breakdown, err := Resolve(emp, snap)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodeNoActiveStructure {
			s.logger.Warn("compensation not configured for grade",
				"employee_id", employeeID,
				"job_grade_id", emp.JobGradeID)
		} else {
			s.logger.Error("compensation resolution failed", "error", err, "employee_id", employeeID)
		}
		return nil, err
	}

	s.logger.Info("compensation resolved",
		"employee_id", employeeID,
		"base_salary", breakdown.BaseSalary,
		"allowances", len(breakdown.Allowances),
		"total", breakdown.Total)

	return breakdown, nil
}
