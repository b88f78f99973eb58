package personnelaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/compensation"
	"github.com/frahmantamala/personnel-management/internal/core/events"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

// Repository defines the data access methods for personnel actions.
// CompleteWithMutation is the atomic unit of the approve operation: it applies
// the employee column changes and flips the action to completed in one
// transaction, or leaves both untouched. UpdateStatus only writes while the
// action is still pending and returns ErrInvalidTransition otherwise, so a
// terminal status can never be overwritten.
type Repository interface {
	Create(ctx context.Context, action *PersonnelAction) error
	GetByID(ctx context.Context, id string) (*PersonnelAction, error)
	GetByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]*PersonnelAction, error)
	GetAll(ctx context.Context, limit, offset int) ([]*PersonnelAction, error)
	UpdateStatus(ctx context.Context, id, status string, processedAt time.Time) error
	CompleteWithMutation(ctx context.Context, action *PersonnelAction, employeeChanges map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// EmployeeStore is the slice of the Employee Record Store the workflow needs.
type EmployeeStore interface {
	GetByID(ctx context.Context, id string) (*employee.Employee, error)
}

// SnapshotProvider sources one master data snapshot per operation.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*masterdata.Snapshot, error)
}

// EventPublisher is the fire-and-forget notification/audit sink.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service drives the personnel action state machine.
type Service struct {
	repo       Repository
	employees  EmployeeStore
	masterData SnapshotProvider
	bus        EventPublisher
	logger     *slog.Logger
	locks      *employeeLocks
}

func NewService(repo Repository, employees EmployeeStore, masterData SnapshotProvider, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		employees:  employees,
		masterData: masterData,
		bus:        bus,
		logger:     logger,
		locks:      newEmployeeLocks(),
	}
}

// CreateAction validates the detail payload against the shape required by the
// action type and stores the action in pending status.
func (s *Service) CreateAction(ctx context.Context, dto CreateActionDTO) (*PersonnelAction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("action detail validation failed",
			"error", err,
			"employee_id", dto.EmployeeID,
			"type", dto.Type)
		return nil, internal.ErrInvalidDetail
	}

	if _, err := s.employees.GetByID(ctx, dto.EmployeeID); err != nil {
		s.logger.Error("employee not found for new action", "error", err, "employee_id", dto.EmployeeID)
		return nil, internal.ErrEmployeeNotFound
	}

	now := time.Now()
	action := &PersonnelAction{
		ID:            uuid.New().String(),
		EmployeeID:    dto.EmployeeID,
		Type:          dto.Type,
		EffectiveDate: dto.EffectiveDate,
		Status:        StatusPending,
		Details:       dto.Details,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, action); err != nil {
		s.logger.Error("failed to create action", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.bus.Publish(ctx, events.NewActionCreatedEvent(action.ID, action.Type, action.EmployeeID))

	s.logger.Info("personnel action created",
		"action_id", action.ID,
		"employee_id", action.EmployeeID,
		"type", action.Type,
		"actor_id", internal.ActorIDFromContext(ctx))

	return action, nil
}

func (s *Service) GetAction(ctx context.Context, id string) (*PersonnelAction, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get action", "error", err, "action_id", id)
		return nil, internal.ErrActionNotFound
	}
	return action, nil
}

func (s *Service) GetActions(ctx context.Context, employeeID string, limit, offset int) ([]*PersonnelAction, error) {
	var (
		actions []*PersonnelAction
		err     error
	)
	if employeeID != "" {
		actions, err = s.repo.GetByEmployee(ctx, employeeID, limit, offset)
	} else {
		actions, err = s.repo.GetAll(ctx, limit, offset)
	}
	if err != nil {
		s.logger.Error("failed to list actions", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return actions, nil
}

// ApproveAction transitions a pending action to completed and applies its
// employee mutation. The mutation and the status flip happen in one
// transaction; on failure the action stays pending. After any attribute
// mutation the compensation resolver is invoked to refresh derived pay.
// Approvals are serialized per employee id.
func (s *Service) ApproveAction(ctx context.Context, actionID string) (*PersonnelAction, error) {
	action, err := s.repo.GetByID(ctx, actionID)
	if err != nil {
		s.logger.Error("action not found for approval", "error", err, "action_id", actionID)
		return nil, internal.ErrActionNotFound
	}

	unlock := s.locks.Lock(action.EmployeeID)
	defer unlock()

	// re-read under the lock so a concurrent approve of the same action is
	// seen as already terminal
	action, err = s.repo.GetByID(ctx, actionID)
	if err != nil {
		return nil, internal.ErrActionNotFound
	}

	if !action.CanBeApproved() {
		s.logger.Warn("cannot approve action in current status",
			"action_id", actionID,
			"current_status", action.Status)
		return nil, internal.ErrInvalidTransition
	}

	snap, err := s.masterData.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to load master data snapshot", "error", err, "action_id", actionID)
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, action.EmployeeID)
	if err != nil {
		s.logger.Error("employee not found for approval", "error", err, "employee_id", action.EmployeeID)
		return nil, internal.ErrEmployeeNotFound
	}

	changes, err := s.mutationFor(ctx, action, snap)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CompleteWithMutation(ctx, action, changes); err != nil {
		s.logger.Error("failed to complete action, leaving it pending",
			"error", err,
			"action_id", actionID,
			"employee_id", action.EmployeeID)
		return nil, err
	}

	totalPay := s.refreshCompensation(emp, changes, snap)

	s.bus.Publish(ctx, events.NewActionCompletedEvent(action.ID, action.Type, action.EmployeeID, totalPay))

	s.logger.Info("personnel action approved",
		"action_id", action.ID,
		"employee_id", action.EmployeeID,
		"type", action.Type,
		"mutated_fields", len(changes),
		"actor_id", internal.ActorIDFromContext(ctx))

	return action, nil
}

// mutationFor resolves the detail payload into employee column changes,
// verifying every referenced id against master data before any write. Acting
// assignments and disciplinary cases mutate nothing; they are recorded for
// history only.
func (s *Service) mutationFor(ctx context.Context, action *PersonnelAction, snap *masterdata.Snapshot) (map[string]interface{}, error) {
	detail, err := ParseDetail(action.Type, action.Details)
	if err != nil {
		s.logger.Error("stored action detail no longer parses", "error", err, "action_id", action.ID)
		return nil, internal.ErrInvalidDetail
	}

	changes := make(map[string]interface{})

	switch d := detail.(type) {
	case *JobChangeDetail:
		title, ok := snap.JobTitleByID(d.NewJobTitleID)
		if !ok {
			s.logger.Warn("new job title not found in master data",
				"action_id", action.ID,
				"job_title_id", d.NewJobTitleID)
			return nil, internal.ErrReferenceNotFound
		}
		changes["job_title_id"] = title.ID
		changes["job_grade_id"] = title.JobGradeID
		changes["job_category_id"] = title.JobCategoryID

		if d.NewDepartmentID != nil {
			if _, ok := snap.DepartmentByID(*d.NewDepartmentID); !ok {
				s.logger.Warn("new department not found in master data",
					"action_id", action.ID,
					"department_id", *d.NewDepartmentID)
				return nil, internal.ErrReferenceNotFound
			}
			changes["department_id"] = *d.NewDepartmentID
		}
		if d.NewBasicSalary != nil {
			changes["salary_override"] = *d.NewBasicSalary
		}

	case *TransferDetail:
		if _, ok := snap.DepartmentByID(d.NewDepartmentID); !ok {
			s.logger.Warn("transfer target department not found in master data",
				"action_id", action.ID,
				"department_id", d.NewDepartmentID)
			return nil, internal.ErrReferenceNotFound
		}
		changes["department_id"] = d.NewDepartmentID

		if d.NewManagerID != nil {
			if _, err := s.employees.GetByID(ctx, *d.NewManagerID); err != nil {
				s.logger.Warn("transfer manager reference not found",
					"action_id", action.ID,
					"manager_id", *d.NewManagerID)
				return nil, internal.ErrReferenceNotFound
			}
			changes["manager_id"] = *d.NewManagerID
		}

	case *ActingAssignmentDetail, *DisciplinaryCaseDetail:
		// recorded for history and reporting, no attribute mutation
	}

	return changes, nil
}

// refreshCompensation recomputes derived pay after a mutation. A grade with no
// active structure is an unconfigured condition, reported but not fatal to the
// already-committed approve.
func (s *Service) refreshCompensation(emp *employee.Employee, changes map[string]interface{}, snap *masterdata.Snapshot) int64 {
	if len(changes) == 0 {
		return 0
	}

	updated := *emp
	applyChanges(&updated, changes)

	breakdown, err := compensation.Resolve(&updated, snap)
	if err != nil {
		s.logger.Warn("compensation refresh after approval reported a problem",
			"error", err,
			"employee_id", emp.ID,
			"job_grade_id", updated.JobGradeID)
		return 0
	}

	s.logger.Info("compensation refreshed after approval",
		"employee_id", emp.ID,
		"base_salary", breakdown.BaseSalary,
		"total", breakdown.Total)

	return breakdown.Total
}

func applyChanges(emp *employee.Employee, changes map[string]interface{}) {
	for column, value := range changes {
		switch column {
		case "job_title_id":
			emp.JobTitleID = value.(string)
		case "job_grade_id":
			emp.JobGradeID = value.(string)
		case "job_category_id":
			emp.JobCategoryID = value.(string)
		case "department_id":
			emp.DepartmentID = value.(string)
		case "manager_id":
			managerID := value.(string)
			emp.ManagerID = &managerID
		case "salary_override":
			override := value.(int64)
			emp.SalaryOverride = &override
		}
	}
}

// RejectAction transitions a pending action to rejected. The employee record
// is never touched. Rejections share the per-employee lock with approvals so
// the two cannot interleave on the same action; the repository's pending
// guard backs the same invariant at the write.
func (s *Service) RejectAction(ctx context.Context, actionID, reason string) (*PersonnelAction, error) {
	action, err := s.repo.GetByID(ctx, actionID)
	if err != nil {
		s.logger.Error("action not found for rejection", "error", err, "action_id", actionID)
		return nil, internal.ErrActionNotFound
	}

	unlock := s.locks.Lock(action.EmployeeID)
	defer unlock()

	// re-read under the lock so a concurrent approve is seen as terminal
	action, err = s.repo.GetByID(ctx, actionID)
	if err != nil {
		return nil, internal.ErrActionNotFound
	}

	if !action.CanBeRejected() {
		s.logger.Warn("cannot reject action in current status",
			"action_id", actionID,
			"current_status", action.Status)
		return nil, internal.ErrInvalidTransition
	}

	processedAt := time.Now()
	if err := s.repo.UpdateStatus(ctx, actionID, StatusRejected, processedAt); err != nil {
		s.logger.Error("failed to update action status to rejected", "error", err, "action_id", actionID)
		return nil, err
	}
	action.Reject(processedAt)

	s.bus.Publish(ctx, events.NewActionRejectedEvent(action.ID, action.Type, action.EmployeeID, reason))

	s.logger.Info("personnel action rejected",
		"action_id", action.ID,
		"employee_id", action.EmployeeID,
		"reason", reason,
		"actor_id", internal.ActorIDFromContext(ctx))

	return action, nil
}

// DeleteAction removes the record regardless of status. Deleting a terminal
// action only erases history; no employee mutation happens either way.
func (s *Service) DeleteAction(ctx context.Context, actionID string) error {
	action, err := s.repo.GetByID(ctx, actionID)
	if err != nil {
		s.logger.Error("action not found for deletion", "error", err, "action_id", actionID)
		return internal.ErrActionNotFound
	}

	if err := s.repo.Delete(ctx, actionID); err != nil {
		s.logger.Error("failed to delete action", "error", err, "action_id", actionID)
		return err
	}

	s.bus.Publish(ctx, events.NewActionDeletedEvent(action.ID, action.Type, action.Status))

	s.logger.Info("personnel action deleted",
		"action_id", action.ID,
		"status_at_deletion", action.Status,
		"actor_id", internal.ActorIDFromContext(ctx))

	return nil
}
