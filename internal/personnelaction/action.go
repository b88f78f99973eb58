package personnelaction

import (
	"encoding/json"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

const (
	TypePromotion        = "promotion"
	TypeDemotion         = "demotion"
	TypeLateralTransfer  = "lateral_transfer"
	TypeActingAssignment = "acting_assignment"
	TypeTransfer         = "transfer"
	TypeDisciplinaryCase = "disciplinary_case"
)

// KnownType reports whether t is one of the supported action types.
func KnownType(t string) bool {
	switch t {
	case TypePromotion, TypeDemotion, TypeLateralTransfer,
		TypeActingAssignment, TypeTransfer, TypeDisciplinaryCase:
		return true
	}
	return false
}

// PersonnelAction is a structured, approvable request to change an employee.
// Lifecycle: pending -> completed (approve, mutates the employee) or
// pending -> rejected (no mutation). Completed and rejected are terminal;
// deletion is allowed from any status and never mutates the employee.
type PersonnelAction struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	EmployeeID    string          `json:"employee_id" gorm:"column:employee_id;not null;index"`
	Type          string          `json:"type" gorm:"not null"`
	EffectiveDate time.Time       `json:"effective_date" gorm:"column:effective_date;type:date"`
	Status        string          `json:"status" gorm:"default:pending"`
	Details       json.RawMessage `json:"details" gorm:"column:details;type:jsonb"`
	ProcessedAt   *time.Time      `json:"processed_at,omitempty" gorm:"column:processed_at"`
	CreatedAt     time.Time       `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (PersonnelAction) TableName() string {
	return "personnel_actions"
}

// IsTerminal reports whether the action reached a final status. Completed and
// rejected actions never transition again; only deletion applies to them.
func (a *PersonnelAction) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusRejected
}

func (a *PersonnelAction) CanBeApproved() bool {
	return !a.IsTerminal()
}

func (a *PersonnelAction) CanBeRejected() bool {
	return !a.IsTerminal()
}

// Complete marks the action completed as of the given processing time, which
// must match the timestamp the repository committed.
func (a *PersonnelAction) Complete(at time.Time) {
	a.Status = StatusCompleted
	a.ProcessedAt = &at
	a.UpdatedAt = at
}

// Reject marks the action rejected as of the given processing time.
func (a *PersonnelAction) Reject(at time.Time) {
	a.Status = StatusRejected
	a.ProcessedAt = &at
	a.UpdatedAt = at
}
