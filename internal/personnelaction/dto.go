package personnelaction

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// CreateActionDTO is the request payload for creating a personnel action. The
// details field is validated against the shape required by the action type.
type CreateActionDTO struct {
	EmployeeID    string          `json:"employee_id" validate:"required"`
	Type          string          `json:"type" validate:"required"`
	EffectiveDate time.Time       `json:"effective_date" validate:"required"`
	Details       json.RawMessage `json:"details" validate:"required"`
}

func (dto CreateActionDTO) Validate() error {
	if dto.EmployeeID == "" {
		return errors.New("employee_id is required")
	}
	if !KnownType(dto.Type) {
		return errors.New("unknown action type")
	}
	if dto.EffectiveDate.IsZero() {
		return errors.New("effective_date is required")
	}
	if len(dto.Details) == 0 {
		return errors.New("details are required")
	}
	if _, err := ParseDetail(dto.Type, dto.Details); err != nil {
		return err
	}
	return nil
}

// RejectActionDTO carries the optional rejection reason recorded in the
// audit event.
type RejectActionDTO struct {
	Reason string `json:"reason,omitempty"`
}

// Detail is the type-specific payload of an action.
type Detail interface {
	Validate() error
}

// JobChangeDetail is shared by promotion, demotion and lateral transfer.
type JobChangeDetail struct {
	NewJobTitleID   string  `json:"new_job_title_id"`
	NewDepartmentID *string `json:"new_department_id,omitempty"`
	NewBasicSalary  *int64  `json:"new_basic_salary,omitempty"`
	Justification   string  `json:"justification"`
}

func (d JobChangeDetail) Validate() error {
	if d.NewJobTitleID == "" {
		return errors.New("new_job_title_id is required")
	}
	if d.Justification == "" {
		return errors.New("justification is required")
	}
	if d.NewDepartmentID != nil && *d.NewDepartmentID == "" {
		return errors.New("new_department_id must not be empty when present")
	}
	if d.NewBasicSalary != nil && *d.NewBasicSalary < 0 {
		return errors.New("new_basic_salary must not be negative")
	}
	return nil
}

type ActingAssignmentDetail struct {
	ActingJobTitleID     string    `json:"acting_job_title_id"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	SpecialDutyAllowance int64     `json:"special_duty_allowance"`
}

func (d ActingAssignmentDetail) Validate() error {
	if d.ActingJobTitleID == "" {
		return errors.New("acting_job_title_id is required")
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return errors.New("start_date and end_date are required")
	}
	if d.EndDate.Before(d.StartDate) {
		return errors.New("end_date must not be before start_date")
	}
	if d.SpecialDutyAllowance < 0 {
		return errors.New("special_duty_allowance must not be negative")
	}
	return nil
}

type TransferDetail struct {
	NewDepartmentID string  `json:"new_department_id"`
	NewManagerID    *string `json:"new_manager_id,omitempty"`
	Justification   string  `json:"justification"`
}

func (d TransferDetail) Validate() error {
	if d.NewDepartmentID == "" {
		return errors.New("new_department_id is required")
	}
	if d.Justification == "" {
		return errors.New("justification is required")
	}
	if d.NewManagerID != nil && *d.NewManagerID == "" {
		return errors.New("new_manager_id must not be empty when present")
	}
	return nil
}

const (
	CaseTypeVerbal      = "verbal"
	CaseTypeWritten     = "written"
	CaseTypeSuspension  = "suspension"
	CaseTypeTermination = "termination"
)

type DisciplinaryCaseDetail struct {
	CaseType     string    `json:"case_type"`
	IncidentDate time.Time `json:"incident_date"`
	Description  string    `json:"description"`
	ActionTaken  string    `json:"action_taken"`
}

func (d DisciplinaryCaseDetail) Validate() error {
	switch d.CaseType {
	case CaseTypeVerbal, CaseTypeWritten, CaseTypeSuspension, CaseTypeTermination:
	default:
		return errors.New("case_type must be one of verbal, written, suspension, termination")
	}
	if d.IncidentDate.IsZero() {
		return errors.New("incident_date is required")
	}
	if d.Description == "" {
		return errors.New("description is required")
	}
	if d.ActionTaken == "" {
		return errors.New("action_taken is required")
	}
	return nil
}

// ParseDetail decodes and validates the detail payload for the given action
// type. Unknown fields are rejected so a payload of the wrong variant cannot
// pass as a sparse valid one.
func ParseDetail(actionType string, raw json.RawMessage) (Detail, error) {
	var detail Detail
	switch actionType {
	case TypePromotion, TypeDemotion, TypeLateralTransfer:
		detail = &JobChangeDetail{}
	case TypeActingAssignment:
		detail = &ActingAssignmentDetail{}
	case TypeTransfer:
		detail = &TransferDetail{}
	case TypeDisciplinaryCase:
		detail = &DisciplinaryCaseDetail{}
	default:
		return nil, errors.New("unknown action type")
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(detail); err != nil {
		return nil, err
	}
	if err := detail.Validate(); err != nil {
		return nil, err
	}
	return detail, nil
}
