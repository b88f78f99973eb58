package masterdata

import (
	"time"
)

// Reference entities for the HCM core. Read-mostly: the workflow and the
// compensation resolver consume them through an immutable Snapshot assembled
// per operation, never through module-level shared state.

type DepartmentType struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (DepartmentType) TableName() string {
	return "department_types"
}

type JobGrade struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (JobGrade) TableName() string {
	return "job_grades"
}

type JobCategory struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (JobCategory) TableName() string {
	return "job_categories"
}

type Region struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (Region) TableName() string {
	return "regions"
}

type WorkLocation struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (WorkLocation) TableName() string {
	return "work_locations"
}

type BranchGrade struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

func (BranchGrade) TableName() string {
	return "branch_grades"
}

// Department is an organizational unit. ParentID nil marks a root; the parent
// graph forms a forest. BranchGradeID is only meaningful for branch-type
// departments.
type Department struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	TypeID         string    `json:"type_id" gorm:"column:type_id;not null"`
	ParentID       *string   `json:"parent_id,omitempty" gorm:"column:parent_id;index"`
	Capacity       int       `json:"capacity"`
	RegionID       string    `json:"region_id" gorm:"column:region_id"`
	WorkLocationID string    `json:"work_location_id" gorm:"column:work_location_id"`
	BranchGradeID  *string   `json:"branch_grade_id,omitempty" gorm:"column:branch_grade_id"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Department) TableName() string {
	return "departments"
}

// JobTitle carries the grade and category an employee derives from it.
// Management fields are only meaningful when IsHeadOfDepartment is true:
// ManagesDepartmentTypeID auto-selects every department of that type, and
// ManagedDepartmentIDs names departments explicitly.
type JobTitle struct {
	ID                      string    `json:"id" gorm:"primaryKey"`
	Name                    string    `json:"name" gorm:"not null"`
	JobCategoryID           string    `json:"job_category_id" gorm:"column:job_category_id;not null"`
	JobGradeID              string    `json:"job_grade_id" gorm:"column:job_grade_id;not null"`
	IsHeadOfDepartment      bool      `json:"is_head_of_department" gorm:"column:is_head_of_department"`
	ManagesDepartmentTypeID *string   `json:"manages_department_type_id,omitempty" gorm:"column:manages_department_type_id"`
	ManagedDepartmentIDs    []string  `json:"managed_department_ids,omitempty" gorm:"column:managed_department_ids;serializer:json"`
	CreatedAt               time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt               time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (JobTitle) TableName() string {
	return "job_titles"
}

// HasManagementFields reports whether any management field is set.
func (t *JobTitle) HasManagementFields() bool {
	return t.ManagesDepartmentTypeID != nil || len(t.ManagedDepartmentIDs) > 0
}

const (
	StructureStatusActive   = "active"
	StructureStatusInactive = "inactive"
)

type SalaryStep struct {
	Step   int   `json:"step"`
	Salary int64 `json:"salary"`
}

// SalaryStructure is the set of pay steps for one job grade. Step numbers are
// unique; salary ordering across steps is recommended but not guaranteed, so
// consumers must not assume the slice is sorted.
type SalaryStructure struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	JobGradeID    string       `json:"job_grade_id" gorm:"column:job_grade_id;not null;index"`
	EffectiveDate time.Time    `json:"effective_date" gorm:"column:effective_date;type:date"`
	Status        string       `json:"status" gorm:"default:inactive"`
	Steps         []SalaryStep `json:"steps" gorm:"serializer:json"`
	CreatedAt     time.Time    `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

func (s *SalaryStructure) IsActive() bool {
	return s.Status == StructureStatusActive
}

// LowestStep returns the step with the smallest step number. Step progression
// is not implemented; the resolver always pays from this step.
func (s *SalaryStructure) LowestStep() (SalaryStep, bool) {
	if len(s.Steps) == 0 {
		return SalaryStep{}, false
	}
	lowest := s.Steps[0]
	for _, step := range s.Steps[1:] {
		if step.Step < lowest.Step {
			lowest = step
		}
	}
	return lowest, true
}

const (
	BasisFixed         = "fixed"
	BasisPercentOfBase = "percent_of_base"
)

// AllowanceRule is one conditional pay-addition clause keyed to a single
// classification dimension. Value is an amount in minor units for fixed basis,
// or a plain percentage (10 means 10%) for percent_of_base.
type AllowanceRule struct {
	Enabled   bool     `json:"enabled"`
	Basis     string   `json:"basis"`
	Value     float64  `json:"value"`
	AppliesTo []string `json:"applies_to"`
}

// Matches reports whether the rule is enabled and the employee's value for
// this dimension is in the applies-to set. Enabled with an empty set never
// matches; that is contradictory administrative input, tolerated silently.
func (r AllowanceRule) Matches(dimensionValue string) bool {
	if !r.Enabled {
		return false
	}
	for _, id := range r.AppliesTo {
		if id == dimensionValue {
			return true
		}
	}
	return false
}

// WellFormed reports whether the rule carries a usable basis and value. A
// malformed rule degrades to contributing nothing rather than erroring, since
// it originates from administrative misconfiguration.
func (r AllowanceRule) WellFormed() bool {
	if r.Basis != BasisFixed && r.Basis != BasisPercentOfBase {
		return false
	}
	return r.Value >= 0
}

// AllowanceType holds one rule per dimension. All rules that fire for an
// employee are summed into a single line item; there is no precedence order.
type AllowanceType struct {
	ID                 string        `json:"id" gorm:"primaryKey"`
	Name               string        `json:"name" gorm:"not null"`
	Description        string        `json:"description"`
	Taxable            bool          `json:"taxable"`
	JobTitleRule       AllowanceRule `json:"job_title_rule" gorm:"column:job_title_rule;serializer:json"`
	JobGradeRule       AllowanceRule `json:"job_grade_rule" gorm:"column:job_grade_rule;serializer:json"`
	JobCategoryRule    AllowanceRule `json:"job_category_rule" gorm:"column:job_category_rule;serializer:json"`
	DepartmentTypeRule AllowanceRule `json:"department_type_rule" gorm:"column:department_type_rule;serializer:json"`
	CreatedAt          time.Time     `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt          time.Time     `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (AllowanceType) TableName() string {
	return "allowance_types"
}
