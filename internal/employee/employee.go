package employee

import (
	"time"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

// Employee is the authoritative personnel record. Grade and category are
// derived from the job title; SalaryOverride is only ever set by an approved
// personnel action and takes precedence over the structure step salary.
type Employee struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName       string    `json:"last_name" gorm:"column:last_name;not null"`
	JobTitleID     string    `json:"job_title_id" gorm:"column:job_title_id;not null"`
	DepartmentID   string    `json:"department_id" gorm:"column:department_id;not null;index"`
	JobGradeID     string    `json:"job_grade_id" gorm:"column:job_grade_id;not null"`
	JobCategoryID  string    `json:"job_category_id" gorm:"column:job_category_id;not null"`
	BaseSalary     int64     `json:"base_salary" gorm:"column:base_salary"`
	SalaryOverride *int64    `json:"salary_override,omitempty" gorm:"column:salary_override"`
	Currency       string    `json:"currency" gorm:"default:USD"`
	ManagerID      *string   `json:"manager_id,omitempty" gorm:"column:manager_id"`
	Status         string    `json:"status" gorm:"default:active"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
