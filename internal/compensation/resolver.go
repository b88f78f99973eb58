package compensation

import (
	"math"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

// LineItem is one allowance on the computed payslip. All dimension rules of
// the same allowance type that fire for the employee are summed into a single
// line; this is additive by design, not a precedence system.
type LineItem struct {
	AllowanceTypeID string `json:"allowance_type_id"`
	Name            string `json:"name"`
	Amount          int64  `json:"amount"`
	Taxable         bool   `json:"taxable"`
}

type Breakdown struct {
	EmployeeID string     `json:"employee_id"`
	BaseSalary int64      `json:"base_salary"`
	Allowances []LineItem `json:"allowances"`
	Total      int64      `json:"total"`
	Currency   string     `json:"currency"`
}

// Resolve computes base pay and itemized allowances for an employee against a
// master data snapshot. Pure: no side effects, same inputs produce the same
// breakdown. Callable for on-demand payslip preview and after an approved
// personnel action changes title, grade, department or salary.
//
// Base salary is the employee's explicit override when a prior action set one,
// otherwise the lowest-numbered step of the active structure for the
// employee's grade. Step progression is not implemented.
func Resolve(emp *employee.Employee, snap *masterdata.Snapshot) (*Breakdown, error) {
	structure, ok := snap.ActiveStructureForGrade(emp.JobGradeID)
	if !ok {
		return nil, internal.ErrNoActiveStructure
	}

	var base int64
	if emp.SalaryOverride != nil {
		base = *emp.SalaryOverride
	} else if step, ok := structure.LowestStep(); ok {
		base = step.Salary
	}

	departmentTypeID := ""
	if dept, ok := snap.DepartmentByID(emp.DepartmentID); ok {
		departmentTypeID = dept.TypeID
	}

	breakdown := &Breakdown{
		EmployeeID: emp.ID,
		BaseSalary: base,
		Currency:   emp.Currency,
		Total:      base,
	}

	for i := range snap.AllowanceTypes {
		at := &snap.AllowanceTypes[i]

		amount := contribution(at.JobTitleRule, emp.JobTitleID, base) +
			contribution(at.JobGradeRule, emp.JobGradeID, base) +
			contribution(at.JobCategoryRule, emp.JobCategoryID, base) +
			contribution(at.DepartmentTypeRule, departmentTypeID, base)

		if amount == 0 {
			continue
		}

		breakdown.Allowances = append(breakdown.Allowances, LineItem{
			AllowanceTypeID: at.ID,
			Name:            at.Name,
			Amount:          amount,
			Taxable:         at.Taxable,
		})
		breakdown.Total += amount
	}

	return breakdown, nil
}

// contribution evaluates one dimension rule. Disabled rules, rules whose
// applies-to set does not contain the employee's value, and malformed rules
// all contribute nothing.
func contribution(rule masterdata.AllowanceRule, dimensionValue string, base int64) int64 {
	if dimensionValue == "" || !rule.Matches(dimensionValue) {
		return 0
	}
	if !rule.WellFormed() {
		return 0
	}
	switch rule.Basis {
	case masterdata.BasisFixed:
		return int64(math.Round(rule.Value))
	case masterdata.BasisPercentOfBase:
		return int64(math.Round(rule.Value * float64(base) / 100))
	}
	return 0
}
