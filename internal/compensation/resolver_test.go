package compensation_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/compensation"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

func TestCompensation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Compensation Resolver Suite")
}

var _ = Describe("Resolve", func() {
	var (
		departments    []masterdata.Department
		structures     []masterdata.SalaryStructure
		allowanceTypes []masterdata.AllowanceType
		emp            *employee.Employee
	)

	snapshot := func() *masterdata.Snapshot {
		return masterdata.NewSnapshot(departments, nil, structures, allowanceTypes)
	}

	BeforeEach(func() {
		departments = []masterdata.Department{
			{ID: "005", Name: "Head Office", TypeID: "head-office"},
			{ID: "007", Name: "North Branch", TypeID: "branch"},
		}

		structures = []masterdata.SalaryStructure{
			{
				ID:            "ss-grade-10",
				JobGradeID:    "grade-10",
				Status:        masterdata.StructureStatusActive,
				EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Steps: []masterdata.SalaryStep{
					{Step: 1, Salary: 100000},
					{Step: 2, Salary: 110000},
				},
			},
		}

		allowanceTypes = nil

		emp = &employee.Employee{
			ID:            "emp-002",
			JobTitleID:    "software-engineer",
			DepartmentID:  "005",
			JobGradeID:    "grade-10",
			JobCategoryID: "technical",
			Currency:      "USD",
			Status:        employee.StatusActive,
		}
	})

	Describe("base salary", func() {
		Context("when no structure for the grade is active", func() {
			It("should fail with the no-active-structure error", func() {
				structures[0].Status = masterdata.StructureStatusInactive

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).To(Equal(internal.ErrNoActiveStructure))
				Expect(result).To(BeNil())
			})
		})

		Context("when the employee has no salary override", func() {
			It("should pay the lowest-numbered step", func() {
				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.BaseSalary).To(Equal(int64(100000)))
				Expect(result.Total).To(Equal(int64(100000)))
			})

			It("should pick the lowest step number even when steps are unordered", func() {
				structures[0].Steps = []masterdata.SalaryStep{
					{Step: 3, Salary: 120000},
					{Step: 1, Salary: 100000},
					{Step: 2, Salary: 110000},
				}

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.BaseSalary).To(Equal(int64(100000)))
			})
		})

		Context("when a prior action set a salary override", func() {
			It("should prefer the override over the structure step", func() {
				override := int64(130000)
				emp.SalaryOverride = &override

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.BaseSalary).To(Equal(int64(130000)))
				Expect(result.Total).To(Equal(int64(130000)))
			})
		})
	})

	Describe("allowance rules", func() {
		Context("with a percent-of-base rule on job category", func() {
			BeforeEach(func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:      "management-allowance",
						Name:    "Management Allowance",
						Taxable: true,
						JobCategoryRule: masterdata.AllowanceRule{
							Enabled:   true,
							Basis:     masterdata.BasisPercentOfBase,
							Value:     10,
							AppliesTo: []string{"managerial"},
						},
					},
				}
			})

			It("should add ten percent of base for a matching employee", func() {
				emp.JobCategoryID = "managerial"

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(HaveLen(1))
				Expect(result.Allowances[0].AllowanceTypeID).To(Equal("management-allowance"))
				Expect(result.Allowances[0].Amount).To(Equal(int64(10000)))
				Expect(result.Allowances[0].Taxable).To(BeTrue())
				Expect(result.Total).To(Equal(int64(110000)))
			})

			It("should contribute nothing for a non-matching employee", func() {
				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
				Expect(result.Total).To(Equal(int64(100000)))
			})

			It("should compute the percentage against the override when one is set", func() {
				emp.JobCategoryID = "managerial"
				override := int64(200000)
				emp.SalaryOverride = &override

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances[0].Amount).To(Equal(int64(20000)))
				Expect(result.Total).To(Equal(int64(220000)))
			})
		})

		Context("with a fixed rule on department type", func() {
			BeforeEach(func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:   "branch-allowance",
						Name: "Branch Allowance",
						DepartmentTypeRule: masterdata.AllowanceRule{
							Enabled:   true,
							Basis:     masterdata.BasisFixed,
							Value:     5000,
							AppliesTo: []string{"branch"},
						},
					},
				}
			})

			It("should add the fixed amount for an employee in a branch department", func() {
				emp.DepartmentID = "007"

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(HaveLen(1))
				Expect(result.Allowances[0].Amount).To(Equal(int64(5000)))
				Expect(result.Total).To(Equal(int64(105000)))
			})

			It("should contribute nothing for a head office employee", func() {
				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
			})

			It("should contribute nothing when the employee's department is unknown", func() {
				emp.DepartmentID = "no-such-department"

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
			})
		})

		Context("when rules on several dimensions fire for the same type", func() {
			It("should sum the contributions into a single line item", func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:   "field-allowance",
						Name: "Field Allowance",
						JobGradeRule: masterdata.AllowanceRule{
							Enabled:   true,
							Basis:     masterdata.BasisFixed,
							Value:     3000,
							AppliesTo: []string{"grade-10"},
						},
						DepartmentTypeRule: masterdata.AllowanceRule{
							Enabled:   true,
							Basis:     masterdata.BasisPercentOfBase,
							Value:     5,
							AppliesTo: []string{"branch"},
						},
					},
				}
				emp.DepartmentID = "007"

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(HaveLen(1))
				Expect(result.Allowances[0].Amount).To(Equal(int64(8000)))
				Expect(result.Total).To(Equal(int64(108000)))
			})
		})

		Context("with degraded rule configuration", func() {
			It("should ignore a disabled rule even when the set matches", func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:   "dormant-allowance",
						Name: "Dormant Allowance",
						JobGradeRule: masterdata.AllowanceRule{
							Enabled:   false,
							Basis:     masterdata.BasisFixed,
							Value:     9999,
							AppliesTo: []string{"grade-10"},
						},
					},
				}

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
			})

			It("should ignore a rule with an unknown basis", func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:   "broken-allowance",
						Name: "Broken Allowance",
						JobGradeRule: masterdata.AllowanceRule{
							Enabled:   true,
							Basis:     "multiplier",
							Value:     2,
							AppliesTo: []string{"grade-10"},
						},
					},
				}

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
			})

			It("should ignore an enabled rule with an empty applies-to set", func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:   "orphan-allowance",
						Name: "Orphan Allowance",
						JobGradeRule: masterdata.AllowanceRule{
							Enabled: true,
							Basis:   masterdata.BasisFixed,
							Value:   1000,
						},
					},
				}

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
			})

			It("should omit line items that sum to zero", func() {
				allowanceTypes = []masterdata.AllowanceType{
					{
						ID:   "zero-allowance",
						Name: "Zero Allowance",
						JobGradeRule: masterdata.AllowanceRule{
							Enabled:   true,
							Basis:     masterdata.BasisFixed,
							Value:     0,
							AppliesTo: []string{"grade-10"},
						},
					},
				}

				result, err := compensation.Resolve(emp, snapshot())

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Allowances).To(BeEmpty())
				Expect(result.Total).To(Equal(result.BaseSalary))
			})
		})
	})

	Describe("determinism", func() {
		It("should produce the same breakdown for the same inputs", func() {
			allowanceTypes = []masterdata.AllowanceType{
				{
					ID:   "branch-allowance",
					Name: "Branch Allowance",
					DepartmentTypeRule: masterdata.AllowanceRule{
						Enabled:   true,
						Basis:     masterdata.BasisFixed,
						Value:     5000,
						AppliesTo: []string{"branch"},
					},
				},
			}
			emp.DepartmentID = "007"
			snap := snapshot()

			first, err := compensation.Resolve(emp, snap)
			Expect(err).ToNot(HaveOccurred())

			second, err := compensation.Resolve(emp, snap)
			Expect(err).ToNot(HaveOccurred())

			Expect(second).To(Equal(first))
		})
	})
})
