package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/employee"
)

func TestEmployeeRepository(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Repository Suite")
}

// EmployeeSQLite drops the postgres column defaults so AutoMigrate works on SQLite
type EmployeeSQLite struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"column:first_name;not null"`
	LastName       string    `json:"last_name" gorm:"column:last_name;not null"`
	JobTitleID     string    `json:"job_title_id" gorm:"column:job_title_id;not null"`
	DepartmentID   string    `json:"department_id" gorm:"column:department_id;not null;index"`
	JobGradeID     string    `json:"job_grade_id" gorm:"column:job_grade_id;not null"`
	JobCategoryID  string    `json:"job_category_id" gorm:"column:job_category_id;not null"`
	BaseSalary     int64     `json:"base_salary" gorm:"column:base_salary"`
	SalaryOverride *int64    `json:"salary_override,omitempty" gorm:"column:salary_override"`
	Currency       string    `json:"currency"`
	ManagerID      *string   `json:"manager_id,omitempty" gorm:"column:manager_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (EmployeeSQLite) TableName() string {
	return "employees"
}

var _ = ginkgo.Describe("EmployeeRepository", func() {
	var (
		db   *gorm.DB
		repo employee.Repository
		ctx  context.Context
	)

	newEmployee := func(id, departmentID string) *employee.Employee {
		return &employee.Employee{
			ID:            id,
			FirstName:     "Daniel",
			LastName:      "Okoro",
			JobTitleID:    "software-engineer",
			DepartmentID:  departmentID,
			JobGradeID:    "grade-10",
			JobCategoryID: "technical",
			BaseSalary:    100000,
			Currency:      "USD",
			Status:        employee.StatusActive,
		}
	}

	ginkgo.BeforeEach(func() {
		// Use in-memory SQLite for testing
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		// Auto-migrate using the SQLite-compatible struct
		err = db.AutoMigrate(&EmployeeSQLite{})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		repo = NewEmployeeRepository(db)
		ctx = context.Background()

		gomega.Expect(db.Create(newEmployee("emp-001", "005")).Error).ToNot(gomega.HaveOccurred())
		gomega.Expect(db.Create(newEmployee("emp-002", "007")).Error).ToNot(gomega.HaveOccurred())
		gomega.Expect(db.Create(newEmployee("emp-003", "007")).Error).ToNot(gomega.HaveOccurred())
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.Context("when the employee exists", func() {
			ginkgo.It("should return the record", func() {
				// When
				emp, err := repo.GetByID(ctx, "emp-002")

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(emp.DepartmentID).To(gomega.Equal("007"))
				gomega.Expect(emp.BaseSalary).To(gomega.Equal(int64(100000)))
			})
		})

		ginkgo.Context("when the employee does not exist", func() {
			ginkgo.It("should return the employee not found error", func() {
				// When
				emp, err := repo.GetByID(ctx, "emp-404")

				// Then
				gomega.Expect(err).To(gomega.Equal(internal.ErrEmployeeNotFound))
				gomega.Expect(emp).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Describe("GetByDepartment", func() {
		ginkgo.It("should return only the department's employees in id order", func() {
			// When
			staff, err := repo.GetByDepartment(ctx, "007")

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(staff).To(gomega.HaveLen(2))
			gomega.Expect(staff[0].ID).To(gomega.Equal("emp-002"))
			gomega.Expect(staff[1].ID).To(gomega.Equal("emp-003"))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.Context("when the employee exists", func() {
			ginkgo.It("should apply all column changes in one write", func() {
				// Given
				changes := map[string]interface{}{
					"job_title_id":    "senior-software-engineer",
					"job_grade_id":    "grade-12",
					"salary_override": int64(170000),
				}

				// When
				err := repo.Update(ctx, "emp-002", changes)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				emp, err := repo.GetByID(ctx, "emp-002")
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(emp.JobTitleID).To(gomega.Equal("senior-software-engineer"))
				gomega.Expect(emp.JobGradeID).To(gomega.Equal("grade-12"))
				gomega.Expect(emp.SalaryOverride).ToNot(gomega.BeNil())
				gomega.Expect(*emp.SalaryOverride).To(gomega.Equal(int64(170000)))
			})

			ginkgo.It("should treat an empty change set as a no-op", func() {
				// When
				err := repo.Update(ctx, "emp-002", map[string]interface{}{})

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				emp, err := repo.GetByID(ctx, "emp-002")
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(emp.JobTitleID).To(gomega.Equal("software-engineer"))
			})
		})

		ginkgo.Context("when the employee does not exist", func() {
			ginkgo.It("should return the employee not found error and write nothing", func() {
				// When
				err := repo.Update(ctx, "emp-404", map[string]interface{}{"job_grade_id": "grade-12"})

				// Then
				gomega.Expect(err).To(gomega.Equal(internal.ErrEmployeeNotFound))
			})
		})
	})
})
