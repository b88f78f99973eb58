package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample master data and employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{
				"personnel_actions", "employees", "allowance_types", "salary_structures",
				"job_titles", "departments", "branch_grades", "work_locations",
				"regions", "job_categories", "job_grades", "department_types",
			} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		if err := seedMasterData(db); err != nil {
			log.Fatalf("failed to seed master data: %v", err)
		}
		if err := seedEmployees(db); err != nil {
			log.Fatalf("failed to seed employees: %v", err)
		}

		fmt.Println("Seeding complete")
	},
}

func seedMasterData(db *gorm.DB) error {
	upsert := clause.OnConflict{DoNothing: true}

	departmentTypes := []masterdata.DepartmentType{
		{ID: "head-office", Name: "Head Office"},
		{ID: "branch", Name: "Branch"},
		{ID: "district", Name: "District"},
	}
	if err := db.Clauses(upsert).Create(&departmentTypes).Error; err != nil {
		return err
	}

	jobGrades := []masterdata.JobGrade{
		{ID: "grade-10", Name: "Grade 10"},
		{ID: "grade-11", Name: "Grade 11"},
		{ID: "grade-12", Name: "Grade 12"},
	}
	if err := db.Clauses(upsert).Create(&jobGrades).Error; err != nil {
		return err
	}

	jobCategories := []masterdata.JobCategory{
		{ID: "managerial", Name: "Managerial"},
		{ID: "clerical", Name: "Clerical"},
		{ID: "technical", Name: "Technical"},
	}
	if err := db.Clauses(upsert).Create(&jobCategories).Error; err != nil {
		return err
	}

	regions := []masterdata.Region{
		{ID: "central", Name: "Central"},
		{ID: "north", Name: "North"},
	}
	if err := db.Clauses(upsert).Create(&regions).Error; err != nil {
		return err
	}

	workLocations := []masterdata.WorkLocation{
		{ID: "hq-tower", Name: "HQ Tower"},
		{ID: "north-plaza", Name: "North Plaza"},
	}
	if err := db.Clauses(upsert).Create(&workLocations).Error; err != nil {
		return err
	}

	branchGrades := []masterdata.BranchGrade{
		{ID: "bg-1", Name: "Class 1"},
		{ID: "bg-2", Name: "Class 2"},
	}
	if err := db.Clauses(upsert).Create(&branchGrades).Error; err != nil {
		return err
	}

	parent := "005"
	branchGrade := "bg-1"
	departments := []masterdata.Department{
		{ID: "005", Name: "Head Office", TypeID: "head-office", Capacity: 200, RegionID: "central", WorkLocationID: "hq-tower"},
		{ID: "007", Name: "North Branch", TypeID: "branch", ParentID: &parent, Capacity: 40, RegionID: "north", WorkLocationID: "north-plaza", BranchGradeID: &branchGrade},
	}
	if err := db.Clauses(upsert).Create(&departments).Error; err != nil {
		return err
	}

	branchType := "branch"
	jobTitles := []masterdata.JobTitle{
		{ID: "software-engineer", Name: "Software Engineer", JobCategoryID: "technical", JobGradeID: "grade-10"},
		{ID: "senior-software-engineer", Name: "Senior Software Engineer", JobCategoryID: "technical", JobGradeID: "grade-12"},
		{ID: "branch-manager", Name: "Branch Manager", JobCategoryID: "managerial", JobGradeID: "grade-12", IsHeadOfDepartment: true, ManagesDepartmentTypeID: &branchType},
	}
	if err := db.Clauses(upsert).Create(&jobTitles).Error; err != nil {
		return err
	}

	structures := []masterdata.SalaryStructure{
		{
			ID: "ss-grade-10", JobGradeID: "grade-10", Status: masterdata.StructureStatusActive,
			EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Steps: []masterdata.SalaryStep{
				{Step: 1, Salary: 100000},
				{Step: 2, Salary: 110000},
			},
		},
		{
			ID: "ss-grade-12", JobGradeID: "grade-12", Status: masterdata.StructureStatusActive,
			EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Steps: []masterdata.SalaryStep{
				{Step: 1, Salary: 160000},
				{Step: 2, Salary: 175000},
			},
		},
	}
	if err := db.Clauses(upsert).Create(&structures).Error; err != nil {
		return err
	}

	allowanceTypes := []masterdata.AllowanceType{
		{
			ID: "management-allowance", Name: "Management Allowance", Taxable: true,
			Description: "Paid to managerial staff",
			JobCategoryRule: masterdata.AllowanceRule{
				Enabled: true, Basis: masterdata.BasisPercentOfBase, Value: 10,
				AppliesTo: []string{"managerial"},
			},
		},
		{
			ID: "branch-allowance", Name: "Branch Allowance", Taxable: false,
			Description: "Paid to staff posted in branches",
			DepartmentTypeRule: masterdata.AllowanceRule{
				Enabled: true, Basis: masterdata.BasisFixed, Value: 5000,
				AppliesTo: []string{"branch"},
			},
		},
	}
	if err := db.Clauses(upsert).Create(&allowanceTypes).Error; err != nil {
		return err
	}

	fmt.Println("Seeded master data")
	return nil
}

func seedEmployees(db *gorm.DB) error {
	employees := []employee.Employee{
		{
			ID: "emp-001", FirstName: "Amina", LastName: "Yusuf",
			JobTitleID: "branch-manager", DepartmentID: "007",
			JobGradeID: "grade-12", JobCategoryID: "managerial",
			BaseSalary: 160000, Currency: "USD", Status: employee.StatusActive,
		},
		{
			ID: "emp-002", FirstName: "Daniel", LastName: "Okoro",
			JobTitleID: "software-engineer", DepartmentID: "005",
			JobGradeID: "grade-10", JobCategoryID: "technical",
			BaseSalary: 100000, Currency: "USD", Status: employee.StatusActive,
		},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&employees).Error; err != nil {
		return err
	}

	fmt.Println("Seeded employees")
	return nil
}
