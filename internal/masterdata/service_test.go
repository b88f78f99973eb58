package masterdata_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

func TestMasterData(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Master Data Suite")
}

// Mock repository for testing
type mockMasterDataRepository struct {
	departments     []masterdata.Department
	jobTitles       []masterdata.JobTitle
	structures      []masterdata.SalaryStructure
	allowanceTypes  []masterdata.AllowanceType
	departmentTypes []masterdata.DepartmentType
	jobGrades       []masterdata.JobGrade
	jobCategories   []masterdata.JobCategory
	getError        error
}

func (m *mockMasterDataRepository) GetDepartments(ctx context.Context) ([]masterdata.Department, error) {
	return m.departments, m.getError
}

func (m *mockMasterDataRepository) GetJobTitles(ctx context.Context) ([]masterdata.JobTitle, error) {
	return m.jobTitles, m.getError
}

func (m *mockMasterDataRepository) GetSalaryStructures(ctx context.Context) ([]masterdata.SalaryStructure, error) {
	return m.structures, m.getError
}

func (m *mockMasterDataRepository) GetAllowanceTypes(ctx context.Context) ([]masterdata.AllowanceType, error) {
	return m.allowanceTypes, m.getError
}

func (m *mockMasterDataRepository) GetDepartmentTypes(ctx context.Context) ([]masterdata.DepartmentType, error) {
	return m.departmentTypes, m.getError
}

func (m *mockMasterDataRepository) GetJobGrades(ctx context.Context) ([]masterdata.JobGrade, error) {
	return m.jobGrades, m.getError
}

func (m *mockMasterDataRepository) GetJobCategories(ctx context.Context) ([]masterdata.JobCategory, error) {
	return m.jobCategories, m.getError
}

var _ = Describe("MasterDataService", func() {
	var (
		service  *masterdata.Service
		mockRepo *mockMasterDataRepository
		ctx      context.Context
	)

	BeforeEach(func() {
		mockRepo = &mockMasterDataRepository{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = masterdata.NewService(mockRepo, logger)
		ctx = context.Background()
	})

	Describe("Snapshot", func() {
		Context("when a non-head job title carries management fields", func() {
			It("should drop the management fields from the snapshot view", func() {
				branchType := "branch"
				mockRepo.jobTitles = []masterdata.JobTitle{
					{
						ID:                      "software-engineer",
						Name:                    "Software Engineer",
						JobCategoryID:           "technical",
						JobGradeID:              "grade-10",
						IsHeadOfDepartment:      false,
						ManagesDepartmentTypeID: &branchType,
						ManagedDepartmentIDs:    []string{"007"},
					},
				}

				snap, err := service.Snapshot(ctx)

				Expect(err).ToNot(HaveOccurred())
				title, ok := snap.JobTitleByID("software-engineer")
				Expect(ok).To(BeTrue())
				Expect(title.ManagesDepartmentTypeID).To(BeNil())
				Expect(title.ManagedDepartmentIDs).To(BeEmpty())
				Expect(snap.ManagedDepartmentIDs(title)).To(BeEmpty())
			})
		})

		Context("when a head job title manages by explicit list and by type", func() {
			It("should resolve the union of both sets", func() {
				branchType := "branch"
				mockRepo.departments = []masterdata.Department{
					{ID: "005", Name: "Head Office", TypeID: "head-office"},
					{ID: "007", Name: "North Branch", TypeID: "branch"},
					{ID: "008", Name: "South Branch", TypeID: "branch"},
				}
				mockRepo.jobTitles = []masterdata.JobTitle{
					{
						ID:                      "regional-manager",
						Name:                    "Regional Manager",
						JobCategoryID:           "managerial",
						JobGradeID:              "grade-12",
						IsHeadOfDepartment:      true,
						ManagesDepartmentTypeID: &branchType,
						ManagedDepartmentIDs:    []string{"005"},
					},
				}

				snap, err := service.Snapshot(ctx)

				Expect(err).ToNot(HaveOccurred())
				title, _ := snap.JobTitleByID("regional-manager")
				managed := snap.ManagedDepartmentIDs(title)
				Expect(managed).To(HaveLen(3))
				Expect(managed).To(HaveKey("005"))
				Expect(managed).To(HaveKey("007"))
				Expect(managed).To(HaveKey("008"))
			})
		})

		Context("when several structures exist for one grade", func() {
			It("should resolve to the first active structure in store order", func() {
				mockRepo.structures = []masterdata.SalaryStructure{
					{ID: "ss-old", JobGradeID: "grade-10", Status: masterdata.StructureStatusInactive},
					{ID: "ss-current", JobGradeID: "grade-10", Status: masterdata.StructureStatusActive},
					{ID: "ss-duplicate", JobGradeID: "grade-10", Status: masterdata.StructureStatusActive},
				}

				snap, err := service.Snapshot(ctx)

				Expect(err).ToNot(HaveOccurred())
				structure, ok := snap.ActiveStructureForGrade("grade-10")
				Expect(ok).To(BeTrue())
				Expect(structure.ID).To(Equal("ss-current"))
			})

			It("should report no structure when none is active", func() {
				mockRepo.structures = []masterdata.SalaryStructure{
					{ID: "ss-old", JobGradeID: "grade-10", Status: masterdata.StructureStatusInactive},
				}

				snap, err := service.Snapshot(ctx)

				Expect(err).ToNot(HaveOccurred())
				_, ok := snap.ActiveStructureForGrade("grade-10")
				Expect(ok).To(BeFalse())
			})
		})

		Context("when the repository fails", func() {
			It("should return the error", func() {
				mockRepo.getError = errors.New("database error")

				snap, err := service.Snapshot(ctx)

				Expect(err).To(HaveOccurred())
				Expect(snap).To(BeNil())
			})
		})
	})
})
