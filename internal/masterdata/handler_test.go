package masterdata_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/personnel-management/internal/masterdata"
)

var _ = Describe("MasterDataHandler", func() {
	var (
		handler  *masterdata.Handler
		mockRepo *mockMasterDataRepository
	)

	BeforeEach(func() {
		mockRepo = &mockMasterDataRepository{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := masterdata.NewService(mockRepo, logger)
		handler = masterdata.NewHandler(service)
	})

	Describe("GetDepartments", func() {
		It("should return the stored departments as JSON", func() {
			parent := "005"
			mockRepo.departments = []masterdata.Department{
				{ID: "005", Name: "Head Office", TypeID: "head-office"},
				{ID: "007", Name: "North Branch", TypeID: "branch", ParentID: &parent},
			}

			req := httptest.NewRequest(http.MethodGet, "/masterdata/departments", nil)
			w := httptest.NewRecorder()

			handler.GetDepartments(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var departments []masterdata.Department
			err := json.NewDecoder(w.Body).Decode(&departments)
			Expect(err).NotTo(HaveOccurred())
			Expect(departments).To(HaveLen(2))
			Expect(departments[1].ParentID).NotTo(BeNil())
			Expect(*departments[1].ParentID).To(Equal("005"))
		})

		It("should return 500 when the store fails", func() {
			mockRepo.getError = errors.New("database error")

			req := httptest.NewRequest(http.MethodGet, "/masterdata/departments", nil)
			w := httptest.NewRecorder()

			handler.GetDepartments(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))

			var body map[string]any
			err := json.NewDecoder(w.Body).Decode(&body)
			Expect(err).NotTo(HaveOccurred())
			Expect(body["message"]).To(Equal("internal server error"))
		})
	})

	Describe("GetJobGrades", func() {
		It("should return the lookup table", func() {
			mockRepo.jobGrades = []masterdata.JobGrade{
				{ID: "grade-10", Name: "Grade 10"},
				{ID: "grade-12", Name: "Grade 12"},
			}

			req := httptest.NewRequest(http.MethodGet, "/masterdata/job-grades", nil)
			w := httptest.NewRecorder()

			handler.GetJobGrades(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var grades []masterdata.JobGrade
			err := json.NewDecoder(w.Body).Decode(&grades)
			Expect(err).NotTo(HaveOccurred())

			ids := make([]string, len(grades))
			for i, g := range grades {
				ids[i] = g.ID
			}
			Expect(ids).To(ConsistOf("grade-10", "grade-12"))
		})
	})

	Describe("GetAllowanceTypes", func() {
		It("should serialize dimension rules with their applies-to sets", func() {
			mockRepo.allowanceTypes = []masterdata.AllowanceType{
				{
					ID:   "management-allowance",
					Name: "Management Allowance",
					JobCategoryRule: masterdata.AllowanceRule{
						Enabled:   true,
						Basis:     masterdata.BasisPercentOfBase,
						Value:     10,
						AppliesTo: []string{"managerial"},
					},
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/masterdata/allowance-types", nil)
			w := httptest.NewRecorder()

			handler.GetAllowanceTypes(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var types []masterdata.AllowanceType
			err := json.NewDecoder(w.Body).Decode(&types)
			Expect(err).NotTo(HaveOccurred())
			Expect(types).To(HaveLen(1))
			Expect(types[0].JobCategoryRule.Enabled).To(BeTrue())
			Expect(types[0].JobCategoryRule.AppliesTo).To(ConsistOf("managerial"))
		})
	})
})
