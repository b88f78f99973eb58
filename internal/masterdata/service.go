package masterdata

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/personnel-management/internal"
)

// RepositoryAPI is the Master Data Store contract. Each call returns the full
// current snapshot of its table; the core does not paginate or stream.
type RepositoryAPI interface {
	GetDepartments(ctx context.Context) ([]Department, error)
	GetJobTitles(ctx context.Context) ([]JobTitle, error)
	GetSalaryStructures(ctx context.Context) ([]SalaryStructure, error)
	GetAllowanceTypes(ctx context.Context) ([]AllowanceType, error)
	GetDepartmentTypes(ctx context.Context) ([]DepartmentType, error)
	GetJobGrades(ctx context.Context) ([]JobGrade, error)
	GetJobCategories(ctx context.Context) ([]JobCategory, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Snapshot reads the reference tables once and assembles the indexed view the
// resolver and the workflow consume. Job titles violating the head-of-
// department invariant are sanitized here: management fields on a non-head
// title are dropped and logged.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := internal.WithTimeout(ctx, 0)
	defer cancel()

	departments, err := s.repo.GetDepartments(ctx)
	if err != nil {
		s.logger.Error("failed to load departments", "error", err)
		return nil, err
	}

	jobTitles, err := s.repo.GetJobTitles(ctx)
	if err != nil {
		s.logger.Error("failed to load job titles", "error", err)
		return nil, err
	}

	structures, err := s.repo.GetSalaryStructures(ctx)
	if err != nil {
		s.logger.Error("failed to load salary structures", "error", err)
		return nil, err
	}

	allowanceTypes, err := s.repo.GetAllowanceTypes(ctx)
	if err != nil {
		s.logger.Error("failed to load allowance types", "error", err)
		return nil, err
	}

	for i := range jobTitles {
		title := &jobTitles[i]
		if !title.IsHeadOfDepartment && title.HasManagementFields() {
			s.logger.Warn("job title carries management fields without head flag, ignoring them",
				"job_title_id", title.ID)
			title.ManagesDepartmentTypeID = nil
			title.ManagedDepartmentIDs = nil
		}
	}

	for _, at := range allowanceTypes {
		for dimension, rule := range map[string]AllowanceRule{
			"job_title":       at.JobTitleRule,
			"job_grade":       at.JobGradeRule,
			"job_category":    at.JobCategoryRule,
			"department_type": at.DepartmentTypeRule,
		} {
			if rule.Enabled && len(rule.AppliesTo) == 0 {
				s.logger.Warn("allowance rule enabled with empty applies-to set, it will never contribute",
					"allowance_type_id", at.ID,
					"dimension", dimension)
			}
		}
	}

	return NewSnapshot(departments, jobTitles, structures, allowanceTypes), nil
}

func (s *Service) GetDepartments(ctx context.Context) ([]Department, error) {
	departments, err := s.repo.GetDepartments(ctx)
	if err != nil {
		s.logger.Error("failed to get departments", "error", err)
		return nil, err
	}
	return departments, nil
}

func (s *Service) GetJobTitles(ctx context.Context) ([]JobTitle, error) {
	titles, err := s.repo.GetJobTitles(ctx)
	if err != nil {
		s.logger.Error("failed to get job titles", "error", err)
		return nil, err
	}
	return titles, nil
}

func (s *Service) GetSalaryStructures(ctx context.Context) ([]SalaryStructure, error) {
	structures, err := s.repo.GetSalaryStructures(ctx)
	if err != nil {
		s.logger.Error("failed to get salary structures", "error", err)
		return nil, err
	}
	return structures, nil
}

func (s *Service) GetAllowanceTypes(ctx context.Context) ([]AllowanceType, error) {
	types, err := s.repo.GetAllowanceTypes(ctx)
	if err != nil {
		s.logger.Error("failed to get allowance types", "error", err)
		return nil, err
	}
	return types, nil
}

func (s *Service) GetDepartmentTypes(ctx context.Context) ([]DepartmentType, error) {
	types, err := s.repo.GetDepartmentTypes(ctx)
	if err != nil {
		s.logger.Error("failed to get department types", "error", err)
		return nil, err
	}
	return types, nil
}

func (s *Service) GetJobGrades(ctx context.Context) ([]JobGrade, error) {
	grades, err := s.repo.GetJobGrades(ctx)
	if err != nil {
		s.logger.Error("failed to get job grades", "error", err)
		return nil, err
	}
	return grades, nil
}

func (s *Service) GetJobCategories(ctx context.Context) ([]JobCategory, error) {
	categories, err := s.repo.GetJobCategories(ctx)
	if err != nil {
		s.logger.Error("failed to get job categories", "error", err)
		return nil, err
	}
	return categories, nil
}
