package postgres

import (
	"context"

	"github.com/frahmantamala/personnel-management/internal/masterdata"
	"gorm.io/gorm"
)

// MasterDataRepository implements the masterdata.RepositoryAPI contract using GORM
type MasterDataRepository struct {
	db *gorm.DB
}

// NewMasterDataRepository creates a new master data repository
func NewMasterDataRepository(db *gorm.DB) masterdata.RepositoryAPI {
	return &MasterDataRepository{db: db}
}

func (r *MasterDataRepository) GetDepartments(ctx context.Context) ([]masterdata.Department, error) {
	var departments []masterdata.Department
	err := r.db.WithContext(ctx).Order("id").Find(&departments).Error
	return departments, err
}

func (r *MasterDataRepository) GetJobTitles(ctx context.Context) ([]masterdata.JobTitle, error) {
	var titles []masterdata.JobTitle
	err := r.db.WithContext(ctx).Order("id").Find(&titles).Error
	return titles, err
}

func (r *MasterDataRepository) GetSalaryStructures(ctx context.Context) ([]masterdata.SalaryStructure, error) {
	var structures []masterdata.SalaryStructure
	err := r.db.WithContext(ctx).Order("id").Find(&structures).Error
	return structures, err
}

func (r *MasterDataRepository) GetAllowanceTypes(ctx context.Context) ([]masterdata.AllowanceType, error) {
	var types []masterdata.AllowanceType
	err := r.db.WithContext(ctx).Order("id").Find(&types).Error
	return types, err
}

func (r *MasterDataRepository) GetDepartmentTypes(ctx context.Context) ([]masterdata.DepartmentType, error) {
	var types []masterdata.DepartmentType
	err := r.db.WithContext(ctx).Order("id").Find(&types).Error
	return types, err
}

func (r *MasterDataRepository) GetJobGrades(ctx context.Context) ([]masterdata.JobGrade, error) {
	var grades []masterdata.JobGrade
	err := r.db.WithContext(ctx).Order("id").Find(&grades).Error
	return grades, err
}

func (r *MasterDataRepository) GetJobCategories(ctx context.Context) ([]masterdata.JobCategory, error) {
	var categories []masterdata.JobCategory
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}
