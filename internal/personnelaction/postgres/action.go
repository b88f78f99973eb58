package postgres

import (
	"context"
	"time"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/personnelaction"
	"gorm.io/gorm"
)

// ActionRepository implements the personnelaction.Repository interface using GORM
type ActionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new personnel action repository
func NewActionRepository(db *gorm.DB) personnelaction.Repository {
	return &ActionRepository{db: db}
}

func (r *ActionRepository) Create(ctx context.Context, action *personnelaction.PersonnelAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

func (r *ActionRepository) GetByID(ctx context.Context, id string) (*personnelaction.PersonnelAction, error) {
	var action personnelaction.PersonnelAction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&action).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrActionNotFound
		}
		return nil, err
	}
	return &action, nil
}

func (r *ActionRepository) GetByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]*personnelaction.PersonnelAction, error) {
	var actions []*personnelaction.PersonnelAction
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&actions).Error
	return actions, err
}

func (r *ActionRepository) GetAll(ctx context.Context, limit, offset int) ([]*personnelaction.PersonnelAction, error) {
	var actions []*personnelaction.PersonnelAction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&actions).Error
	return actions, err
}

// UpdateStatus moves a pending action to the given status. The pending guard
// keeps completed and rejected final: a write that lost the race against a
// concurrent approve or reject affects no rows and surfaces as an invalid
// transition instead of reopening a terminal action.
func (r *ActionRepository) UpdateStatus(ctx context.Context, id, status string, processedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&personnelaction.PersonnelAction{}).
		Where("id = ? AND status = ?", id, personnelaction.StatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrInvalidTransition
	}
	return nil
}

// CompleteWithMutation applies the employee column changes and flips the
// action to completed inside one transaction. The status update carries a
// pending guard, so a concurrently completed action rolls the employee
// mutation back instead of replaying it.
func (r *ActionRepository) CompleteWithMutation(ctx context.Context, action *personnelaction.PersonnelAction, employeeChanges map[string]interface{}) error {
	processedAt := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(employeeChanges) > 0 {
			changes := make(map[string]interface{}, len(employeeChanges)+1)
			for k, v := range employeeChanges {
				changes[k] = v
			}
			changes["updated_at"] = processedAt

			result := tx.Model(&employee.Employee{}).
				Where("id = ?", action.EmployeeID).
				Updates(changes)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return internal.ErrEmployeeNotFound
			}
		}

		result := tx.Model(&personnelaction.PersonnelAction{}).
			Where("id = ? AND status = ?", action.ID, personnelaction.StatusPending).
			Updates(map[string]interface{}{
				"status":       personnelaction.StatusCompleted,
				"processed_at": processedAt,
				"updated_at":   processedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return internal.ErrInvalidTransition
		}

		return nil
	})
	if err != nil {
		return err
	}

	action.Complete(processedAt)
	return nil
}

func (r *ActionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&personnelaction.PersonnelAction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrActionNotFound
	}
	return nil
}
