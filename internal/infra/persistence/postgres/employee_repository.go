package postgres

import (
	"context"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// FindByID retrieves a single employee by their unique ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindByTenant retrieves all active employees of a tenant, optionally filtered
// by compensation type.
func (repo *employeeRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID, compensation entity.CompensationType) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel

	query := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantID, true)
	if compensation != "" {
		query = query.Where("compensation_type = ?", compensation.String())
	}

	if err := query.
		Order("last_name ASC, first_name ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find employees by tenant")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// FindByIDs retrieves the employees matching the given IDs within a tenant.
func (repo *employeeRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*entity.Employee, error) {
	if len(ids) == 0 {
		return []*entity.Employee{}, nil
	}

	var employeeModels []*model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find employees by IDs")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// Create persists a new employee entity to the storage.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	// Update the entity with generated values
	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// CountByTenant returns the number of active employees in a tenant.
func (repo *employeeRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count employees by tenant")
	}

	return count, nil
}

// --- Mapper Functions ---

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:               data.ID,
		TenantID:         data.TenantID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		CompensationType: entity.CompensationType(data.CompensationType),
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:               data.ID,
		TenantID:         data.TenantID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		CompensationType: data.CompensationType.String(),
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
