package postgres

import (
	"context"
	"time"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
// Set lookups return empty slices rather than not-found errors.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// FindByGeofence retrieves the current assignments of a geofence.
func (repo *assignmentRepository) FindByGeofence(ctx context.Context, geofenceID uuid.UUID) ([]*entity.EmployeeGeofenceAssignment, error) {
	var assignmentModels []*model.EmployeeGeofenceAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("geofence_id = ?", geofenceID).
		Order("assigned_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assignments by geofence")
	}

	assignments := make([]*entity.EmployeeGeofenceAssignment, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments, nil
}

// FindGeofencesByEmployee retrieves the geofence IDs an employee is assigned to.
func (repo *assignmentRepository) FindGeofencesByEmployee(ctx context.Context, employeeID uuid.UUID) ([]uuid.UUID, error) {
	var geofenceIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeGeofenceAssignmentModel{}).
		Where("employee_id = ?", employeeID).
		Pluck("geofence_id", &geofenceIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences by employee")
	}

	return geofenceIDs, nil
}

// ReplaceForGeofence atomically replaces the full assignment set of a geofence.
// Callers run this inside a transaction via TransactionManager so the delete
// and the inserts commit together.
func (repo *assignmentRepository) ReplaceForGeofence(ctx context.Context, geofenceID uuid.UUID, employeeIDs []uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("geofence_id = ?", geofenceID).
		Delete(&model.EmployeeGeofenceAssignmentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear assignments")
	}

	if len(employeeIDs) == 0 {
		return nil
	}

	now := time.Now()
	assignmentModels := make([]*model.EmployeeGeofenceAssignmentModel, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		assignmentModels = append(assignmentModels, &model.EmployeeGeofenceAssignmentModel{
			EmployeeID: employeeID,
			GeofenceID: geofenceID,
			AssignedAt: now,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&assignmentModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEmployeeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignments")
	}

	return nil
}

// CountActiveByTenant returns the number of assignments on active geofences of a tenant.
func (repo *assignmentRepository) CountActiveByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeGeofenceAssignmentModel{}).
		Joins("JOIN geofences ON geofences.id = employee_geofence_assignments.geofence_id").
		Where("geofences.tenant_id = ? AND geofences.is_active = ? AND geofences.deleted_at IS NULL", tenantID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count assignments by tenant")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAssignmentDomain converts a GORM assignment model to a domain entity.
func toAssignmentDomain(data *model.EmployeeGeofenceAssignmentModel) *entity.EmployeeGeofenceAssignment {
	if data == nil {
		return nil
	}

	return &entity.EmployeeGeofenceAssignment{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		GeofenceID: data.GeofenceID,
		AssignedAt: data.AssignedAt,
	}
}
