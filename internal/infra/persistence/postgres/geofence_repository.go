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

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// Create persists a new geofence.
func (repo *geofenceRepository) Create(ctx context.Context, geofence *entity.Geofence) error {
	geofenceM := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).Create(geofenceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGeofence
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required geofence information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence")
	}

	// Update the entity with generated values
	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// FindByID retrieves a geofence by its unique ID.
func (repo *geofenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&geofenceM), nil
}

// FindByTenant retrieves all geofences owned by a tenant.
func (repo *geofenceRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences by tenant")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// FindAll retrieves every geofence regardless of tenant. Used only by the
// diagnostic listing to surface tenant mismatches.
func (repo *geofenceRepository) FindAll(ctx context.Context) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all geofences")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// Update persists the mutable fields of a geofence. The center columns are
// deliberately excluded from the update list.
func (repo *geofenceRepository) Update(ctx context.Context, geofence *entity.Geofence) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ?", geofence.ID).
		Updates(map[string]any{
			"name":                     geofence.Name,
			"geofence_type":            geofence.GeofenceType.String(),
			"radius":                   geofence.Radius,
			"enforce_clock_in":         geofence.EnforceClockIn,
			"enforce_clock_out":        geofence.EnforceClockOut,
			"auto_clock_out":           geofence.AutoClockOut,
			"alert_on_unexpected_exit": geofence.AlertOnUnexpectedExit,
			"is_active":                geofence.IsActive,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateGeofence
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// Delete removes a geofence by its ID (soft delete).
func (repo *geofenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GeofenceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// CountByTenant returns the number of geofences owned by a tenant.
func (repo *geofenceRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count geofences by tenant")
	}

	return count, nil
}

// --- Mapper Functions ---

// toGeofenceDomain converts a GORM GeofenceModel to a domain Geofence entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	return &entity.Geofence{
		ID:                    data.ID,
		TenantID:              data.TenantID,
		Name:                  data.Name,
		GeofenceType:          entity.GeofenceType(data.GeofenceType),
		CenterLatitude:        data.CenterLatitude,
		CenterLongitude:       data.CenterLongitude,
		Radius:                data.Radius,
		EnforceClockIn:        data.EnforceClockIn,
		EnforceClockOut:       data.EnforceClockOut,
		AutoClockOut:          data.AutoClockOut,
		AlertOnUnexpectedExit: data.AlertOnUnexpectedExit,
		IsActive:              data.IsActive,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromGeofenceDomain converts a domain Geofence entity to a GORM GeofenceModel.
func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceModel{
		ID:                    data.ID,
		TenantID:              data.TenantID,
		Name:                  data.Name,
		GeofenceType:          data.GeofenceType.String(),
		CenterLatitude:        data.CenterLatitude,
		CenterLongitude:       data.CenterLongitude,
		Radius:                data.Radius,
		EnforceClockIn:        data.EnforceClockIn,
		EnforceClockOut:       data.EnforceClockOut,
		AutoClockOut:          data.AutoClockOut,
		AlertOnUnexpectedExit: data.AlertOnUnexpectedExit,
		IsActive:              data.IsActive,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
