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

// geofenceEventRepository implements the repository.GeofenceEventRepository interface.
type geofenceEventRepository struct {
	db *gorm.DB
}

// NewGeofenceEventRepository is the constructor for geofenceEventRepository.
func NewGeofenceEventRepository(db *gorm.DB) repository.GeofenceEventRepository {
	return &geofenceEventRepository{
		db: db,
	}
}

// Create persists a new boundary event.
func (repo *geofenceEventRepository) Create(ctx context.Context, event *entity.GeofenceEvent) error {
	eventM := fromGeofenceEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGeofenceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID

	return nil
}

// FindLastByGeofenceAndEmployee retrieves the most recent event of one
// employee on one geofence, or nil when none exists.
func (repo *geofenceEventRepository) FindLastByGeofenceAndEmployee(ctx context.Context, geofenceID, employeeID uuid.UUID) (*entity.GeofenceEvent, error) {
	var eventM model.GeofenceEventModel

	err := repo.db.WithContext(ctx).
		Where("geofence_id = ? AND employee_id = ?", geofenceID, employeeID).
		Order("occurred_at DESC").
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last geofence event")
	}

	return toGeofenceEventDomain(&eventM), nil
}

// --- Mapper Functions ---

// toGeofenceEventDomain converts a GORM GeofenceEventModel to a domain entity.
func toGeofenceEventDomain(data *model.GeofenceEventModel) *entity.GeofenceEvent {
	if data == nil {
		return nil
	}

	return &entity.GeofenceEvent{
		ID:         data.ID,
		GeofenceID: data.GeofenceID,
		EmployeeID: data.EmployeeID,
		EventType:  entity.GeofenceEventType(data.EventType),
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Distance:   data.Distance,
		OccurredAt: data.OccurredAt,
	}
}

// fromGeofenceEventDomain converts a domain entity to a GORM GeofenceEventModel.
func fromGeofenceEventDomain(data *entity.GeofenceEvent) *model.GeofenceEventModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceEventModel{
		ID:         data.ID,
		GeofenceID: data.GeofenceID,
		EmployeeID: data.EmployeeID,
		EventType:  string(data.EventType),
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Distance:   data.Distance,
		OccurredAt: data.OccurredAt,
	}
}
