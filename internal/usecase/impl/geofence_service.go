package impl

import (
	"context"
	"log/slog"

	"workdesk/internal/domain/entity"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/domain/service"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// geofenceService implements the GeofenceUsecase interface.
type geofenceService struct {
	geofenceRepo   repository.GeofenceRepository
	assignmentRepo repository.AssignmentRepository
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// NewGeofenceService is the constructor for geofenceService.
func NewGeofenceService(
	geofenceRepo repository.GeofenceRepository,
	assignmentRepo repository.AssignmentRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.GeofenceUsecase {
	return &geofenceService{
		geofenceRepo:   geofenceRepo,
		assignmentRepo: assignmentRepo,
		qrService:      qrService,
		logger:         logger,
	}
}

// ListGeofences retrieves all geofences owned by a tenant.
func (srv *geofenceService) ListGeofences(ctx context.Context, tenantID uuid.UUID) ([]*entity.Geofence, error) {
	geofences, err := srv.geofenceRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	return geofences, nil
}

// GetGeofence retrieves a single geofence, enforcing tenant ownership. A
// geofence of another tenant is reported as not found, never as forbidden.
func (srv *geofenceService) GetGeofence(ctx context.Context, tenantID, geofenceID uuid.UUID) (*entity.Geofence, error) {
	geofence, err := srv.findOwned(ctx, tenantID, geofenceID)
	if err != nil {
		return nil, err
	}

	return geofence, nil
}

// CreateGeofence validates the submitted draft by driving it through the
// editing flow, then persists it.
func (srv *geofenceService) CreateGeofence(ctx context.Context, tenantID uuid.UUID, input *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	srv.logger.Info("Creating geofence", "tenantID", tenantID, "name", input.Name)

	wizard := NewGeofenceWizard()
	if err := wizard.Begin(); err != nil {
		return nil, err
	}

	if input.CenterLatitude == nil || input.CenterLongitude == nil {
		return nil, domainerrors.ErrGeofenceCenterRequired
	}
	if err := wizard.PlaceCenter(*input.CenterLatitude, *input.CenterLongitude); err != nil {
		return nil, err
	}

	if err := wizard.Configure(
		input.Name,
		entity.GeofenceType(input.GeofenceType),
		input.Radius,
		input.EnforceClockIn,
		input.EnforceClockOut,
		input.AutoClockOut,
		input.AlertOnUnexpectedExit,
	); err != nil {
		return nil, err
	}

	if err := wizard.BeginSave(); err != nil {
		return nil, err
	}

	geofence := wizard.Draft()
	geofence.TenantID = tenantID

	if err := srv.geofenceRepo.Create(ctx, &geofence); err != nil {
		wizard.FailSave()
		if errors.Is(err, repository.ErrDuplicateGeofence) {
			return nil, domainerrors.ErrConflict.WrapMessage("a geofence with this name already exists")
		}

		return nil, errors.Wrap(err, "failed to create geofence")
	}
	wizard.CompleteSave()

	srv.logger.Info("Geofence created", "geofenceID", geofence.ID, "state", wizard.State())

	return &geofence, nil
}

// UpdateGeofence patches the mutable fields of a geofence. Any attempt to
// move the center is rejected outright.
func (srv *geofenceService) UpdateGeofence(ctx context.Context, tenantID, geofenceID uuid.UUID, input *usecase.UpdateGeofenceInput) (*entity.Geofence, error) {
	if input.CenterLatitude != nil || input.CenterLongitude != nil {
		return nil, domainerrors.ErrGeofenceCenterImmutable
	}

	geofence, err := srv.findOwned(ctx, tenantID, geofenceID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrGeofenceNameRequired
		}
		geofence.Name = *input.Name
	}
	if input.GeofenceType != nil {
		geofenceType := entity.GeofenceType(*input.GeofenceType)
		if !geofenceType.IsValid() {
			return nil, domainerrors.ErrGeofenceTypeInvalid
		}
		geofence.GeofenceType = geofenceType
	}
	if input.Radius != nil {
		if *input.Radius < entity.GeofenceMinRadius || *input.Radius > entity.GeofenceMaxRadius {
			return nil, domainerrors.ErrGeofenceRadiusOutOfRange
		}
		geofence.Radius = *input.Radius
	}
	if input.EnforceClockIn != nil {
		geofence.EnforceClockIn = *input.EnforceClockIn
	}
	if input.EnforceClockOut != nil {
		geofence.EnforceClockOut = *input.EnforceClockOut
	}
	if input.AutoClockOut != nil {
		geofence.AutoClockOut = *input.AutoClockOut
	}
	if input.AlertOnUnexpectedExit != nil {
		geofence.AlertOnUnexpectedExit = *input.AlertOnUnexpectedExit
	}
	if input.IsActive != nil {
		geofence.IsActive = *input.IsActive
	}

	if err := srv.geofenceRepo.Update(ctx, geofence); err != nil {
		if errors.Is(err, repository.ErrDuplicateGeofence) {
			return nil, domainerrors.ErrConflict.WrapMessage("a geofence with this name already exists")
		}

		return nil, errors.Wrap(err, "failed to update geofence")
	}

	return geofence, nil
}

// DeleteGeofence removes a geofence after the tenant ownership check.
func (srv *geofenceService) DeleteGeofence(ctx context.Context, tenantID, geofenceID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, tenantID, geofenceID); err != nil {
		return err
	}

	if err := srv.geofenceRepo.Delete(ctx, geofenceID); err != nil {
		return errors.Wrap(err, "failed to delete geofence")
	}

	srv.logger.Info("Geofence deleted", "geofenceID", geofenceID)

	return nil
}

// DebugListGeofences lists every geofence annotated with tenant visibility.
// Surfaces zones hidden by tenant mismatches when diagnosing "my zones are
// missing" reports.
func (srv *geofenceService) DebugListGeofences(ctx context.Context, tenantID uuid.UUID) ([]*usecase.GeofenceDebugEntry, error) {
	geofences, err := srv.geofenceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all geofences")
	}

	entries := make([]*usecase.GeofenceDebugEntry, 0, len(geofences))
	for _, geofence := range geofences {
		assignments, err := srv.assignmentRepo.FindByGeofence(ctx, geofence.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count assignments for debug listing")
		}

		entries = append(entries, &usecase.GeofenceDebugEntry{
			Geofence:        geofence,
			OwnedByTenant:   geofence.TenantID == tenantID,
			AssignmentCount: len(assignments),
		})
	}

	return entries, nil
}

// SiteQRCode renders the clock-in QR code of a geofenced site.
func (srv *geofenceService) SiteQRCode(ctx context.Context, tenantID, geofenceID uuid.UUID) ([]byte, error) {
	if _, err := srv.findOwned(ctx, tenantID, geofenceID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateSiteQR(geofenceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate site QR code")
	}

	return png, nil
}

// findOwned loads a geofence and verifies tenant ownership.
func (srv *geofenceService) findOwned(ctx context.Context, tenantID, geofenceID uuid.UUID) (*entity.Geofence, error) {
	geofence, err := srv.geofenceRepo.FindByID(ctx, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, domainerrors.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence")
	}

	if geofence.TenantID != tenantID {
		srv.logger.Warn("Geofence requested across tenant boundary",
			"geofenceID", geofenceID,
			"ownerTenant", geofence.TenantID,
			"sessionTenant", tenantID,
		)

		return nil, domainerrors.ErrGeofenceNotFound
	}

	return geofence, nil
}
