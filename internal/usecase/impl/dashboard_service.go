package impl

import (
	"context"
	"log/slog"

	"workdesk/internal/domain/repository"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	employeeRepo   repository.EmployeeRepository
	geofenceRepo   repository.GeofenceRepository
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	employeeRepo repository.EmployeeRepository,
	geofenceRepo repository.GeofenceRepository,
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		employeeRepo:   employeeRepo,
		geofenceRepo:   geofenceRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// GetSummary gathers the tenant's headline counts in parallel. A failing
// count is logged and reported as zero; one broken table must not blank the
// whole dashboard.
func (srv *dashboardService) GetSummary(ctx context.Context, tenantID uuid.UUID) (*usecase.DashboardSummary, error) {
	summary := &usecase.DashboardSummary{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		summary.Employees = srv.countOrZero(groupCtx, "employees", func(ctx context.Context) (int64, error) {
			return srv.employeeRepo.CountByTenant(ctx, tenantID)
		})

		return nil
	})
	group.Go(func() error {
		summary.Geofences = srv.countOrZero(groupCtx, "geofences", func(ctx context.Context) (int64, error) {
			return srv.geofenceRepo.CountByTenant(ctx, tenantID)
		})

		return nil
	})
	group.Go(func() error {
		summary.Assignments = srv.countOrZero(groupCtx, "assignments", func(ctx context.Context) (int64, error) {
			return srv.assignmentRepo.CountActiveByTenant(ctx, tenantID)
		})

		return nil
	})
	group.Go(func() error {
		summary.Accounts = srv.countOrZero(groupCtx, "accounts", func(ctx context.Context) (int64, error) {
			return srv.userRepo.CountByTenant(ctx, tenantID)
		})

		return nil
	})

	// The goroutines never return errors; Wait only synchronizes them.
	_ = group.Wait()

	return summary, nil
}

// countOrZero runs one count, swallowing its error to zero after logging.
func (srv *dashboardService) countOrZero(ctx context.Context, name string, count func(ctx context.Context) (int64, error)) int64 {
	value, err := count(ctx)
	if err != nil {
		srv.logger.Warn("Dashboard count failed, reporting zero",
			slog.String("count", name),
			slog.String("error", err.Error()),
		)

		return 0
	}

	return value
}
