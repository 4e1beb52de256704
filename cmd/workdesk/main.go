package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"workdesk/config"
	"workdesk/internal/delivery"
	"workdesk/internal/delivery/http"
	"workdesk/internal/delivery/http/middleware"
	"workdesk/internal/delivery/http/router/handler"
	"workdesk/internal/domain/service"
	"workdesk/internal/infra/accountapi"
	"workdesk/internal/infra/attrcache"
	"workdesk/internal/infra/auth"
	logs "workdesk/internal/infra/log"
	"workdesk/internal/infra/persistence/postgres"
	"workdesk/internal/infra/pubsub"
	"workdesk/internal/infra/qrcode"
	"workdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultGatewayTimeout = 10 * time.Second

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewEmployeeRepository,
			postgres.NewGeofenceRepository,
			postgres.NewAssignmentRepository,
			postgres.NewGeofenceEventRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			attrcache.NewStore,
			newAccountGateway,
			newQRCodeService,
		),
	)
}

// newAccountGateway creates the downstream deprovisioning client
func newAccountGateway(cfg *config.Config, logger *slog.Logger) (service.AccountGateway, error) {
	if cfg.AccountCloser == nil || cfg.AccountCloser.Endpoint == "" {
		return nil, fmt.Errorf("account closer endpoint must be configured")
	}

	timeout := cfg.AccountCloser.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return accountapi.NewClient(cfg.AccountCloser.Endpoint, timeout, logger), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAccountService,
			impl.NewGeofenceService,
			impl.NewEmployeeService,
			impl.NewDeviceService,
			impl.NewDashboardService,
			impl.NewClockService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIdentityHandler,
			handler.NewAccountHandler,
			handler.NewGeofenceHandler,
			handler.NewEmployeeHandler,
			handler.NewDeviceHandler,
			handler.NewDashboardHandler,
			handler.NewClockHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
