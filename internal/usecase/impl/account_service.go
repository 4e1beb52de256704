package impl

import (
	"context"
	"log/slog"
	"strings"

	"workdesk/config"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/repository"
	"workdesk/internal/domain/service"
	"workdesk/internal/infra/retry"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Transient error codes the deprovisioning service reports when its database
// is briefly unreachable. Older deployments send no code at all; those are
// classified by the substring fallback below.
var transientClosureCodes = map[string]struct{}{
	"DB_UNAVAILABLE": {},
	"DATABASE_ERROR": {},
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	gateway  service.AccountGateway
	userRepo repository.UserRepository
	retryCfg retry.Config
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	gateway service.AccountGateway,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	retryCfg := retry.DefaultConfig()
	if cfg.AccountCloser != nil {
		if cfg.AccountCloser.MaxAttempts > 0 {
			retryCfg.MaxAttempts = cfg.AccountCloser.MaxAttempts
		}
		if cfg.AccountCloser.InitialBackoff > 0 {
			retryCfg.InitialBackoff = cfg.AccountCloser.InitialBackoff
		}
		if cfg.AccountCloser.MaxBackoff > 0 {
			retryCfg.MaxBackoff = cfg.AccountCloser.MaxBackoff
		}
	}

	return &accountService{
		gateway:  gateway,
		userRepo: userRepo,
		retryCfg: retryCfg,
		logger:   logger,
	}
}

// CloseAccount requests deprovisioning downstream, retrying transient
// database failures, and marks the local account closed on success.
func (srv *accountService) CloseAccount(ctx context.Context, input *usecase.CloseAccountInput) error {
	if input == nil || strings.TrimSpace(input.Reason) == "" ||
		input.UserID == uuid.Nil || strings.TrimSpace(input.TenantID) == "" {
		return domainerrors.ErrClosureRequestInvalid
	}

	srv.logger.Info("Closing account",
		slog.String("userID", input.UserID.String()),
		slog.String("tenantID", input.TenantID),
	)

	attempt := 0
	err := retry.Do(ctx, srv.retryCfg, srv.logger, "close_account", isTransientClosureError,
		func(ctx context.Context) error {
			attempt++

			return srv.gateway.CloseAccount(ctx, &service.ClosureRequest{
				Reason:   input.Reason,
				UserID:   input.UserID.String(),
				TenantID: input.TenantID,
				Retry:    attempt,
			})
		})
	if err != nil {
		srv.logger.Error("Account closure failed",
			slog.String("userID", input.UserID.String()),
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()),
		)

		if isTransientClosureError(err) {
			return domainerrors.ErrClosureDatabaseUnavailable
		}

		return domainerrors.ErrClosureFailed
	}

	if err := srv.userRepo.MarkClosed(ctx, input.UserID, input.Reason); err != nil {
		// The downstream already deprovisioned; surface the local failure but
		// keep its cause in the logs, not the response.
		srv.logger.Error("Account deprovisioned downstream but local close failed",
			slog.String("userID", input.UserID.String()),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to record account closure")
	}

	srv.logger.Info("Account closed",
		slog.String("userID", input.UserID.String()),
		slog.Int("attempts", attempt),
	)

	return nil
}

// isTransientClosureError classifies a gateway failure as retryable. The
// structured error code is authoritative when present; otherwise the raw body
// is scanned for the database failure signatures older deployments emit
// ("pg_hba.conf" connection errors and generic "database" messages).
func isTransientClosureError(err error) bool {
	var gatewayErr *service.GatewayError
	if !errors.As(err, &gatewayErr) {
		// Transport-level failures (timeouts, refused connections) are
		// worth retrying too.
		return true
	}

	if gatewayErr.Code != "" {
		_, transient := transientClosureCodes[gatewayErr.Code]

		return transient
	}

	body := strings.ToLower(gatewayErr.Body)

	return strings.Contains(body, "pg_hba.conf") || strings.Contains(body, "database")
}
