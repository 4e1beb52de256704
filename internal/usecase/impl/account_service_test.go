package impl

import (
	"context"
	"testing"
	"time"

	"workdesk/config"
	domainerrors "workdesk/internal/domain/errors"
	"workdesk/internal/domain/service"
	mockRepo "workdesk/internal/mocks/repository"
	mockSvc "workdesk/internal/mocks/service"
	"workdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) (usecase.AccountUsecase, *mockSvc.MockAccountGateway, *mockRepo.MockUserRepository) {
	t.Helper()
	mockGateway := mockSvc.NewMockAccountGateway(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	cfg := &config.Config{
		AccountCloser: &config.AccountCloserConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
		},
	}
	svc := NewAccountService(mockGateway, mockUserRepo, cfg, testLogger())

	return svc, mockGateway, mockUserRepo
}

func closeInput() *usecase.CloseAccountInput {
	return &usecase.CloseAccountInput{
		UserID:   uuid.New(),
		TenantID: "tenant-42",
		Reason:   "switching providers",
	}
}

func TestAccountService_CloseAccount_FirstAttemptSucceeds(t *testing.T) {
	svc, mockGateway, mockUserRepo := newAccountService(t)

	ctx := context.Background()
	input := closeInput()

	var sent *service.ClosureRequest
	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Run(func(ctx context.Context, req *service.ClosureRequest) {
			sent = req
		}).
		Return(nil).
		Once()

	mockUserRepo.EXPECT().
		MarkClosed(ctx, input.UserID, input.Reason).
		Return(nil).
		Once()

	require.NoError(t, svc.CloseAccount(ctx, input))
	require.NotNil(t, sent)
	assert.Equal(t, input.UserID.String(), sent.UserID)
	assert.Equal(t, "tenant-42", sent.TenantID)
	assert.Equal(t, "switching providers", sent.Reason)
	assert.Equal(t, 1, sent.Retry)
}

func TestAccountService_CloseAccount_TransientCodeRetried(t *testing.T) {
	svc, mockGateway, mockUserRepo := newAccountService(t)

	ctx := context.Background()
	input := closeInput()

	transient := &service.GatewayError{
		StatusCode: 503,
		Code:       "DB_UNAVAILABLE",
		Body:       `{"code":"DB_UNAVAILABLE"}`,
	}

	attempts := make([]int, 0, 2)
	record := func(ctx context.Context, req *service.ClosureRequest) {
		attempts = append(attempts, req.Retry)
	}

	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Run(record).
		Return(transient).
		Once()
	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Run(record).
		Return(nil).
		Once()

	mockUserRepo.EXPECT().
		MarkClosed(ctx, input.UserID, input.Reason).
		Return(nil).
		Once()

	require.NoError(t, svc.CloseAccount(ctx, input))
	// The attempt counter is forwarded downstream for log correlation.
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestAccountService_CloseAccount_LegacyBodyClassifiedTransient(t *testing.T) {
	svc, mockGateway, _ := newAccountService(t)

	ctx := context.Background()

	// Older deployments send no structured code, just the raw driver text.
	legacy := &service.GatewayError{
		StatusCode: 500,
		Body:       `FATAL: no pg_hba.conf entry for host "10.0.0.7"`,
	}

	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Return(legacy).
		Times(3)

	err := svc.CloseAccount(ctx, closeInput())
	assert.ErrorIs(t, err, domainerrors.ErrClosureDatabaseUnavailable)
}

func TestAccountService_CloseAccount_LegacyBodyRecoversOnThirdAttempt(t *testing.T) {
	svc, mockGateway, mockUserRepo := newAccountService(t)

	ctx := context.Background()
	input := closeInput()

	legacy := &service.GatewayError{
		StatusCode: 500,
		Body:       `FATAL: no pg_hba.conf entry for host "10.0.0.7"`,
	}

	attempts := make([]int, 0, 3)
	record := func(ctx context.Context, req *service.ClosureRequest) {
		attempts = append(attempts, req.Retry)
	}

	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Run(record).
		Return(legacy).
		Times(2)
	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Run(record).
		Return(nil).
		Once()

	mockUserRepo.EXPECT().
		MarkClosed(ctx, input.UserID, input.Reason).
		Return(nil).
		Once()

	require.NoError(t, svc.CloseAccount(ctx, input))
	assert.Equal(t, []int{1, 2, 3}, attempts)
}

func TestAccountService_CloseAccount_NonTransientStopsImmediately(t *testing.T) {
	svc, mockGateway, _ := newAccountService(t)

	ctx := context.Background()

	denied := &service.GatewayError{
		StatusCode: 403,
		Code:       "PERMISSION_DENIED",
		Body:       `{"code":"PERMISSION_DENIED"}`,
	}

	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Return(denied).
		Once()

	err := svc.CloseAccount(ctx, closeInput())
	assert.ErrorIs(t, err, domainerrors.ErrClosureFailed)
}

func TestAccountService_CloseAccount_TransportErrorRetried(t *testing.T) {
	svc, mockGateway, _ := newAccountService(t)

	ctx := context.Background()

	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Return(errors.New("connection refused")).
		Times(3)

	err := svc.CloseAccount(ctx, closeInput())
	assert.ErrorIs(t, err, domainerrors.ErrClosureDatabaseUnavailable)
}

func TestAccountService_CloseAccount_InvalidInput(t *testing.T) {
	svc, _, _ := newAccountService(t)

	ctx := context.Background()

	assert.ErrorIs(t, svc.CloseAccount(ctx, nil), domainerrors.ErrClosureRequestInvalid)

	missingReason := closeInput()
	missingReason.Reason = "   "
	assert.ErrorIs(t, svc.CloseAccount(ctx, missingReason), domainerrors.ErrClosureRequestInvalid)

	missingUser := closeInput()
	missingUser.UserID = uuid.Nil
	assert.ErrorIs(t, svc.CloseAccount(ctx, missingUser), domainerrors.ErrClosureRequestInvalid)

	missingTenant := closeInput()
	missingTenant.TenantID = ""
	assert.ErrorIs(t, svc.CloseAccount(ctx, missingTenant), domainerrors.ErrClosureRequestInvalid)
}

func TestAccountService_CloseAccount_LocalMarkFailure(t *testing.T) {
	svc, mockGateway, mockUserRepo := newAccountService(t)

	ctx := context.Background()
	input := closeInput()

	mockGateway.EXPECT().
		CloseAccount(ctx, mock.AnythingOfType("*service.ClosureRequest")).
		Return(nil).
		Once()

	mockUserRepo.EXPECT().
		MarkClosed(ctx, input.UserID, input.Reason).
		Return(errors.New("deadlock detected")).
		Once()

	err := svc.CloseAccount(ctx, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record account closure")
}

func TestIsTransientClosureError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "structured transient code",
			err:       &service.GatewayError{Code: "DATABASE_ERROR", Body: "{}"},
			transient: true,
		},
		{
			name:      "structured permanent code wins over body",
			err:       &service.GatewayError{Code: "PERMISSION_DENIED", Body: "database exploded"},
			transient: false,
		},
		{
			name:      "legacy pg_hba body",
			err:       &service.GatewayError{Body: "no pg_hba.conf entry for host"},
			transient: true,
		},
		{
			name:      "legacy database body case-insensitive",
			err:       &service.GatewayError{Body: "DATABASE connection lost"},
			transient: true,
		},
		{
			name:      "legacy unrelated body",
			err:       &service.GatewayError{Body: "invalid session token"},
			transient: false,
		},
		{
			name:      "wrapped gateway error",
			err:       errors.Wrap(&service.GatewayError{Code: "DB_UNAVAILABLE"}, "closing account"),
			transient: true,
		},
		{
			name:      "transport failure",
			err:       errors.New("dial tcp: i/o timeout"),
			transient: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.transient, isTransientClosureError(tc.err))
		})
	}
}
