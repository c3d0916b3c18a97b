package routers

import (
	"context"
	"healthagent-service/internal/app/config"
	"healthagent-service/internal/app/delivery/http/middlewares"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testJWTSecret = "test-jwt-secret"
	testSessionID = "9b2f3c1e-6a4d-4f7e-8c1b-2d5e6f7a8b9c"
	otherSession  = "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
)

type MockIntakeUsecase struct {
	mock.Mock
}

func (m *MockIntakeUsecase) ValidateIntake(ctx context.Context, request *requests.PatientIntake) *responses.IntakeValidation {
	args := m.Called(ctx, request)
	return args.Get(0).(*responses.IntakeValidation)
}

func (m *MockIntakeUsecase) SubmitIntake(ctx context.Context, sessionID string, request *requests.PatientIntake) (*responses.Analysis, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Analysis), args.Error(1)
}

type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) CreateSession(ctx context.Context) (*responses.CreateSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateSession), args.Error(1)
}

func (m *MockSessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Analysis, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Analysis), args.Error(1)
}

func (m *MockSessionUsecase) GetProgress(ctx context.Context, sessionID string) (*responses.Progress, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Progress), args.Error(1)
}

func (m *MockSessionUsecase) ExportTable(ctx context.Context, sessionID, table string) (*responses.TableExport, error) {
	args := m.Called(ctx, sessionID, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.TableExport), args.Error(1)
}

type MockChatUsecase struct {
	mock.Mock
}

func (m *MockChatUsecase) SendMessage(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChatReply), args.Error(1)
}

func (m *MockChatUsecase) SendGraphTestMessage(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ChatReply), args.Error(1)
}

func (m *MockChatUsecase) ClearChat(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockChatUsecase) CloseChart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockChatUsecase) GetQuickQuestions(ctx context.Context) []responses.QuickQuestionCategory {
	args := m.Called(ctx)
	return args.Get(0).([]responses.QuickQuestionCategory)
}

func newTestMiddlewares() *middlewares.Middlewares {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:       "api",
			Version:              "v1",
			AllowedOrigins:       []string{"*"},
			MaxRequests:          1000,
			RequestBodyLimitInKB: 64,
		},
		JWT: config.AppJWT{
			Secret:        testJWTSecret,
			ExpTimeInHour: 1,
		},
	}
	return middlewares.NewMiddlewares(logger, internalConfig)
}

func bearerFor(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateSessionJWT(sessionID, testJWTSecret, 1)
	require.NoError(t, err)
	return "Bearer " + token
}
