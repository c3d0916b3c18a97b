package intake

import (
	"context"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockAnalysisClient struct {
	mock.Mock
}

func (m *mockAnalysisClient) RunAnalysisSync(ctx context.Context, request *requests.AnalysisSync) (*responses.AnalysisSync, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AnalysisSync), args.Error(1)
}

func (m *mockAnalysisClient) SendChatMessage(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AnalysisChat), args.Error(1)
}

func (m *mockAnalysisClient) SendGraphTestMessage(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AnalysisChat), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) SaveSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type mockLockerService struct {
	mock.Mock
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}
