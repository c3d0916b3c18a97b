package redis

import (
	"context"
	"errors"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestSessionRepository_SaveSession(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	repo := newSessionRepository(redisRepo, 2*time.Hour, zap.NewNop())
	session := models.NewSession("abc", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	redisRepo.On("Set", mock.Anything, constvars.RedisSessionKeyPrefix+"abc", session, 2*time.Hour).Return(nil)

	err := repo.SaveSession(context.Background(), session)

	assert.NoError(t, err)
	redisRepo.AssertExpectations(t)
}

func TestSessionRepository_GetSession(t *testing.T) {
	stored := models.NewSession("abc", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	stored.AnalysisSessionID = "backend-1"
	storedJSON, err := json.Marshal(stored)
	require.NoError(t, err)

	tests := []struct {
		name       string
		data       string
		getErr     error
		wantStatus int
		wantHandle string
	}{
		{name: "found", data: string(storedJSON), wantHandle: "backend-1"},
		{name: "missing", data: "", wantStatus: http.StatusNotFound},
		{name: "corrupt", data: "{not json", wantStatus: http.StatusBadRequest},
		{name: "redis down", getErr: exceptions.ErrRedisGet(errors.New("connection refused")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := new(mockRedisRepository)
			repo := newSessionRepository(redisRepo, time.Hour, zap.NewNop())
			redisRepo.On("Get", mock.Anything, constvars.RedisSessionKeyPrefix+"abc").Return(tt.data, tt.getErr)

			session, err := repo.GetSession(context.Background(), "abc")

			if tt.wantStatus != 0 {
				var customErr *exceptions.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, tt.wantStatus, customErr.StatusCode)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHandle, session.AnalysisSessionID)
			assert.NotNil(t, session.ChatHistory)
		})
	}
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	repo := newSessionRepository(redisRepo, time.Hour, zap.NewNop())
	redisRepo.On("Delete", mock.Anything, constvars.RedisSessionKeyPrefix+"abc").Return(nil)

	assert.NoError(t, repo.DeleteSession(context.Background(), "abc"))
	redisRepo.AssertExpectations(t)
}
