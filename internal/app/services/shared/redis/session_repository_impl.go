package redis

import (
	"context"
	"errors"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionRepositoryInstance contracts.SessionRepository
	onceSessionRepository     sync.Once
)

type sessionRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

func NewSessionRepository(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionRepository {
	onceSessionRepository.Do(func() {
		sessionRepositoryInstance = newSessionRepository(redisRepository, ttl, logger)
	})
	return sessionRepositoryInstance
}

func newSessionRepository(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) *sessionRepository {
	return &sessionRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}

// SaveSession writes the whole session and restarts its TTL.
func (r *sessionRepository) SaveSession(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	key := sessionKey(session.ID)
	r.Log.Info("sessionRepository.SaveSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingSessionStageKey, session.Stage),
	)

	err := r.RedisRepository.Set(ctx, key, session, r.TTL)
	if err != nil {
		r.Log.Error("sessionRepository.SaveSession error calling RedisRepository.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	key := sessionKey(sessionID)
	r.Log.Info("sessionRepository.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	data, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		r.Log.Error("sessionRepository.GetSession error calling RedisRepository.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		r.Log.Info("sessionRepository.GetSession session not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		return nil, exceptions.ErrSessionNotFound(errors.New("redis key missing"), sessionID)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		r.Log.Error("sessionRepository.GetSession error unmarshalling session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if session.ChatHistory == nil {
		session.ChatHistory = []models.ChatTurn{}
	}
	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("sessionRepository.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return r.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
