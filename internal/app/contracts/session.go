package contracts

import (
	"context"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/dto/responses"
)

type SessionRepository interface {
	SaveSession(ctx context.Context, session *models.Session) error
	// GetSession returns ErrSessionNotFound when the key expired or never existed.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type SessionUsecase interface {
	CreateSession(ctx context.Context) (*responses.CreateSession, error)
	GetSession(ctx context.Context, sessionID string) (*responses.Analysis, error)
	GetProgress(ctx context.Context, sessionID string) (*responses.Progress, error)
	ExportTable(ctx context.Context, sessionID, table string) (*responses.TableExport, error)
}
