package contracts

import (
	"context"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
)

// AnalysisClient talks to the remote analysis service. It keeps no per-user state: the
// backend session handle travels inside every chat request.
type AnalysisClient interface {
	RunAnalysisSync(ctx context.Context, request *requests.AnalysisSync) (*responses.AnalysisSync, error)
	SendChatMessage(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error)
	SendGraphTestMessage(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error)
}
