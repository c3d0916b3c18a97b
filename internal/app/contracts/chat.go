package contracts

import (
	"context"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error)
	SendGraphTestMessage(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error)
	ClearChat(ctx context.Context, sessionID string) error
	CloseChart(ctx context.Context, sessionID string) error
	GetQuickQuestions(ctx context.Context) []responses.QuickQuestionCategory
}
