package chat

import (
	"context"
	"errors"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/chart"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	chatUsecaseInstance contracts.ChatUsecase
	onceChatUsecase     sync.Once
)

type sendFunc func(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error)

type chatUsecase struct {
	AnalysisClient    contracts.AnalysisClient
	SessionRepository contracts.SessionRepository
	Log               *zap.Logger
	now               func() time.Time
}

func NewChatUsecase(analysisClient contracts.AnalysisClient, sessionRepository contracts.SessionRepository, logger *zap.Logger) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = newChatUsecase(analysisClient, sessionRepository, logger)
	})
	return chatUsecaseInstance
}

func newChatUsecase(analysisClient contracts.AnalysisClient, sessionRepository contracts.SessionRepository, logger *zap.Logger) *chatUsecase {
	return &chatUsecase{
		AnalysisClient:    analysisClient,
		SessionRepository: sessionRepository,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *chatUsecase) SendMessage(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error) {
	return uc.send(ctx, "chatUsecase.SendMessage", uc.AnalysisClient.SendChatMessage, sessionID, request)
}

func (uc *chatUsecase) SendGraphTestMessage(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error) {
	return uc.send(ctx, "chatUsecase.SendGraphTestMessage", uc.AnalysisClient.SendGraphTestMessage, sessionID, request)
}

// send asks one question with the session's own handle and history. A failed call is not an
// error for the caller: the reply carries a fallback message and the session is left as it was.
func (uc *chatUsecase) send(ctx context.Context, caller string, sendToBackend sendFunc, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	backendReply, err := sendToBackend(ctx, &requests.AnalysisChat{
		SessionID:   session.AnalysisSessionID,
		Question:    request.Message,
		ChatHistory: session.ChatHistory,
	})
	if err != nil {
		uc.Log.Error(caller+" error calling AnalysisClient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return failedReply(session, err), nil
	}

	resolved := chart.Resolve(backendReply.Response, backendReply.GraphPresent, backendReply.JSONGraphData)
	session.RecordExchange(request.Message, resolved.Text, backendReply.UpdatedChatHistory, resolved.Chart, uc.now())
	err = uc.SessionRepository.SaveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	reply := &responses.ChatReply{
		Success:     true,
		Message:     resolved.Text,
		Chart:       resolved.Chart,
		ActiveChart: session.ActiveChart,
		ChatHistory: session.ChatHistory,
	}
	if resolved.Chart != nil {
		reply.ChartFamily = string(chart.FamilyOf(resolved.Chart.GraphType))
	}

	uc.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHistoryLengthKey, len(session.ChatHistory)),
		zap.String(constvars.LoggingChartTypeKey, chartType(resolved.Chart)),
	)
	return reply, nil
}

func failedReply(session *models.Session, err error) *responses.ChatReply {
	message := constvars.ErrClientChatFailed
	if errors.Is(err, exceptions.ErrNoAnalysisSession) {
		message = constvars.ErrClientMissingAnalysisSession
	}
	return &responses.ChatReply{
		Success:     false,
		Message:     message,
		ActiveChart: session.ActiveChart,
		ChatHistory: session.ChatHistory,
	}
}

func chartType(spec *models.ChartSpec) string {
	if spec == nil {
		return ""
	}
	return spec.GraphType
}

func (uc *chatUsecase) ClearChat(ctx context.Context, sessionID string) error {
	uc.Log.Info("chatUsecase.ClearChat called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	session.ClearChat(uc.now())
	return uc.SessionRepository.SaveSession(ctx, session)
}

func (uc *chatUsecase) CloseChart(ctx context.Context, sessionID string) error {
	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.ActiveChart == nil {
		return nil
	}
	session.CloseChart(uc.now())
	return uc.SessionRepository.SaveSession(ctx, session)
}

func (uc *chatUsecase) GetQuickQuestions(ctx context.Context) []responses.QuickQuestionCategory {
	return quickQuestionCatalogue
}
