package controllers

import (
	"context"
	"errors"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const chatDeadlineMargin = 5 * time.Second

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
	ChatTimeout time.Duration
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase, chatTimeout time.Duration) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
		ChatTimeout: chatTimeout,
	}
}

type sendChatFunc func(ctx context.Context, sessionID string, request *requests.SendChatMessage) (*responses.ChatReply, error)

func (ctrl *ChatController) Send(w http.ResponseWriter, r *http.Request) {
	ctrl.send(w, r, ctrl.ChatUsecase.SendMessage)
}

func (ctrl *ChatController) GraphTest(w http.ResponseWriter, r *http.Request) {
	ctrl.send(w, r, ctrl.ChatUsecase.SendGraphTestMessage)
}

// send replies 200 even when the analysis service fails. The reply then has success=false
// and the apology text, which the chat panel shows as an assistant message.
func (ctrl *ChatController) send(w http.ResponseWriter, r *http.Request, sendMessage sendChatFunc) {
	sessionID, ok := ctrl.sessionIDParam(w, r)
	if !ok {
		return
	}

	request := new(requests.SendChatMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSendChatMessage(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.ChatTimeout+chatDeadlineMargin)
	defer cancel()

	reply, err := sendMessage(ctx, sessionID, request)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatReplySuccessMessage, reply)
}

func (ctrl *ChatController) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := ctrl.ChatUsecase.ClearChat(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatClearedSuccessMessage, nil)
}

func (ctrl *ChatController) CloseChart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := ctrl.ChatUsecase.CloseChart(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChartClosedSuccessMessage, nil)
}

func (ctrl *ChatController) QuickQuestions(w http.ResponseWriter, r *http.Request) {
	result := ctrl.ChatUsecase.GetQuickQuestions(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuickQuestionsSuccessMessage, result)
}

func (ctrl *ChatController) sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return "", false
	}
	return sessionID, true
}

func (ctrl *ChatController) buildError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
