package controllers

import (
	"context"
	"errors"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
}

func NewSessionController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
	}
}

func (ctrl *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.SessionUsecase.CreateSession(ctx)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SessionCreatedSuccessMessage, result)
}

func (ctrl *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.SessionUsecase.GetSession(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccessMessage, result)
}

func (ctrl *SessionController) Progress(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.SessionUsecase.GetProgress(ctx, sessionID)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressGetSuccessMessage, result)
}

// ExportTable downloads one claims table as CSV. A trailing ".csv" on the table name is accepted.
func (ctrl *SessionController) ExportTable(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := ctrl.sessionIDParam(w, r)
	if !ok {
		return
	}
	table := strings.TrimSuffix(strings.ToLower(chi.URLParam(r, constvars.URLParamTable)), ".csv")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	export, err := ctrl.SessionUsecase.ExportTable(ctx, sessionID, table)
	if err != nil {
		ctrl.buildError(w, err)
		return
	}

	err = utils.BuildCSVResponse(w, export.Filename, export.Header, export.Rows)
	if err != nil {
		ctrl.Log.Error("SessionController.ExportTable error writing CSV",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingTableKey, table),
			zap.Error(err),
		)
	}
}

func (ctrl *SessionController) sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return "", false
	}
	return sessionID, true
}

func (ctrl *SessionController) buildError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
