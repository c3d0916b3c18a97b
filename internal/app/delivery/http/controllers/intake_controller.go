package controllers

import (
	"context"
	"errors"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Submit waits on the analysis service, so its deadline sits a little past the outbound one.
const submitDeadlineMargin = 10 * time.Second

type IntakeController struct {
	Log             *zap.Logger
	IntakeUsecase   contracts.IntakeUsecase
	AnalysisTimeout time.Duration
}

func NewIntakeController(logger *zap.Logger, intakeUsecase contracts.IntakeUsecase, analysisTimeout time.Duration) *IntakeController {
	return &IntakeController{
		Log:             logger,
		IntakeUsecase:   intakeUsecase,
		AnalysisTimeout: analysisTimeout,
	}
}

func (ctrl *IntakeController) Validate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PatientIntake)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizePatientIntake(request)

	// The form renders field messages from the body, so an invalid intake is still a 200.
	result := ctrl.IntakeUsecase.ValidateIntake(r.Context(), request)
	message := constvars.IntakeValidSuccessMessage
	if !result.Valid {
		message = constvars.ErrClientIntakeInvalid
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *IntakeController) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if err := utils.ValidateUrlParamID(sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamSessionID))
		return
	}

	request := new(requests.PatientIntake)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizePatientIntake(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.AnalysisTimeout+submitDeadlineMargin)
	defer cancel()

	result, err := ctrl.IntakeUsecase.SubmitIntake(ctx, sessionID, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalysisCompletedSuccessMessage, result)
}
