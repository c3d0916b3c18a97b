package intake

import (
	"context"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/normalizer"
	"healthagent-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	intakeUsecaseInstance contracts.IntakeUsecase
	onceIntakeUsecase     sync.Once
)

// lockMargin keeps the session lock alive a little past the analysis deadline.
const lockMargin = 30 * time.Second

type intakeUsecase struct {
	AnalysisClient    contracts.AnalysisClient
	SessionRepository contracts.SessionRepository
	LockerService     contracts.LockerService
	Normalizer        *normalizer.Normalizer
	AnalysisTimeout   time.Duration
	Log               *zap.Logger
	now               func() time.Time
}

func NewIntakeUsecase(
	analysisClient contracts.AnalysisClient,
	sessionRepository contracts.SessionRepository,
	lockerService contracts.LockerService,
	fieldNormalizer *normalizer.Normalizer,
	analysisTimeout time.Duration,
	logger *zap.Logger,
) contracts.IntakeUsecase {
	onceIntakeUsecase.Do(func() {
		intakeUsecaseInstance = newIntakeUsecase(analysisClient, sessionRepository, lockerService, fieldNormalizer, analysisTimeout, logger)
	})
	return intakeUsecaseInstance
}

func newIntakeUsecase(
	analysisClient contracts.AnalysisClient,
	sessionRepository contracts.SessionRepository,
	lockerService contracts.LockerService,
	fieldNormalizer *normalizer.Normalizer,
	analysisTimeout time.Duration,
	logger *zap.Logger,
) *intakeUsecase {
	return &intakeUsecase{
		AnalysisClient:    analysisClient,
		SessionRepository: sessionRepository,
		LockerService:     lockerService,
		Normalizer:        fieldNormalizer,
		AnalysisTimeout:   analysisTimeout,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *intakeUsecase) ValidateIntake(ctx context.Context, request *requests.PatientIntake) *responses.IntakeValidation {
	requestID := utils.GetRequestID(ctx)
	fieldErrors := utils.ValidateIntake(request, uc.now())
	uc.Log.Info("intakeUsecase.ValidateIntake called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingErrorFieldsKey, len(fieldErrors)),
	)
	return &responses.IntakeValidation{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	}
}

// SubmitIntake runs one analysis for the session. The form is validated first and nothing
// is sent when any field is rejected. A failed call puts the session back on the form.
func (uc *intakeUsecase) SubmitIntake(ctx context.Context, sessionID string, request *requests.PatientIntake) (*responses.Analysis, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("intakeUsecase.SubmitIntake called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	fieldErrors := utils.ValidateIntake(request, uc.now())
	if len(fieldErrors) > 0 {
		uc.Log.Info("intakeUsecase.SubmitIntake intake rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingErrorFieldsKey, fieldNames(fieldErrors)),
		)
		return nil, exceptions.ErrIntakeValidation(fieldErrors)
	}

	lockKey := constvars.RedisSessionLockKey + sessionID
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.AnalysisTimeout+lockMargin)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSessionLocked(nil, sessionID)
	}
	defer func() {
		unlockErr := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		if unlockErr != nil {
			uc.Log.Error("intakeUsecase.SubmitIntake error releasing session lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	intake := *request
	utils.SanitizePatientIntake(&intake)

	session.BeginAnalysis(utils.PatientDisplayName(&intake), uc.now())
	err = uc.SessionRepository.SaveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	analysisResponse, err := uc.AnalysisClient.RunAnalysisSync(ctx, utils.MapPatientIntakeToAnalysisSync(&intake))
	if err != nil {
		uc.Log.Error("intakeUsecase.SubmitIntake error calling AnalysisClient.RunAnalysisSync",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		session.FailAnalysis(uc.now())
		saveErr := uc.SessionRepository.SaveSession(context.WithoutCancel(ctx), session)
		if saveErr != nil {
			uc.Log.Error("intakeUsecase.SubmitIntake error resetting session to form",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(saveErr),
			)
		}
		return nil, exceptions.ErrAnalysisRequestFailed(err)
	}

	result := uc.Normalizer.Normalize(analysisResponse.AnalysisResults)
	session.CompleteAnalysis(analysisResponse.SessionID, result, uc.now())
	err = uc.SessionRepository.SaveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "analysis_completed", requestID,
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingRecordCountKey, len(result.ICD10Data)+len(result.NDCData)),
		zap.Int(constvars.LoggingRiskScoreKey, result.HeartRisk.Score),
	)

	return &responses.Analysis{
		SessionID: session.ID,
		Stage:     session.Stage,
		Result:    session.Result,
	}, nil
}

// fieldNames keeps rejected values out of the logs.
func fieldNames(fieldErrors map[string]string) []string {
	names := make([]string, 0, len(fieldErrors))
	for name := range fieldErrors {
		names = append(names, name)
	}
	return names
}
