package session

import (
	"context"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/progress"
	"healthagent-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

type sessionUsecase struct {
	SessionRepository contracts.SessionRepository
	Simulator         *progress.Simulator
	JWTSecret         string
	JWTExpTimeInHour  int
	Log               *zap.Logger
	now               func() time.Time
}

func NewSessionUsecase(
	sessionRepository contracts.SessionRepository,
	simulator *progress.Simulator,
	jwtSecret string,
	jwtExpTimeInHour int,
	logger *zap.Logger,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = newSessionUsecase(sessionRepository, simulator, jwtSecret, jwtExpTimeInHour, logger)
	})
	return sessionUsecaseInstance
}

func newSessionUsecase(
	sessionRepository contracts.SessionRepository,
	simulator *progress.Simulator,
	jwtSecret string,
	jwtExpTimeInHour int,
	logger *zap.Logger,
) *sessionUsecase {
	return &sessionUsecase{
		SessionRepository: sessionRepository,
		Simulator:         simulator,
		JWTSecret:         jwtSecret,
		JWTExpTimeInHour:  jwtExpTimeInHour,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *sessionUsecase) CreateSession(ctx context.Context) (*responses.CreateSession, error) {
	requestID := utils.GetRequestID(ctx)
	sessionID := utils.GenerateSessionID()
	uc.Log.Info("sessionUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session := models.NewSession(sessionID, uc.now())
	err := uc.SessionRepository.SaveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.JWTSecret, uc.JWTExpTimeInHour)
	if err != nil {
		uc.Log.Error("sessionUsecase.CreateSession error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("sessionUsecase.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return &responses.CreateSession{
		SessionID: sessionID,
		Token:     token,
	}, nil
}

func (uc *sessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.Analysis, error) {
	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &responses.Analysis{
		SessionID: session.ID,
		Stage:     session.Stage,
		Result:    session.Result,
	}, nil
}

// GetProgress derives the animation from the time the analysis started, so polling never
// writes to the session.
func (uc *sessionUsecase) GetProgress(ctx context.Context, sessionID string) (*responses.Progress, error) {
	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var snapshot progress.Snapshot
	switch session.Stage {
	case constvars.SessionStageComplete:
		snapshot = uc.Simulator.SnapshotAt(0, true)
	case constvars.SessionStageProcessing:
		var elapsed time.Duration
		if session.StartedAt != nil {
			elapsed = uc.now().Sub(*session.StartedAt)
		}
		snapshot = uc.Simulator.SnapshotAt(elapsed, false)
	default:
		snapshot = progress.Idle()
	}

	uc.Log.Debug("sessionUsecase.GetProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionStageKey, session.Stage),
		zap.Int(constvars.LoggingPercentKey, snapshot.Percent),
	)
	return &responses.Progress{
		SessionID: session.ID,
		Stage:     session.Stage,
		Snapshot:  snapshot,
	}, nil
}

func (uc *sessionUsecase) ExportTable(ctx context.Context, sessionID, table string) (*responses.TableExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.ExportTable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingTableKey, table),
	)

	if !isKnownTable(table) {
		return nil, exceptions.ErrUnknownTable(nil, table)
	}

	session, err := uc.SessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != constvars.SessionStageComplete || session.Result == nil {
		return nil, exceptions.ErrAnalysisNotReady(nil, sessionID, session.Stage)
	}

	export := buildTableExport(session.Result, table)
	uc.Log.Info("sessionUsecase.ExportTable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(export.Rows)),
	)
	return export, nil
}

func isKnownTable(table string) bool {
	switch table {
	case constvars.TableICD10, constvars.TableServiceCodes, constvars.TableNDC, constvars.TableMedications:
		return true
	}
	return false
}

// buildTableExport uses the same column names the result JSON carries.
func buildTableExport(result *models.AnalysisResult, table string) *responses.TableExport {
	export := &responses.TableExport{
		Filename: "claims_data_" + table + ".csv",
		Rows:     [][]string{},
	}

	switch table {
	case constvars.TableICD10:
		export.Header = []string{"code", "meaning", "date", "provider", "zip", "position", "source", "path"}
		for _, record := range result.ICD10Data {
			export.Rows = append(export.Rows, []string{
				record.Code, record.Meaning, record.Date, record.Provider, record.Zip,
				strconv.Itoa(record.Position), record.Source, record.Path,
			})
		}
	case constvars.TableServiceCodes:
		export.Header = []string{"serviceCode", "serviceDescription", "date", "path"}
		for _, record := range result.ServiceCodeData {
			export.Rows = append(export.Rows, []string{record.ServiceCode, record.ServiceDescription, record.Date, record.Path})
		}
	case constvars.TableNDC:
		export.Header = []string{"code", "label", "fillDate", "description", "path"}
		for _, record := range result.NDCData {
			export.Rows = append(export.Rows, []string{record.Code, record.Label, record.FillDate, record.Description, record.Path})
		}
	case constvars.TableMedications:
		export.Header = []string{"code", "label", "fillDate", "description", "billingProvider", "prescribingProvider", "path"}
		for _, record := range result.MedicationData {
			export.Rows = append(export.Rows, []string{
				record.Code, record.Label, record.FillDate, record.Description,
				record.BillingProvider, record.PrescribingProvider, record.Path,
			})
		}
	}
	return export
}
