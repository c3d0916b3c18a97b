package contracts

import (
	"context"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
)

type IntakeUsecase interface {
	ValidateIntake(ctx context.Context, request *requests.PatientIntake) *responses.IntakeValidation
	SubmitIntake(ctx context.Context, sessionID string, request *requests.PatientIntake) (*responses.Analysis, error)
}
