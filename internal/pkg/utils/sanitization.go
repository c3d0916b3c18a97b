package utils

import (
	"healthagent-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizePatientIntake(input *requests.PatientIntake) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(input.Gender)
	input.ZipCode = strings.TrimSpace(input.ZipCode)
	input.NationalID = strings.TrimSpace(input.NationalID)
}

func SanitizeSendChatMessage(input *requests.SendChatMessage) {
	input.Message = strings.TrimSpace(input.Message)
}
