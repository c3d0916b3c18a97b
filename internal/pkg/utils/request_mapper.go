package utils

import (
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"strings"
)

// MapGender turns the form labels into the single letters the analysis service expects.
// Anything other than Female is sent as male.
func MapGender(gender string) string {
	if gender == constvars.GenderFemale {
		return constvars.AnalysisGenderFemale
	}
	return constvars.AnalysisGenderMale
}

func MapPatientIntakeToAnalysisSync(intake *requests.PatientIntake) *requests.AnalysisSync {
	return &requests.AnalysisSync{
		FirstName:   intake.FirstName,
		LastName:    intake.LastName,
		SSN:         intake.NationalID,
		DateOfBirth: intake.DateOfBirth,
		Gender:      MapGender(intake.Gender),
		ZipCode:     intake.ZipCode,
	}
}

func PatientDisplayName(intake *requests.PatientIntake) string {
	return strings.TrimSpace(strings.TrimSpace(intake.FirstName) + " " + strings.TrimSpace(intake.LastName))
}
