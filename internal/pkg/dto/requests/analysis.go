package requests

import "healthagent-service/internal/app/models"

// AnalysisSync is the body of POST /analyze-sync on the analysis service.
type AnalysisSync struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	SSN         string `json:"ssn"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	ZipCode     string `json:"zip_code"`
}

// AnalysisChat is the body of POST /chat and POST /chat/graph-test on the analysis service.
type AnalysisChat struct {
	SessionID   string            `json:"session_id"`
	Question    string            `json:"question"`
	ChatHistory []models.ChatTurn `json:"chat_history"`
}
