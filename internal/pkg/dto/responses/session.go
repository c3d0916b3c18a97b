package responses

import (
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/progress"
)

type CreateSession struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

type IntakeValidation struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type Analysis struct {
	SessionID string                 `json:"session_id"`
	Stage     string                 `json:"stage"`
	Result    *models.AnalysisResult `json:"result"`
}

type Progress struct {
	SessionID string            `json:"session_id"`
	Stage     string            `json:"stage"`
	Snapshot  progress.Snapshot `json:"progress"`
}

// ChatReply is what the chat panel renders for one turn. On failure Success is false and
// Message carries the fallback text; the history is left as it was.
type ChatReply struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Chart       *models.ChartSpec `json:"chart,omitempty"`
	ChartFamily string            `json:"chart_family,omitempty"`
	ActiveChart *models.ChartSpec `json:"active_chart,omitempty"`
	ChatHistory []models.ChatTurn `json:"chat_history"`
}

type QuickQuestionCategory struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Questions []string `json:"questions"`
}

// TableExport is one claims table flattened to strings, ready to be written as CSV.
type TableExport struct {
	Filename string
	Header   []string
	Rows     [][]string
}
