package responses

import (
	"healthagent-service/internal/app/models"

	"github.com/goccy/go-json"
)

// AnalysisSync is the analysis service reply. AnalysisResults stays raw so the normalizer can
// read it tolerantly.
type AnalysisSync struct {
	Success         bool            `json:"success"`
	SessionID       string          `json:"session_id"`
	AnalysisResults json.RawMessage `json:"analysis_results"`
}

type AnalysisChat struct {
	Success            bool              `json:"success"`
	SessionID          string            `json:"session_id,omitempty"`
	Response           string            `json:"response"`
	UpdatedChatHistory []models.ChatTurn `json:"updated_chat_history"`
	GraphPresent       int               `json:"graph_present,omitempty"`
	JSONGraphData      *models.ChartSpec `json:"json_graph_data,omitempty"`
}
