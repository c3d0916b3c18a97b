package models

import (
	"healthagent-service/internal/pkg/constvars"
	"time"
)

// Session is the state one browser tab holds across the intake, progress, results and chat screens.
// AnalysisSessionID is the backend handle; chat turns are only possible while it is set.
type Session struct {
	ID                string          `json:"id"`
	Stage             string          `json:"stage"`
	PatientName       string          `json:"patientName,omitempty"`
	AnalysisSessionID string          `json:"analysisSessionId,omitempty"`
	StartedAt         *time.Time      `json:"startedAt,omitempty"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`
	Result            *AnalysisResult `json:"result,omitempty"`
	ChatHistory       []ChatTurn      `json:"chatHistory"`
	ActiveChart       *ChartSpec      `json:"activeChart,omitempty"`
	TimeModel
}

func NewSession(id string, now time.Time) *Session {
	session := &Session{
		ID:          id,
		Stage:       constvars.SessionStageForm,
		ChatHistory: []ChatTurn{},
	}
	session.SetCreatedAtUpdatedAt(now)
	return session
}

func (s *Session) HasAnalysisHandle() bool {
	return s.AnalysisSessionID != ""
}

func (s *Session) BeginAnalysis(patientName string, now time.Time) {
	s.Stage = constvars.SessionStageProcessing
	s.PatientName = patientName
	s.StartedAt = &now
	s.CompletedAt = nil
	s.SetUpdatedAt(now)
}

// FailAnalysis puts the session back on the editable form. Earlier results are dropped.
func (s *Session) FailAnalysis(now time.Time) {
	s.Stage = constvars.SessionStageForm
	s.StartedAt = nil
	s.CompletedAt = nil
	s.SetUpdatedAt(now)
}

// CompleteAnalysis stores a fresh result. A new handle starts a new conversation.
func (s *Session) CompleteAnalysis(analysisSessionID string, result *AnalysisResult, now time.Time) {
	s.Stage = constvars.SessionStageComplete
	s.AnalysisSessionID = analysisSessionID
	s.Result = result
	s.CompletedAt = &now
	s.ChatHistory = []ChatTurn{}
	s.ActiveChart = nil
	s.SetUpdatedAt(now)
}

// ClearChat empties the conversation and forgets the backend handle. The backend session itself is left alone.
func (s *Session) ClearChat(now time.Time) {
	s.ChatHistory = []ChatTurn{}
	s.ActiveChart = nil
	s.AnalysisSessionID = ""
	s.SetUpdatedAt(now)
}

func (s *Session) CloseChart(now time.Time) {
	s.ActiveChart = nil
	s.SetUpdatedAt(now)
}

// RecordExchange stores one answered question. When the backend sends its own copy of the
// history that copy replaces ours, otherwise both turns are appended. A chart replaces the
// one on screen.
func (s *Session) RecordExchange(question, answer string, updatedHistory []ChatTurn, chart *ChartSpec, now time.Time) {
	if len(updatedHistory) > 0 {
		s.ChatHistory = append([]ChatTurn{}, updatedHistory...)
	} else {
		s.ChatHistory = append(s.ChatHistory,
			ChatTurn{Role: constvars.ChatRoleUser, Content: question},
			ChatTurn{Role: constvars.ChatRoleAssistant, Content: answer},
		)
	}
	if chart != nil {
		s.ActiveChart = chart
	}
	s.SetUpdatedAt(now)
}
