package chat

import (
	"context"
	"errors"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func readySession() *models.Session {
	session := models.NewSession("s-1", fixedNow)
	session.CompleteAnalysis("backend-1", &models.AnalysisResult{}, fixedNow)
	return session
}

func newTestUsecase(client *mockAnalysisClient, repo *mockSessionRepository) *chatUsecase {
	uc := newChatUsecase(client, repo, zap.NewNop())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestChatUsecase_SendMessage_AppendsTurns(t *testing.T) {
	client := new(mockAnalysisClient)
	repo := new(mockSessionRepository)
	session := readySession()

	repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
	repo.On("SaveSession", mock.Anything, session).Return(nil)
	client.On("SendChatMessage", mock.Anything, &requests.AnalysisChat{
		SessionID:   "backend-1",
		Question:    "Show me a pie chart of medications",
		ChatHistory: []models.ChatTurn{},
	}).Return(&responses.AnalysisChat{
		Success:  true,
		Response: `Here you go ***GRAPH_START***{"graph_type":"medication_distribution","title":"Meds","categories":["A","B"],"data":[2,1]}***GRAPH_END*** done`,
	}, nil)

	reply, err := newTestUsecase(client, repo).SendMessage(context.Background(), "s-1", &requests.SendChatMessage{Message: "Show me a pie chart of medications"})

	require.NoError(t, err)
	assert.True(t, reply.Success)
	assert.Equal(t, "Here you go  done", reply.Message)
	require.NotNil(t, reply.Chart)
	assert.Equal(t, "Meds", reply.Chart.Title)
	assert.Equal(t, "pie", reply.ChartFamily)
	assert.Equal(t, reply.Chart, reply.ActiveChart)
	assert.Equal(t, []models.ChatTurn{
		{Role: constvars.ChatRoleUser, Content: "Show me a pie chart of medications"},
		{Role: constvars.ChatRoleAssistant, Content: "Here you go  done"},
	}, reply.ChatHistory)
	repo.AssertExpectations(t)
}

func TestChatUsecase_SendMessage_PrefersStructuredChart(t *testing.T) {
	client := new(mockAnalysisClient)
	repo := new(mockSessionRepository)
	session := readySession()
	structured := &models.ChartSpec{GraphType: "timeline", Title: "Structured"}
	updated := []models.ChatTurn{{Role: "user", Content: "q"}, {Role: "assistant", Content: "a"}}

	repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
	repo.On("SaveSession", mock.Anything, session).Return(nil)
	client.On("SendChatMessage", mock.Anything, mock.Anything).Return(&responses.AnalysisChat{
		Success:            true,
		Response:           `a ***GRAPH_START***{"graph_type":"bar_chart"}***GRAPH_END***`,
		UpdatedChatHistory: updated,
		GraphPresent:       1,
		JSONGraphData:      structured,
	}, nil)

	reply, err := newTestUsecase(client, repo).SendMessage(context.Background(), "s-1", &requests.SendChatMessage{Message: "q"})

	require.NoError(t, err)
	assert.Equal(t, "a ", reply.Message)
	assert.Same(t, structured, reply.Chart)
	assert.Equal(t, "line", reply.ChartFamily)
	assert.Equal(t, updated, reply.ChatHistory)
}

func TestChatUsecase_SendMessage_GraphFlagWithoutData(t *testing.T) {
	client := new(mockAnalysisClient)
	repo := new(mockSessionRepository)
	session := readySession()

	repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
	repo.On("SaveSession", mock.Anything, session).Return(nil)
	client.On("SendChatMessage", mock.Anything, mock.Anything).Return(&responses.AnalysisChat{
		Success:      true,
		Response:     `x ***GRAPH_START***{"graph_type":"bar_chart","title":"Inline"}***GRAPH_END***`,
		GraphPresent: 1,
	}, nil)

	reply, err := newTestUsecase(client, repo).SendMessage(context.Background(), "s-1", &requests.SendChatMessage{Message: "q"})

	require.NoError(t, err)
	require.NotNil(t, reply.Chart)
	assert.Equal(t, "Inline", reply.Chart.Title)
}

func TestChatUsecase_SendMessage_FailureLeavesHistory(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"transport", exceptions.ErrSendHTTPRequest(errors.New("timeout")), "Sorry, I encountered an error. Please try again."},
		{"missing handle", exceptions.ErrMissingAnalysisSession(exceptions.ErrNoAnalysisSession), "Session ID is missing. Please run analysis first."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockAnalysisClient)
			repo := new(mockSessionRepository)
			session := readySession()
			session.RecordExchange("old q", "old a", nil, nil, fixedNow)

			repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
			client.On("SendChatMessage", mock.Anything, mock.Anything).Return(nil, tt.err)

			reply, err := newTestUsecase(client, repo).SendMessage(context.Background(), "s-1", &requests.SendChatMessage{Message: "new q"})

			require.NoError(t, err)
			assert.False(t, reply.Success)
			assert.Equal(t, tt.wantMessage, reply.Message)
			assert.Len(t, reply.ChatHistory, 2)
			repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
		})
	}
}

func TestChatUsecase_SendGraphTestMessage(t *testing.T) {
	client := new(mockAnalysisClient)
	repo := new(mockSessionRepository)
	session := readySession()

	repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
	repo.On("SaveSession", mock.Anything, session).Return(nil)
	client.On("SendGraphTestMessage", mock.Anything, mock.Anything).Return(&responses.AnalysisChat{Success: true, Response: "plain"}, nil)

	reply, err := newTestUsecase(client, repo).SendGraphTestMessage(context.Background(), "s-1", &requests.SendChatMessage{Message: "q"})

	require.NoError(t, err)
	assert.Equal(t, "plain", reply.Message)
	assert.Nil(t, reply.Chart)
	client.AssertNotCalled(t, "SendChatMessage", mock.Anything, mock.Anything)
}

func TestChatUsecase_ClearChat(t *testing.T) {
	repo := new(mockSessionRepository)
	session := readySession()
	session.RecordExchange("q", "a", nil, &models.ChartSpec{GraphType: "bar_chart"}, fixedNow)
	repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
	repo.On("SaveSession", mock.Anything, session).Return(nil)

	err := newTestUsecase(new(mockAnalysisClient), repo).ClearChat(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Empty(t, session.ChatHistory)
	assert.Nil(t, session.ActiveChart)
	assert.False(t, session.HasAnalysisHandle())
}

func TestChatUsecase_CloseChart(t *testing.T) {
	t.Run("closes active chart", func(t *testing.T) {
		repo := new(mockSessionRepository)
		session := readySession()
		session.RecordExchange("q", "a", nil, &models.ChartSpec{GraphType: "bar_chart"}, fixedNow)
		repo.On("GetSession", mock.Anything, "s-1").Return(session, nil)
		repo.On("SaveSession", mock.Anything, session).Return(nil)

		err := newTestUsecase(new(mockAnalysisClient), repo).CloseChart(context.Background(), "s-1")

		require.NoError(t, err)
		assert.Nil(t, session.ActiveChart)
		assert.Len(t, session.ChatHistory, 2)
	})

	t.Run("nothing open", func(t *testing.T) {
		repo := new(mockSessionRepository)
		repo.On("GetSession", mock.Anything, "s-1").Return(readySession(), nil)

		err := newTestUsecase(new(mockAnalysisClient), repo).CloseChart(context.Background(), "s-1")

		require.NoError(t, err)
		repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
	})
}

func TestChatUsecase_GetQuickQuestions(t *testing.T) {
	categories := newTestUsecase(new(mockAnalysisClient), new(mockSessionRepository)).GetQuickQuestions(context.Background())

	require.Len(t, categories, 6)
	keys := make([]string, 0, len(categories))
	for _, category := range categories {
		keys = append(keys, category.Key)
		assert.NotEmpty(t, category.Questions)
	}
	assert.Equal(t, []string{"records", "medications", "risk", "analysis", "predict", "care"}, keys)
}
