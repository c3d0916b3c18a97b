package routers

import (
	"bytes"
	"healthagent-service/internal/app/delivery/http/controllers"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestChatRouter_QuickQuestions(t *testing.T) {
	logger := zap.NewNop()
	mockChatUsecase := new(MockChatUsecase)
	chatController := controllers.NewChatController(logger, mockChatUsecase, time.Second)

	router := chi.NewRouter()
	attachChatRoutes(router, newTestMiddlewares(), chatController)

	mockChatUsecase.On("GetQuickQuestions", mock.Anything).Return([]responses.QuickQuestionCategory{
		{Key: "records", Label: "Records", Questions: []string{"Show my claims"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/quick-questions", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Show my claims")
}

func TestSessionRouter_Chat(t *testing.T) {
	router, _, _, mockChatUsecase := newSessionTestRouter()

	t.Run("Reply", func(t *testing.T) {
		mockChatUsecase.On("SendMessage", mock.Anything, testSessionID, mock.MatchedBy(func(r *requests.SendChatMessage) bool {
			return r.Message == "What is my risk score?"
		})).Return(&responses.ChatReply{
			Success: true,
			Message: "Your score is 26.",
			ChatHistory: []models.ChatTurn{
				{Role: constvars.ChatRoleUser, Content: "What is my risk score?"},
				{Role: constvars.ChatRoleAssistant, Content: "Your score is 26."},
			},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/"+testSessionID+"/chat", bytes.NewBufferString(`{"message":"  What is my risk score? "}`))
		req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, testSessionID))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Your score is 26.")
	})

	t.Run("Backend failure is still a chat reply", func(t *testing.T) {
		mockChatUsecase.On("SendGraphTestMessage", mock.Anything, testSessionID, mock.Anything).
			Return(&responses.ChatReply{Success: false, Message: constvars.ErrClientChatFailed}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/"+testSessionID+"/chat/graph-test", bytes.NewBufferString(`{"message":"chart it"}`))
		req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, testSessionID))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientChatFailed)
	})

	t.Run("Empty message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/"+testSessionID+"/chat", bytes.NewBufferString(`{"message":"   "}`))
		req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, testSessionID))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Clear chat and close chart", func(t *testing.T) {
		mockChatUsecase.On("ClearChat", mock.Anything, testSessionID).Return(nil).Once()
		mockChatUsecase.On("CloseChart", mock.Anything, testSessionID).Return(nil).Once()

		for _, path := range []string{"/chat", "/chart"} {
			req := httptest.NewRequest(http.MethodDelete, "/"+testSessionID+path, nil)
			req.Header.Set(constvars.HeaderAuthorization, bearerFor(t, testSessionID))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, path)
		}
		mockChatUsecase.AssertExpectations(t)
	})
}
