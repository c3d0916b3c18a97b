package routers

import (
	"healthagent-service/internal/app/delivery/http/controllers"
	"healthagent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.Get("/quick-questions", chatController.QuickQuestions)
}
