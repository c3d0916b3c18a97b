package routers

import (
	"healthagent-service/internal/app/delivery/http/controllers"
	"healthagent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	sessionController *controllers.SessionController,
	intakeController *controllers.IntakeController,
	chatController *controllers.ChatController,
) {
	router.Post("/", sessionController.Create)

	router.Route("/{session_id}", func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Get("/", sessionController.Get)
		r.Get("/progress", sessionController.Progress)
		r.Get("/tables/{table}", sessionController.ExportTable)

		r.Post("/analysis", intakeController.Submit)

		r.Post("/chat", chatController.Send)
		r.Post("/chat/graph-test", chatController.GraphTest)
		r.Delete("/chat", chatController.Clear)
		r.Delete("/chart", chatController.CloseChart)
	})
}
