package routers

import (
	"healthagent-service/internal/app/delivery/http/controllers"
	"healthagent-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachIntakeRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeController *controllers.IntakeController) {
	router.Post("/validate", intakeController.Validate)
}
