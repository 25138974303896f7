package copilotHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	copilotService "github.com/ranjini26/lifeos/internal/api/copilot/service"
	"github.com/ranjini26/lifeos/internal/middleware"
)

type CopilotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	copilotService copilotService.ICopilotService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs copilotService.ICopilotService,
) *CopilotHandler {
	return &CopilotHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		copilotService: cs,
	}
}

func (h *CopilotHandler) Start(srv fiber.Router) {
	copilot := srv.Group("/copilot")

	copilot.Post("/suggestions", h.middleware.NewTokenMiddleware, h.GenerateSuggestions)
	copilot.Post("/improve-task", h.middleware.NewTokenMiddleware, h.ImproveTask)
	copilot.Post("/daily-plan", h.middleware.NewTokenMiddleware, h.GenerateDailyPlan)
}
