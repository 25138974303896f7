package assistantHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	assistantService "github.com/ranjini26/lifeos/internal/api/assistant/service"
	"github.com/ranjini26/lifeos/internal/middleware"
	"github.com/ranjini26/lifeos/pkg/nlp"
	"github.com/ranjini26/lifeos/pkg/utils"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
	classifier       nlp.IClassifier
	utils            utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
	classifier nlp.IClassifier,
	utils utils.IUtils,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
		classifier:       classifier,
		utils:            utils,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	assistant.Post("/command", h.middleware.NewTokenMiddleware, h.Command)
	assistant.Post("/voice", h.middleware.NewTokenMiddleware, h.Voice)
	assistant.Get("/search", h.middleware.NewTokenMiddleware, h.Search)
	assistant.Get("/insights", h.middleware.NewTokenMiddleware, h.Insights)
	assistant.Get("/history", h.middleware.NewTokenMiddleware, h.History)

	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
	assistant.Use("/stream", wsMiddleware, h.middleware.NewTokenMiddleware)
	assistant.Get("/stream", websocket.New(h.handleStream))
}
