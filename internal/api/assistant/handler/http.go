package assistantHandler

import (
	assistantService "StatMedan/internal/api/assistant/service"
	"StatMedan/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")
	assistant.Use(h.middleware.NewRateLimiter)

	assistant.Post("/chat", h.Chat)
	assistant.Get("/suggestions", h.GetSuggestions)
	assistant.Get("/categories", h.GetCategories)

	nlp := assistant.Group("/nlp")
	nlp.Post("/test", h.TestNLPProcessing)
}
