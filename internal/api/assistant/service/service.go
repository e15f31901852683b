package assistantService

import (
	"StatMedan/internal/api/assistant"
	"StatMedan/pkg/bps"
	"StatMedan/pkg/nlp"
	"StatMedan/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	Chat(ctx context.Context, req assistant.ChatRequest) (*assistant.MessageResponse, error)
	GetSuggestions(ctx context.Context, seed string) (*assistant.SuggestionsResponse, error)
	GetCategories(ctx context.Context) (*assistant.CategoriesResponse, error)
	TestNLPProcessing(ctx context.Context, req assistant.NLPTestRequest) (*assistant.NLPTestResponse, error)
}

type assistantService struct {
	log          *logrus.Logger
	nlpProcessor nlp.INLPProcessor
	catalog      bps.ICatalog
	utils        utils.IUtils
	config       *AssistantConfig
}

type AssistantConfig struct {
	ResponseDelay  time.Duration `json:"response_delay"`
	MaxSuggestions int           `json:"max_suggestions"`
}

func DefaultConfig() *AssistantConfig {
	return &AssistantConfig{
		ResponseDelay:  0,
		MaxSuggestions: 6,
	}
}

func NewAssistantService(
	log *logrus.Logger,
	nlpProcessor nlp.INLPProcessor,
	catalog bps.ICatalog,
	utils utils.IUtils,
	config *AssistantConfig,
) IAssistantService {
	if config == nil {
		config = DefaultConfig()
	}

	return &assistantService{
		log:          log,
		nlpProcessor: nlpProcessor,
		catalog:      catalog,
		utils:        utils,
		config:       config,
	}
}
