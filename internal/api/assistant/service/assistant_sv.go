package assistantService

import (
	"StatMedan/internal/api/assistant"
	"StatMedan/internal/entity"
	"StatMedan/pkg/bps"
	contextPkg "StatMedan/pkg/context"
	"StatMedan/pkg/nlp"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) Chat(ctx context.Context, req assistant.ChatRequest) (*assistant.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, assistant.ErrEmptyMessage
	}

	intent := s.nlpProcessor.DetectQuestionType(message)
	results := s.nlpProcessor.FindRelevantData(ctx, message)
	content := s.nlpProcessor.GenerateResponse(ctx, message, intent, results)

	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate message id")
		return nil, assistant.ErrFailedToGenerateID
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     intent.String(),
		"results":    len(results),
	}).Debug("Assistant reply composed")

	if err := s.wait(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Client left before the reply was delivered")
		return nil, assistant.ErrResponseCancelled
	}

	resp := &assistant.MessageResponse{
		ID:        id,
		Content:   content,
		Type:      assistant.MessageTypeAssistant,
		Intent:    intent.String(),
		Timestamp: now,
		Sources:   buildSources(intent, results),
	}
	if len(results) > 0 {
		resp.RelatedData = results
	}

	return resp, nil
}

// buildSources cites every result, or the BPS portal for an information
// request that found nothing.
func buildSources(intent nlp.Intent, results []entity.Dataset) []entity.Source {
	if len(results) > 0 {
		sources := make([]entity.Source, 0, len(results))
		for _, r := range results {
			sources = append(sources, entity.Source{Title: r.Title, URL: r.URL})
		}
		return sources
	}

	if intent == nlp.IntentInformation {
		return []entity.Source{{Title: bps.PortalTitle, URL: bps.PortalURL}}
	}

	return nil
}

// wait holds the reply for the configured delay. The computed reply is never
// affected by it.
func (s *assistantService) wait(ctx context.Context) error {
	if s.config.ResponseDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.config.ResponseDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *assistantService) GetSuggestions(ctx context.Context, seed string) (*assistant.SuggestionsResponse, error) {
	suggestions, err := s.catalog.GetSuggestions(seed)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to load suggestions")
		suggestions = []string{}
	}

	if s.config.MaxSuggestions > 0 && len(suggestions) > s.config.MaxSuggestions {
		suggestions = suggestions[:s.config.MaxSuggestions]
	}

	return &assistant.SuggestionsResponse{Suggestions: suggestions}, nil
}

func (s *assistantService) GetCategories(ctx context.Context) (*assistant.CategoriesResponse, error) {
	categories, err := s.catalog.GetCategories()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to load categories")
		return nil, assistant.ErrCategoriesNotLoaded
	}

	return &assistant.CategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	}, nil
}

func (s *assistantService) TestNLPProcessing(ctx context.Context, req assistant.NLPTestRequest) (*assistant.NLPTestResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, assistant.ErrEmptyMessage
	}

	result := s.nlpProcessor.Analyze(ctx, text)

	return &assistant.NLPTestResponse{
		Input:          result.Input,
		Intent:         result.Intent.String(),
		GreetingPrefix: result.GreetingPrefix,
		CleanedQuery:   result.CleanedQuery,
		KeywordMatches: nonNil(result.KeywordMatches),
		SearchMatches:  nonNil(result.SearchMatches),
		Response:       result.Response,
		ProcessingTime: result.ProcessingTime,
	}, nil
}

func nonNil(datasets []entity.Dataset) []entity.Dataset {
	if datasets == nil {
		return []entity.Dataset{}
	}
	return datasets
}
