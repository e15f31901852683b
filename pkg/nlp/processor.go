package nlp

import (
	"StatMedan/internal/entity"
	contextPkg "StatMedan/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type NLPProcessor struct {
	source DataSource
	log    *logrus.Logger
}

func NewProcessor(source DataSource, log *logrus.Logger) INLPProcessor {
	return &NLPProcessor{
		source: source,
		log:    log,
	}
}

func (nlp *NLPProcessor) DetectQuestionType(text string) Intent {
	return DetectQuestionType(text)
}

func (nlp *NLPProcessor) ExtractGreeting(text string) string {
	return ExtractGreeting(text)
}

func (nlp *NLPProcessor) CleanQuery(text string) string {
	return CleanQuery(text)
}

// FindRelevantData merges keyword-triggered matches with free-text search
// matches. Keyword matches come first in their own order; search matches are
// appended only when their URL is not already present.
func (nlp *NLPProcessor) FindRelevantData(ctx context.Context, text string) []entity.Dataset {
	keywordResults := nlp.keywordResults(ctx, text)
	searchResults := nlp.searchResults(ctx, text)

	return MergeResults(keywordResults, searchResults)
}

func (nlp *NLPProcessor) Analyze(ctx context.Context, text string) *AnalysisResult {
	startTime := time.Now()

	intent := nlp.DetectQuestionType(text)
	results := nlp.FindRelevantData(ctx, text)
	keywordResults := nlp.keywordResults(ctx, text)
	response := nlp.GenerateResponse(ctx, text, intent, results)

	return &AnalysisResult{
		Input:          text,
		Intent:         intent,
		GreetingPrefix: ExtractGreeting(text),
		CleanedQuery:   CleanQuery(text),
		KeywordMatches: keywordResults,
		SearchMatches:  ExcludeResults(results, keywordResults),
		Response:       response,
		ProcessingTime: time.Since(startTime).String(),
	}
}

// MergeResults appends every search result whose URL is not yet in keyword.
func MergeResults(keyword, search []entity.Dataset) []entity.Dataset {
	combined := make([]entity.Dataset, 0, len(keyword)+len(search))
	combined = append(combined, keyword...)

	for _, item := range search {
		if !containsURL(combined, item.URL) {
			combined = append(combined, item)
		}
	}

	return combined
}

// ExcludeResults returns the results whose URL does not appear in exclude.
func ExcludeResults(results, exclude []entity.Dataset) []entity.Dataset {
	remaining := make([]entity.Dataset, 0, len(results))
	for _, item := range results {
		if !containsURL(exclude, item.URL) {
			remaining = append(remaining, item)
		}
	}
	return remaining
}

func containsURL(items []entity.Dataset, url string) bool {
	for _, item := range items {
		if item.URL == url {
			return true
		}
	}
	return false
}

func (nlp *NLPProcessor) keywordResults(ctx context.Context, text string) []entity.Dataset {
	results, err := nlp.source.DetectSpecificKeywords(text)
	if err != nil {
		nlp.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Keyword detection failed, continuing without keyword matches")
		return nil
	}
	return results
}

func (nlp *NLPProcessor) searchResults(ctx context.Context, text string) []entity.Dataset {
	results, err := nlp.source.SearchBPSData(text)
	if err != nil {
		nlp.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Dataset search failed, continuing without search matches")
		return nil
	}
	return results
}

func (nlp *NLPProcessor) categories(ctx context.Context) []string {
	categories, err := nlp.source.GetCategories()
	if err != nil {
		nlp.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to load categories")
		return nil
	}
	return categories
}
