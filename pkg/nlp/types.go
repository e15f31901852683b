package nlp

import (
	"StatMedan/internal/entity"
	"context"
)

type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentThanks      Intent = "thanks"
	IntentIdentity    Intent = "identity"
	IntentList        Intent = "list"
	IntentInformation Intent = "information"
)

func (i Intent) String() string {
	return string(i)
}

func (i Intent) IsValid() bool {
	switch i {
	case IntentGreeting, IntentThanks, IntentIdentity, IntentList, IntentInformation:
		return true
	}
	return false
}

// Match is the best vocabulary entry found for a token.
type Match struct {
	Target string  `json:"target"`
	Rating float64 `json:"rating"`
	Index  int     `json:"index"`
}

type AnalysisResult struct {
	Input          string           `json:"input"`
	Intent         Intent           `json:"intent"`
	GreetingPrefix string           `json:"greeting_prefix"`
	CleanedQuery   string           `json:"cleaned_query"`
	KeywordMatches []entity.Dataset `json:"keyword_matches"`
	SearchMatches  []entity.Dataset `json:"search_matches"`
	Response       string           `json:"response"`
	ProcessingTime string           `json:"processing_time"`
}

// DataSource is the dataset collaborator consulted by the processor.
// Implementations may fail; the processor treats a failure as no results.
type DataSource interface {
	SearchBPSData(query string) ([]entity.Dataset, error)
	DetectSpecificKeywords(query string) ([]entity.Dataset, error)
	GetCategories() ([]string, error)
}

type INLPProcessor interface {
	DetectQuestionType(text string) Intent
	ExtractGreeting(text string) string
	CleanQuery(text string) string
	FindRelevantData(ctx context.Context, text string) []entity.Dataset
	GenerateResponse(ctx context.Context, text string, intent Intent, results []entity.Dataset) string
	Analyze(ctx context.Context, text string) *AnalysisResult
}
