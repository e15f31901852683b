package assistant

import (
	"StatMedan/internal/entity"
	"time"
)

const MessageTypeAssistant = "assistant"

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=500"`
}

type MessageResponse struct {
	ID          string           `json:"id"`
	Content     string           `json:"content"`
	Type        string           `json:"type"`
	Intent      string           `json:"intent"`
	Timestamp   time.Time        `json:"timestamp"`
	Sources     []entity.Source  `json:"sources,omitempty"`
	RelatedData []entity.Dataset `json:"related_data,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Total      int      `json:"total"`
}

type NLPTestRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type NLPTestResponse struct {
	Input          string           `json:"input"`
	Intent         string           `json:"intent"`
	GreetingPrefix string           `json:"greeting_prefix"`
	CleanedQuery   string           `json:"cleaned_query"`
	KeywordMatches []entity.Dataset `json:"keyword_matches"`
	SearchMatches  []entity.Dataset `json:"search_matches"`
	Response       string           `json:"response"`
	ProcessingTime string           `json:"processing_time"`
}
