package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// FallbackQuery replaces a cleaned query that has nothing meaningful left.
	FallbackQuery = "data yang Anda minta"

	fillerThreshold = 0.8
	minFuzzyLength  = 3
)

var nonWordOrSpace = regexp.MustCompile(`[^\w\s]`)

// CleanQuery strips greetings and filler words from text for display.
//
// Greetings are removed as whole words from the lower-cased sentence first, so
// "selamat pagi" goes as a unit. Each remaining token of three or more
// characters is then dropped when it rates above 0.8 against the filler
// vocabulary, which also catches typos such as "tolongg".
func CleanQuery(text string) string {
	lower := strings.ToLower(text)
	withoutGreetings := greetingPattern.ReplaceAllString(lower, "")

	words := strings.Fields(withoutGreetings)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) < minFuzzyLength {
			kept = append(kept, word)
			continue
		}

		match, err := BestMatch(word, fillerWords)
		if err == nil && match.Rating > fillerThreshold {
			continue
		}
		kept = append(kept, word)
	}

	query := strings.Join(kept, " ")
	query = nonWordOrSpace.ReplaceAllString(query, "")
	query = strings.TrimSpace(query)

	if utf8.RuneCountInString(query) <= 2 {
		return FallbackQuery
	}
	return query
}
