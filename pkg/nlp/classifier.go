package nlp

import (
	"regexp"
	"strings"
)

var (
	thanksKeywords   = []string{"terima kasih", "thanks"}
	identityKeywords = []string{"siapa", "who", "kamu siapa", "anda siapa"}
	listKeywords     = []string{"list", "daftar", "kategori"}

	nonWord = regexp.MustCompile(`\W`)
)

// DetectQuestionType classifies text into exactly one intent. A greeting
// followed by a real request is an information request, not a greeting.
func DetectQuestionType(text string) Intent {
	lower := strings.ToLower(text)

	hasGreeting := containsAny(lower, greetingKeywords)

	// Plain substring removal, first occurrence per phrase. This can eat
	// letters inside longer words ("pagi" in "pagination").
	residual := lower
	for _, greeting := range greetingKeywords {
		residual = strings.Replace(residual, greeting, "", 1)
	}
	residual = nonWord.ReplaceAllString(strings.TrimSpace(residual), "")

	if hasGreeting && len(residual) > 2 {
		return IntentInformation
	}
	if hasGreeting {
		return IntentGreeting
	}
	if containsAny(lower, thanksKeywords) {
		return IntentThanks
	}
	if containsAny(lower, identityKeywords) {
		return IntentIdentity
	}
	if containsAny(lower, listKeywords) {
		return IntentList
	}

	return IntentInformation
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
