package nlp

import (
	"errors"
	"strings"
)

var ErrEmptyVocabulary = errors.New("nlp: empty vocabulary")

// CompareStrings returns the Sørensen-Dice coefficient of the character bigrams
// of both strings, ignoring whitespace. Identical strings rate 1, strings
// shorter than two characters rate 0 against anything else.
func CompareStrings(first, second string) float64 {
	a := []rune(strings.Join(strings.Fields(first), ""))
	b := []rune(strings.Join(strings.Fields(second), ""))

	if string(a) == string(b) {
		return 1.0
	}
	if len(a) < 2 || len(b) < 2 {
		return 0.0
	}

	bigrams := make(map[string]int, len(a)-1)
	for i := 0; i < len(a)-1; i++ {
		bigrams[string(a[i:i+2])]++
	}

	intersection := 0
	for i := 0; i < len(b)-1; i++ {
		bigram := string(b[i : i+2])
		if bigrams[bigram] > 0 {
			bigrams[bigram]--
			intersection++
		}
	}

	return 2.0 * float64(intersection) / float64(len(a)+len(b)-2)
}

// BestMatch rates token against every vocabulary entry and returns the highest
// rated one. Ties keep the earliest entry.
func BestMatch(token string, vocabulary []string) (Match, error) {
	if len(vocabulary) == 0 {
		return Match{}, ErrEmptyVocabulary
	}

	best := Match{Target: vocabulary[0], Rating: CompareStrings(token, vocabulary[0]), Index: 0}
	for i := 1; i < len(vocabulary); i++ {
		rating := CompareStrings(token, vocabulary[i])
		if rating > best.Rating {
			best = Match{Target: vocabulary[i], Rating: rating, Index: i}
		}
	}

	return best, nil
}
