package bps

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var searchStopWords = map[string]bool{
	"data": true, "kota": true, "medan": true, "yang": true, "dan": true,
	"atau": true, "dari": true, "untuk": true, "dengan": true, "tentang": true,
	"berapa": true, "bagaimana": true, "apa": true, "apakah": true, "ada": true,
	"tolong": true, "carikan": true, "cari": true, "tampilkan": true, "lihat": true,
	"saya": true, "mau": true, "ingin": true, "dong": true, "per": true,
	"menurut": true, "tahun": true,
}

// foldText lower-cases text, strips diacritics and turns every character that
// is not a letter, digit or space into a space.
func foldText(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		result = strings.ToLower(text)
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func searchTokens(query string) []string {
	words := strings.Fields(foldText(query))
	seen := make(map[string]bool, len(words))
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if len([]rune(word)) < 3 || searchStopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		tokens = append(tokens, word)
	}

	return tokens
}
