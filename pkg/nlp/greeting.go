package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const greetingReplySuffix = " juga! "

// ExtractGreeting returns a reply prefix echoing the longest greeting found in
// text, e.g. "Selamat pagi juga! ". It returns "" when text has no greeting.
func ExtractGreeting(text string) string {
	lower := strings.ToLower(text)

	for _, greeting := range greetingsByLength {
		if strings.Contains(lower, greeting) {
			return capitalize(greeting) + greetingReplySuffix
		}
	}

	return ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
