package nlp

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestDetectQuestionType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Intent
	}{
		// bare greetings
		{"selamat pagi", "selamat pagi", IntentGreeting},
		{"halo with punctuation", "Halo!", IntentGreeting},
		{"apa kabar", "Apa kabar?", IntentGreeting},
		{"evening greeting", "Selamat malam", IntentGreeting},
		// only the first occurrence of each phrase is stripped
		{"repeated greeting", "hai hai", IntentInformation},

		// greeting plus a request
		{"greeting with request", "selamat pagi, tolong carikan data ekonomi", IntentInformation},
		{"halo with question", "Halo, berapa jumlah penduduk Medan?", IntentInformation},

		// other intents
		{"thanks indonesian", "terima kasih banyak", IntentThanks},
		{"thanks english", "Thanks!", IntentThanks},
		{"identity", "kamu siapa?", IntentIdentity},
		{"identity reversed", "siapa kamu", IntentIdentity},
		{"list daftar", "daftar kategori", IntentList},
		{"list english", "tampilkan list data", IntentList},

		// default
		{"plain question", "berapa jumlah penduduk medan", IntentInformation},
		{"empty input", "", IntentInformation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectQuestionType(tc.input))
		})
	}
}

func TestDetectQuestionType_AlwaysValid(t *testing.T) {
	inputs := []string{"", "selamat malam", "who are you", "kategori apa saja", "inflasi 2023", "???"}
	for _, input := range inputs {
		intent := DetectQuestionType(input)
		assert.True(t, intent.IsValid(), "input %q gave %q", input, intent)
		assert.Equal(t, intent, DetectQuestionType(input))
	}
}

func TestIntentIsValid(t *testing.T) {
	assert.True(t, IntentList.IsValid())
	assert.False(t, Intent("weather").IsValid())
	assert.Equal(t, "thanks", IntentThanks.String())
}

func TestExtractGreeting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"longest phrase wins", "Selamat pagi, ada data inflasi?", "Selamat pagi juga! "},
		{"single word", "halo", "Halo juga! "},
		{"longer phrase before shorter", "Halo, apa kabar", "Apa kabar juga! "},
		{"no greeting", "data ekonomi Medan", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractGreeting(tc.input))
		})
	}
}

func TestExtractGreeting_Shape(t *testing.T) {
	prefix := ExtractGreeting("Halo, apa kabar")

	assert.NotEmpty(t, prefix)
	assert.True(t, unicode.IsUpper([]rune(prefix)[0]))
	assert.True(t, strings.HasSuffix(prefix, " juga! "))
}
