package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected float64
	}{
		{"identical", "tolong", "tolong", 1.0},
		{"both empty", "", "", 1.0},
		{"whitespace ignored", "di mana", "dimana", 1.0},
		{"single character", "a", "ab", 0.0},
		{"no shared bigram", "penduduk", "kami", 0.0},
		{"repeated letter typo", "tolongg", "tolong", 10.0 / 11.0},
		{"half overlap", "data", "dari", 1.0 / 3.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CompareStrings(tc.first, tc.second), 1e-9)
		})
	}
}

func TestCompareStrings_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"carikan", "cariin"},
		{"penduduk", "pendidikan"},
		{"ekonomi", "ekonom"},
	}

	for _, p := range pairs {
		assert.InDelta(t, CompareStrings(p[0], p[1]), CompareStrings(p[1], p[0]), 1e-9, "%s/%s", p[0], p[1])
	}
}

func TestBestMatch(t *testing.T) {
	t.Run("exact entry rates one", func(t *testing.T) {
		match, err := BestMatch("tolong", FillerWords())
		require.NoError(t, err)
		assert.Equal(t, "tolong", match.Target)
		assert.Equal(t, 1.0, match.Rating)
	})

	t.Run("typo finds nearest entry", func(t *testing.T) {
		match, err := BestMatch("tolongg", FillerWords())
		require.NoError(t, err)
		assert.Equal(t, "tolong", match.Target)
		assert.Greater(t, match.Rating, 0.8)
	})

	t.Run("ties keep first entry", func(t *testing.T) {
		match, err := BestMatch("qq", []string{"xy", "zz", "ab"})
		require.NoError(t, err)
		assert.Equal(t, "xy", match.Target)
		assert.Equal(t, 0, match.Index)
		assert.Equal(t, 0.0, match.Rating)
	})

	t.Run("rating stays in range", func(t *testing.T) {
		for _, token := range []string{"penduduk", "x", "", "selamat pagi", "tolong"} {
			match, err := BestMatch(token, GreetingKeywords())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, match.Rating, 0.0)
			assert.LessOrEqual(t, match.Rating, 1.0)
		}
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		_, err := BestMatch("tolong", nil)
		assert.ErrorIs(t, err, ErrEmptyVocabulary)
	})
}

func TestVocabularyCopiesAreIndependent(t *testing.T) {
	greetings := GreetingKeywords()
	greetings[0] = "changed"

	assert.Equal(t, "halo", GreetingKeywords()[0])
	assert.NotEmpty(t, FillerWords())
}
