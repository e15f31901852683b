package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	catalogSource, verbose, asJSON = "static", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	out, err := run(t, "ask", "data", "inflasi")
	require.NoError(t, err)

	assert.Contains(t, out, "Inflasi Bulanan Kota Medan")
	assert.Contains(t, out, "Sumber:")
	assert.Contains(t, out, "https://medankota.bps.go.id/id/statistics-table/inflasi-bulanan")
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "analyze", "--json", "halo")
	require.NoError(t, err)

	assert.Contains(t, out, `"intent": "greeting"`)
	assert.Contains(t, out, `"greeting_prefix": "Halo juga! "`)
}

func TestCategoriesAndSuggestions(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Kependudukan\n")

	out, err = run(t, "suggestions", "inflasi")
	require.NoError(t, err)
	assert.Equal(t, "Tampilkan data inflasi bulanan Kota Medan\n", out)
}

func TestUnknownSource(t *testing.T) {
	_, err := run(t, "categories", "--source", "mongodb")
	assert.ErrorContains(t, err, "unknown catalog source")
}
