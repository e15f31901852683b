package assistantService

import (
	"StatMedan/internal/api/assistant"
	"StatMedan/pkg/bps"
	"StatMedan/pkg/nlp"
	"StatMedan/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenUtils struct{}

func (brokenUtils) NewULIDFromTimestamp(time.Time) (string, error) {
	return "", errors.New("entropy exhausted")
}

func newTestService(t *testing.T, u utils.IUtils, config *AssistantConfig) IAssistantService {
	t.Helper()

	logger, _ := test.NewNullLogger()
	catalog, err := bps.Load(context.Background(), bps.NewStaticSource())
	require.NoError(t, err)

	return NewAssistantService(logger, nlp.NewProcessor(catalog, logger), catalog, u, config)
}

func TestChat(t *testing.T) {
	svc := newTestService(t, utils.New(), nil)
	ctx := context.Background()

	t.Run("greeting has no sources", func(t *testing.T) {
		resp, err := svc.Chat(ctx, assistant.ChatRequest{Message: "Halo"})
		require.NoError(t, err)

		assert.Equal(t, "greeting", resp.Intent)
		assert.Equal(t, assistant.MessageTypeAssistant, resp.Type)
		assert.Contains(t, resp.Content, "Halo juga! ")
		assert.Empty(t, resp.Sources)
		assert.Empty(t, resp.RelatedData)

		_, err = ulid.ParseStrict(resp.ID)
		assert.NoError(t, err)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("information cites every result", func(t *testing.T) {
		resp, err := svc.Chat(ctx, assistant.ChatRequest{Message: "Berapa jumlah penduduk Kota Medan?"})
		require.NoError(t, err)

		assert.Equal(t, "information", resp.Intent)
		require.GreaterOrEqual(t, len(resp.RelatedData), 3)
		assert.Len(t, resp.Sources, len(resp.RelatedData))

		assert.Equal(t, "penduduk-kecamatan", resp.RelatedData[0].ID)
		assert.Equal(t, "laju-pertumbuhan-penduduk", resp.RelatedData[1].ID)
		assert.Equal(t, "kepadatan-penduduk", resp.RelatedData[2].ID)
		for i, source := range resp.Sources {
			assert.Equal(t, resp.RelatedData[i].Title, source.Title)
			assert.Equal(t, resp.RelatedData[i].URL, source.URL)
		}
		assert.Contains(t, resp.Content, "Jumlah Penduduk Kota Medan Menurut Kecamatan")
	})

	t.Run("information without results cites the portal", func(t *testing.T) {
		resp, err := svc.Chat(ctx, assistant.ChatRequest{Message: "prakiraan cuaca"})
		require.NoError(t, err)

		assert.Equal(t, "information", resp.Intent)
		assert.Empty(t, resp.RelatedData)
		require.Len(t, resp.Sources, 1)
		assert.Equal(t, bps.PortalTitle, resp.Sources[0].Title)
		assert.Equal(t, bps.PortalURL, resp.Sources[0].URL)
		assert.Contains(t, resp.Content, "Maaf, saya tidak menemukan data")
	})

	t.Run("thanks without results has no sources", func(t *testing.T) {
		resp, err := svc.Chat(ctx, assistant.ChatRequest{Message: "terima kasih"})
		require.NoError(t, err)

		assert.Equal(t, "thanks", resp.Intent)
		assert.Nil(t, resp.Sources)
	})

	t.Run("blank message", func(t *testing.T) {
		_, err := svc.Chat(ctx, assistant.ChatRequest{Message: "   "})
		assert.ErrorIs(t, err, assistant.ErrEmptyMessage)
	})
}

func TestChat_ResponseDelay(t *testing.T) {
	t.Run("delivered after delay", func(t *testing.T) {
		svc := newTestService(t, utils.New(), &AssistantConfig{ResponseDelay: 20 * time.Millisecond})

		start := time.Now()
		resp, err := svc.Chat(context.Background(), assistant.ChatRequest{Message: "Halo"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Content)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		svc := newTestService(t, utils.New(), &AssistantConfig{ResponseDelay: time.Hour})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.Chat(ctx, assistant.ChatRequest{Message: "Halo"})
		assert.ErrorIs(t, err, assistant.ErrResponseCancelled)
	})
}

func TestChat_IDFailure(t *testing.T) {
	svc := newTestService(t, brokenUtils{}, nil)

	_, err := svc.Chat(context.Background(), assistant.ChatRequest{Message: "Halo"})
	assert.ErrorIs(t, err, assistant.ErrFailedToGenerateID)
}

func TestGetSuggestions(t *testing.T) {
	svc := newTestService(t, utils.New(), nil)

	resp, err := svc.GetSuggestions(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "Berapa jumlah penduduk Kota Medan?", resp.Suggestions[0])

	resp, err = svc.GetSuggestions(context.Background(), "penduduk")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Berapa jumlah penduduk Kota Medan?",
		"Berapa persentase penduduk miskin di Medan?",
	}, resp.Suggestions)
}

func TestGetCategories(t *testing.T) {
	svc := newTestService(t, utils.New(), nil)

	resp, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, bps.CategoryPopulation, resp.Categories[0])
}

func TestTestNLPProcessing(t *testing.T) {
	svc := newTestService(t, utils.New(), nil)

	resp, err := svc.TestNLPProcessing(context.Background(), assistant.NLPTestRequest{Text: "Halo, tolong carikan data penduduk"})
	require.NoError(t, err)

	assert.Equal(t, "information", resp.Intent)
	assert.Equal(t, "Halo juga! ", resp.GreetingPrefix)
	require.Len(t, resp.KeywordMatches, 3)
	assert.Equal(t, "penduduk-kecamatan", resp.KeywordMatches[0].ID)
	for _, m := range resp.SearchMatches {
		assert.NotContains(t, []string{"penduduk-kecamatan", "laju-pertumbuhan-penduduk", "kepadatan-penduduk"}, m.ID)
	}
	assert.NotEmpty(t, resp.ProcessingTime)

	_, err = svc.TestNLPProcessing(context.Background(), assistant.NLPTestRequest{Text: " "})
	assert.ErrorIs(t, err, assistant.ErrEmptyMessage)
}
