package assistantHandler

import (
	"StatMedan/internal/api/assistant"
	assistantService "StatMedan/internal/api/assistant/service"
	"StatMedan/internal/middleware"
	"StatMedan/pkg/bps"
	"StatMedan/pkg/handlerUtil"
	"StatMedan/pkg/nlp"
	"StatMedan/pkg/utils"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	logger, _ := test.NewNullLogger()
	catalog, err := bps.Load(context.Background(), bps.NewStaticSource())
	require.NoError(t, err)

	svc := assistantService.NewAssistantService(logger, nlp.NewProcessor(catalog, logger), catalog, utils.New(), nil)
	mw := middleware.New(logger, 1000, 1000)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, svc).Start(app.Group("/api/v1"))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, out interface{}) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	if out != nil {
		require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)

	t.Run("greeting", func(t *testing.T) {
		var body assistant.MessageResponse
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/assistant/chat", `{"message":"Selamat pagi"}`, &body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDKey))
		assert.Equal(t, "greeting", body.Intent)
		assert.True(t, strings.HasPrefix(body.Content, "Selamat pagi juga! "))
	})

	t.Run("information", func(t *testing.T) {
		var body assistant.MessageResponse
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/assistant/chat", `{"message":"data inflasi"}`, &body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "information", body.Intent)
		require.NotEmpty(t, body.Sources)
		assert.Equal(t, "Inflasi Bulanan Kota Medan", body.Sources[0].Title)
	})

	t.Run("missing message", func(t *testing.T) {
		var body handlerUtil.ErrorResponse
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/assistant/chat", `{"message":""}`, &body)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
	})

	t.Run("blank message", func(t *testing.T) {
		var body handlerUtil.ErrorResponse
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/assistant/chat", `{"message":"   "}`, &body)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, assistant.ErrEmptyMessage.Error(), body.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/assistant/chat", `{"message":`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestSuggestionsEndpoint(t *testing.T) {
	app := newTestApp(t)

	var body assistant.SuggestionsResponse
	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/assistant/suggestions?seed=inflasi", "", &body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Tampilkan data inflasi bulanan Kota Medan"}, body.Suggestions)
}

func TestCategoriesEndpoint(t *testing.T) {
	app := newTestApp(t)

	var body assistant.CategoriesResponse
	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/assistant/categories", "", &body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 8, body.Total)
	assert.Len(t, body.Categories, 8)
}

func TestNLPTestEndpoint(t *testing.T) {
	app := newTestApp(t)

	var body assistant.NLPTestResponse
	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/assistant/nlp/test", `{"text":"Terima kasih ya"}`, &body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "thanks", body.Intent)
	assert.Empty(t, body.GreetingPrefix)
	assert.NotNil(t, body.KeywordMatches)
}
