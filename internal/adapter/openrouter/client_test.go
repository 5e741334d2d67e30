package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtawatch/incident-watch/internal/models"
)

// newTestClient создает клиент, направленный на тестовый сервер.
func newTestClient(server *httptest.Server, apiKey string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	client := NewClient(apiKey, "meta-llama/llama-3.1-8b-instruct:free", 5*time.Second, logger)
	client.SetBaseURL(server.URL)
	return client
}

func TestComplete_Success(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "GTA Watch Emergency Guidance", r.Header.Get("X-Title"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "meta-llama/llama-3.1-8b-instruct:free", req.Model)
		assert.Equal(t, 500, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "fire")

		w.Write([]byte(`{"choices":[{"message":{"content":"Stay low and evacuate immediately."}}]}`))
	}))
	defer server.Close()
	client := newTestClient(server, "test-key")

	// Действие
	text, err := client.Complete(context.Background(), models.CategoryFire, nil, 43.6532, -79.3832)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Stay low and evacuate immediately.", text)
}

func TestComplete_ServerError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	client := newTestClient(server, "test-key")

	// Действие
	text, err := client.Complete(context.Background(), models.CategoryMedical, nil, 43.6532, -79.3832)

	// Проверки
	require.Error(t, err)
	assert.Empty(t, text)
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestComplete_EmptyChoices(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()
	client := newTestClient(server, "test-key")

	// Действие
	text, err := client.Complete(context.Background(), models.CategoryTheft, nil, 43.6532, -79.3832)

	// Проверки
	require.Error(t, err)
	assert.Empty(t, text)
	assert.ErrorContains(t, err, "no choices")
}

func TestComplete_NoAPIKey(t *testing.T) {
	// Подготовка: сервер не должен получить ни одного запроса
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("запрос не должен отправляться без ключа")
	}))
	defer server.Close()
	client := newTestClient(server, "")

	// Действие
	_, err := client.Complete(context.Background(), models.CategoryOther, nil, 43.6532, -79.3832)

	// Проверки
	require.Error(t, err)
	assert.False(t, client.Configured())
}
