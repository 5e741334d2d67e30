// Package openrouter - клиент chat-completions API OpenRouter.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gtawatch/incident-watch/internal/guidance"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://openrouter.ai/api/v1/chat/completions"

// Client выполняет запросы к chat-completions эндпоинту.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент OpenRouter. Пустой apiKey допустим:
// вызывающая сторона в этом случае использует статический fallback.
func NewClient(apiKey, model string, timeout time.Duration, logger *logrus.Logger) *Client {
	if apiKey == "" {
		logger.Warn("OPENROUTER_API_KEY not configured, AI guidance will use static fallback")
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SetBaseURL переопределяет адрес эндпоинта (для тестов).
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Configured сообщает, задан ли API-ключ.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete отправляет промпт по инциденту и возвращает текст инструкции.
// Ошибка транспорта, не-2xx статус или пустой ответ возвращаются как error,
// без повторных попыток.
func (c *Client) Complete(ctx context.Context, category models.Category, description *string, lat, lon float64) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openrouter: api key is not configured")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: guidance.SystemPrompt},
			{Role: "user", Content: guidance.UserPrompt(category, description, lat, lon)},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("openrouter: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://gta-watch.local")
	req.Header.Set("X-Title", "GTA Watch Emergency Guidance")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openrouter: unexpected status %d: %s", resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("openrouter: failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openrouter: response contains no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
