package supportai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// SystemInstruction роль ассистента поддержки
	SystemInstruction = "You are a technical assistant specialized in Occupational Safety and Health (SST) for the SST Pro system. " +
		"Answer technical questions clearly, objectively and professionally. " +
		"Cover regulatory standards (NRs), personal protective equipment (PPE) and technical visit procedures."

	// FallbackEmptyAnswer ответ, когда модель не вернула текст
	FallbackEmptyAnswer = "Sorry, I could not process your question right now."

	// FallbackUnavailable ответ, когда ассистент недоступен
	FallbackUnavailable = "Could not reach the support assistant. Please try again later."
)

// Исходы обращения для метрик
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
)

// Config параметры клиента
type Config struct {
	BaseURL       string
	Model         string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

// Client клиент сервиса генерации текста (generateContent)
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента ассистента
func NewClient(cfg Config, metrics Metrics, log Logger) *Client {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		metrics: metrics,
		log:     log,
	}
}

// Generate отправляет вопрос модели и возвращает текст ответа
func (c *Client) Generate(ctx context.Context, question string) (string, error) {
	if !c.limiter.Allow() {
		return "", fmt.Errorf("%w: rate limit exceeded", ErrServiceUnavailable)
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: SystemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: question}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrServiceUnavailable, resp.StatusCode, string(raw))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrServiceUnavailable, err)
	}

	var answer strings.Builder
	for _, cand := range parsed.Candidates {
		for _, p := range cand.Content.Parts {
			answer.WriteString(p.Text)
		}
		if answer.Len() > 0 {
			break
		}
	}

	text := strings.TrimSpace(answer.String())
	if text == "" {
		return "", ErrEmptyAnswer
	}
	return text, nil
}

// Ask возвращает ответ ассистента. Ошибки не пробрасываются: вместо них возвращается текст-заглушка.
func (c *Client) Ask(ctx context.Context, question string) string {
	c.log.Info("AskSupport: question length=%d", len(question))

	answer, err := c.Generate(ctx, question)
	switch {
	case err == nil:
		c.metrics.IncSupportRequests(OutcomeOK)
		c.log.Info("AskSupport: answered, length=%d", len(answer))
		return answer
	case errors.Is(err, ErrEmptyAnswer):
		c.metrics.IncSupportRequests(OutcomeEmpty)
		c.log.Warn("AskSupport: empty answer from model")
		return FallbackEmptyAnswer
	default:
		// Ассистент недоступен: повышаем уровень до ERROR, пользователю отдаем заглушку
		c.metrics.IncSupportRequests(OutcomeUnavailable)
		c.log.Error("AskSupport: assistant unavailable: %v", err)
		return FallbackUnavailable
	}
}
