package supportai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/pkg/logger"
)

type fakeMetrics struct {
	outcomes []string
}

func (m *fakeMetrics) IncSupportRequests(outcome string) { m.outcomes = append(m.outcomes, outcome) }

func newClient(url string, metrics *fakeMetrics) *Client {
	return NewClient(Config{
		BaseURL: url,
		Model:   "test-model",
		APIKey:  "secret-key",
		Timeout: time.Second,
	}, metrics, logger.NewNop())
}

func TestAsk_ReturnsModelAnswer(t *testing.T) {
	var got generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"NR-6 covers "},{"text":"PPE."}]}}]}`))
	}))
	defer srv.Close()

	metrics := &fakeMetrics{}
	answer := newClient(srv.URL, metrics).Ask(context.Background(), "What does NR-6 cover?")

	assert.Equal(t, "NR-6 covers PPE.", answer)
	assert.Equal(t, []string{OutcomeOK}, metrics.outcomes)

	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, SystemInstruction, got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "What does NR-6 cover?", got.Contents[0].Parts[0].Text)
}

func TestAsk_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		outcome string
	}{
		{
			name: "empty candidates",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			want:    FallbackEmptyAnswer,
			outcome: OutcomeEmpty,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want:    FallbackUnavailable,
			outcome: OutcomeUnavailable,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":`))
			},
			want:    FallbackUnavailable,
			outcome: OutcomeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			metrics := &fakeMetrics{}
			assert.Equal(t, tt.want, newClient(srv.URL, metrics).Ask(context.Background(), "question"))
			assert.Equal(t, []string{tt.outcome}, metrics.outcomes)
		})
	}
}

func TestAsk_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	metrics := &fakeMetrics{}
	assert.Equal(t, FallbackUnavailable, newClient(url, metrics).Ask(context.Background(), "question"))
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "m", Timeout: time.Second, RatePerSecond: 0.001, Burst: 1}, &fakeMetrics{}, logger.NewNop())

	_, err := client.Generate(context.Background(), "first")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "second")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
