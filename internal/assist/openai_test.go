package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		model   string
	}{
		{"missing base url", "", "k", "m"},
		{"missing key", "http://x", "", "m"},
		{"missing model", "http://x", "k", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOpenAIClient(tt.baseURL, tt.apiKey, tt.model, nil)
			assert.Error(t, err)
		})
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr string
	}{
		{
			name:   "first choice",
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"role":"assistant","content":" Hello there "}},{"message":{"content":"ignored"}}]}`,
			want:   "Hello there",
		},
		{
			name:    "api error",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"bad key","type":"invalid_request_error"}}`,
			wantErr: "openai error: bad key (invalid_request_error)",
		},
		{
			name:    "non-2xx without error body",
			status:  http.StatusBadGateway,
			body:    `{}`,
			wantErr: "openai status 502",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "openai response missing choices",
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: "openai response parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got chatRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewOpenAIClient(srv.URL+"/v1/", "secret", "gpt-4.1-nano", srv.Client())
			require.NoError(t, err)

			out, err := c.Complete(context.Background(), Request{Prompt: "hi", MaxTokens: 150, Temperature: 0.7})

			assert.Equal(t, "gpt-4.1-nano", got.Model)
			assert.Equal(t, 150, got.MaxTokens)
			require.Len(t, got.Messages, 1)
			assert.Equal(t, chatMessage{Role: "user", Content: "hi"}, got.Messages[0])

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBridge_WithOpenAIServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewOpenAIClient(url, "k", "gpt-4.1-nano", nil)
	require.NoError(t, err)

	b := NewBridge(c, nil, nil)
	assert.Equal(t, FallbackSummary, b.GenerateSummary(context.Background(), nil, nil))
	assert.Equal(t, []string{}, b.SuggestSkills(context.Background(), "x", "y"))
}
