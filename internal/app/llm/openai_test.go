package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionResponse(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestComplete_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("Opção 1: vender")))
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPConfig{
		BaseURL: server.URL,
		APIKey:  "sk-test",
		Model:   "gpt-4o",
	})

	messages := []Message{
		NewSystemMessage("prompt"),
		NewUserMessage("oi"),
	}

	reply, err := client.Complete(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, "Opção 1: vender", reply)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
}

func TestComplete_UpstreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPConfig{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), []Message{NewUserMessage("oi")})
	require.Error(t, err)

	assert.Equal(t, ErrTypeRejected, Classify(err))
	assert.Contains(t, err.Error(), "rate limit reached")
}

func TestComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPConfig{BaseURL: server.URL, Timeout: 50 * time.Millisecond})

	_, err := client.Complete(context.Background(), []Message{NewUserMessage("oi")})
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestComplete_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPConfig{BaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, []Message{NewUserMessage("oi")})
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestComplete_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewHTTPClient(HTTPConfig{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), []Message{NewUserMessage("oi")})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPConfig{BaseURL: server.URL})

	_, err := client.Complete(context.Background(), []Message{NewUserMessage("oi")})
	require.Error(t, err)
	assert.Equal(t, ErrTypeRejected, Classify(err))
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient(HTTPConfig{})

	assert.Equal(t, "https://api.openai.com", client.config.BaseURL)
	assert.Equal(t, "gpt-4o", client.config.Model)
	assert.Equal(t, 60*time.Second, client.config.Timeout)
}
