package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-agent-system/pkg/openai"
)

func TestGenerateContent(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "x", "object": "chat.completion", "model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Sure."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 9, "completion_tokens": 2, "total_tokens": 11}
		}`))
	}))
	defer ts.Close()

	c, err := openai.New(openai.Config{Provider: openai.ProviderDeepSeek, APIKey: "sk-test", Model: "deepseek-chat", BaseURL: ts.URL})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "system", Content: "rephrase"}, {Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sure.", resp.Text)
	assert.Equal(t, 11, resp.TotalTokens)
	assert.Equal(t, "deepseek-chat", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "deepseek", c.Provider())
}

func TestGenerateContent_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer ts.Close()

	c, err := openai.New(openai.Config{APIKey: "k", Model: "gpt-4o-mini", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), &openai.Request{Messages: []openai.Message{{Role: "user", Content: "hi"}}})
	assert.ErrorIs(t, err, openai.ErrEmptyResponse)
}

func TestNew_Validation(t *testing.T) {
	_, err := openai.New(openai.Config{Model: "m"})
	assert.Error(t, err)
	_, err = openai.New(openai.Config{APIKey: "k"})
	assert.Error(t, err)
}
