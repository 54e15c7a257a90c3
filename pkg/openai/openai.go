// Package openai talks to any OpenAI-compatible chat completion API
// (OpenAI, DeepSeek, Qwen via DashScope).
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"

	DefaultTimeout = 60 * time.Second
)

var defaultBaseURLs = map[string]string{
	ProviderDeepSeek: "https://api.deepseek.com",
	ProviderQwen:     "https://dashscope.aliyuncs.com/compatible-mode/v1",
}

var ErrEmptyResponse = errors.New("openai: empty response")

type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Message is one chat turn. Role is "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

type Response struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// IOpenAI is safe for concurrent use.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Provider() string
	Model() string
}

type client struct {
	api      *goopenai.Client
	provider string
	model    string
	timeout  time.Duration
}

// New builds a client. Provider selects the default base URL; BaseURL overrides it.
func New(cfg Config) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: %s API key is required", cfg.Provider)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("openai: %s model is required", cfg.Provider)
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	clientConfig := goopenai.DefaultConfig(cfg.APIKey)
	if base := cfg.BaseURL; base != "" {
		clientConfig.BaseURL = base
	} else if base, ok := defaultBaseURLs[cfg.Provider]; ok {
		clientConfig.BaseURL = base
	}
	if cfg.HTTPClient != nil {
		clientConfig.HTTPClient = cfg.HTTPClient
	}

	return &client{
		api:      goopenai.NewClientWithConfig(clientConfig),
		provider: cfg.Provider,
		model:    cfg.Model,
		timeout:  cfg.Timeout,
	}, nil
}

func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]goopenai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = goopenai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %s chat completion: %w", c.provider, err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}, nil
}

func (c *client) Provider() string { return c.provider }
func (c *client) Model() string    { return c.model }
