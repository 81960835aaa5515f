// Package provider adapts OpenAI-compatible endpoints to the chat and
// sentiment capabilities.
package provider

import (
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/runnerr0/mindwell/internal/config"
)

// ClientConfig describes one OpenAI-compatible endpoint.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Headers map[string]string
}

// NewClient builds an openai-go client. Retries are disabled; callers fall
// back locally instead.
func NewClient(cc ClientConfig) *openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cc.APIKey),
		option.WithMaxRetries(0),
	}
	if cc.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cc.BaseURL))
	}
	for k, v := range cc.Headers {
		if v != "" {
			opts = append(opts, option.WithHeader(k, v))
		}
	}
	client := openai.NewClient(opts...)
	return &client
}

// ErrNoAPIKey is returned when the configured credential variable is unset.
type ErrNoAPIKey struct {
	Env string
}

func (e *ErrNoAPIKey) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Env)
}

// ChatFromConfig builds a ChatCompleter for cfg, reading the key through getenv.
func ChatFromConfig(cfg config.ChatConfig, getenv func(string) string) (*ChatCompleter, error) {
	key := strings.TrimSpace(getenv(cfg.APIKeyEnv))
	if key == "" {
		return nil, &ErrNoAPIKey{Env: cfg.APIKeyEnv}
	}
	client := NewClient(ClientConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  key,
		Headers: map[string]string{
			"HTTP-Referer": cfg.Referer,
			"X-Title":      cfg.Title,
		},
	})
	return NewChatCompleter(client, cfg.Model), nil
}

// ClassifierFromConfig builds a TextClassifier for cfg, reading the key through getenv.
func ClassifierFromConfig(cfg config.SentimentConfig, getenv func(string) string) (*TextClassifier, error) {
	key := strings.TrimSpace(getenv(cfg.APIKeyEnv))
	if key == "" {
		return nil, &ErrNoAPIKey{Env: cfg.APIKeyEnv}
	}
	client := NewClient(ClientConfig{BaseURL: cfg.BaseURL, APIKey: key})
	return NewTextClassifier(client, cfg.Model), nil
}
