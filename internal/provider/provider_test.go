package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/mindwell/internal/chat"
	"github.com/runnerr0/mindwell/internal/config"
	"github.com/runnerr0/mindwell/internal/errs"
)

type capturedRequest struct {
	Path    string
	Headers http.Header
	Body    map[string]any
}

func newServer(t *testing.T, status int, body string, captured *[]capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)
		*captured = append(*captured, capturedRequest{Path: r.URL.Path, Headers: r.Header.Clone(), Body: decoded})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

const chatOK = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "test-model",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Try a slow breath with me."}}]
}`

func TestChatCompleter_Complete(t *testing.T) {
	var got []capturedRequest
	srv := newServer(t, http.StatusOK, chatOK, &got)

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		APIKey:  "sk-test",
		Headers: map[string]string{"HTTP-Referer": "https://mindwell.local", "X-Title": "mindwell"},
	})
	c := NewChatCompleter(client, "test-model")

	reply, err := c.Complete(context.Background(), chat.Request{
		Messages: []chat.Message{
			{Role: chat.RoleSystem, Content: "be kind"},
			{Role: chat.RoleUser, Content: "hello"},
			{Role: chat.RoleAssistant, Content: "hi"},
			{Role: chat.RoleUser, Content: "I'm tired"},
		},
		Temperature: chat.Temperature,
		MaxTokens:   chat.MaxTokens,
		TopP:        chat.TopP,
	})
	require.NoError(t, err)
	assert.Equal(t, "Try a slow breath with me.", reply)

	require.Len(t, got, 1)
	req := got[0]
	assert.True(t, strings.HasSuffix(req.Path, "/chat/completions"))
	assert.Equal(t, "Bearer sk-test", req.Headers.Get("Authorization"))
	assert.Equal(t, "https://mindwell.local", req.Headers.Get("HTTP-Referer"))
	assert.Equal(t, "mindwell", req.Headers.Get("X-Title"))
	assert.Equal(t, "test-model", req.Body["model"])
	assert.Equal(t, 0.7, req.Body["temperature"])
	assert.Equal(t, 0.9, req.Body["top_p"])
	assert.Equal(t, float64(500), req.Body["max_tokens"])

	msgs, ok := req.Body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 4)
	roles := make([]string, 0, len(msgs))
	for _, m := range msgs {
		roles = append(roles, m.(map[string]any)["role"].(string))
	}
	assert.Equal(t, []string{"system", "user", "assistant", "user"}, roles)
}

func TestChatCompleter_ErrorStatus(t *testing.T) {
	var got []capturedRequest
	srv := newServer(t, http.StatusServiceUnavailable, `{"error":{"message":"overloaded","type":"server_error"}}`, &got)

	c := NewChatCompleter(NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"}), "m")
	_, err := c.Complete(context.Background(), chat.Request{Messages: []chat.Message{{Role: chat.RoleUser, Content: "hi"}}})

	var re *errs.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "complete", re.Capability)
	assert.Len(t, got, 1, "no retries")
}

func TestChatCompleter_NoChoices(t *testing.T) {
	var got []capturedRequest
	srv := newServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":0,"model":"m","choices":[]}`, &got)

	c := NewChatCompleter(NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"}), "m")
	_, err := c.Complete(context.Background(), chat.Request{Messages: []chat.Message{{Role: chat.RoleUser, Content: "hi"}}})
	assert.Error(t, err)
}

func TestChatCompleter_DrivesResponder(t *testing.T) {
	var got []capturedRequest
	srv := newServer(t, http.StatusOK, chatOK, &got)

	r := chat.NewResponder(NewChatCompleter(NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"}), "m"))
	resp := r.Respond(context.Background(), "I can't sleep", nil)

	assert.Equal(t, "Try a slow breath with me.", resp.Message)
	assert.Contains(t, resp.Resources, "😴 Sleep hygiene tips")
}

func responsesBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"id":         "resp_1",
		"object":     "response",
		"created_at": 1700000000,
		"model":      "gpt-4o-mini",
		"status":     "completed",
		"output": []any{
			map[string]any{
				"type":   "message",
				"id":     "msg_1",
				"role":   "assistant",
				"status": "completed",
				"content": []any{
					map[string]any{"type": "output_text", "text": text, "annotations": []any{}},
				},
			},
		},
	})
	return string(b)
}

func TestTextClassifier_Classify(t *testing.T) {
	var got []capturedRequest
	srv := newServer(t, http.StatusOK, responsesBody(`{"label":"NEGATIVE","score":0.93}`), &got)

	c := NewTextClassifier(NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"}), "gpt-4o-mini")
	res, err := c.Classify(context.Background(), "I feel awful")
	require.NoError(t, err)
	assert.Equal(t, "NEGATIVE", res.Label)
	assert.InDelta(t, 0.93, res.Score, 1e-9)

	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0].Path, "/responses"))
	text, ok := got[0].Body["text"].(map[string]any)
	require.True(t, ok)
	format := text["format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	assert.Equal(t, true, format["strict"])
}

func TestTextClassifier_BadOutput(t *testing.T) {
	var got []capturedRequest
	srv := newServer(t, http.StatusOK, responsesBody(`not json at all`), &got)

	c := NewTextClassifier(NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"}), "m")
	_, err := c.Classify(context.Background(), "text")
	var re *errs.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "classify", re.Capability)
}

func TestTextClassifier_InitIsIdempotentAndRetryable(t *testing.T) {
	calls := 0
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = io.WriteString(w, `{"error":{"message":"bad key"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"id":"m","object":"model","created":0,"owned_by":"test"}`)
	}))
	t.Cleanup(srv.Close)

	c := NewTextClassifier(NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"}), "m")
	require.Error(t, c.Init(context.Background()))

	status = http.StatusOK
	require.NoError(t, c.Init(context.Background()))
	require.NoError(t, c.Init(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestGenerateSchema_Strict(t *testing.T) {
	s := GenerateSchema[classifierOutput]()
	assert.Equal(t, "object", s["type"])
	assert.Equal(t, false, s["additionalProperties"])
	assert.Equal(t, []string{"label", "score"}, s["required"])

	props := s["properties"].(map[string]any)
	label := props["label"].(map[string]any)
	assert.Equal(t, []any{"POSITIVE", "NEGATIVE", "NEUTRAL"}, label["enum"])
}

func TestDecodeModelJSON(t *testing.T) {
	var out classifierOutput
	require.NoError(t, decodeModelJSON("```json\n{\"label\":\"POSITIVE\",\"score\":0.8}\n```", &out))
	assert.Equal(t, "POSITIVE", out.Label)

	assert.ErrorIs(t, decodeModelJSON("   ", &out), io.ErrUnexpectedEOF)
}

func TestFromConfig_RequiresKey(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	cfg := config.DefaultConfig()
	_, err := ChatFromConfig(cfg.Chat, getenv)
	var missing *ErrNoAPIKey
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "OPENROUTER_API_KEY", missing.Env)

	_, err = ClassifierFromConfig(cfg.Sentiment, getenv)
	require.Error(t, err)

	env["OPENROUTER_API_KEY"] = "sk-or"
	env["OPENAI_API_KEY"] = "sk"
	cc, err := ChatFromConfig(cfg.Chat, getenv)
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3.5-sonnet", cc.model)

	tc, err := ClassifierFromConfig(cfg.Sentiment, getenv)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", tc.model)
}
