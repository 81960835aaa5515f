package provider

import (
	"context"
	"errors"

	"github.com/openai/openai-go"

	"github.com/runnerr0/mindwell/internal/chat"
	"github.com/runnerr0/mindwell/internal/errs"
)

// ChatCompleter implements chat.Completer with the Chat Completions endpoint.
type ChatCompleter struct {
	client *openai.Client
	model  string
}

var _ chat.Completer = (*ChatCompleter)(nil)

func NewChatCompleter(client *openai.Client, model string) *ChatCompleter {
	return &ChatCompleter{client: client, model: model}
}

// Complete returns the text of the first choice.
func (c *ChatCompleter) Complete(ctx context.Context, req chat.Request) (string, error) {
	if c.client == nil {
		return "", &errs.RemoteError{Capability: "complete", Err: errors.New("client is nil")}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    toMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		TopP:        openai.Float(req.TopP),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &errs.RemoteError{Capability: "complete", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &errs.RemoteError{Capability: "complete", Err: errors.New("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

func toMessages(msgs []chat.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case chat.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case chat.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
