// Package chat implements the conversational companion: a caller-owned
// session that asks a chat completion service for replies and falls back
// to fixed empathetic responses when the service is unavailable.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/runnerr0/mindwell/internal/sentiment"
)

// Role of a transcript entry.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Generation parameters sent with every request.
const (
	Temperature = 0.7
	MaxTokens   = 500
	TopP        = 0.9

	// ContextWindow is the number of recent non-system entries sent per request.
	ContextWindow = 10
)

// Request is what the Responder hands to a Completer. Messages starts with
// the system preamble.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Completer is an external chat completion capability.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Response is what the companion says back.
type Response struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

// RandSource picks fallback and welcome entries. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Responder holds one conversation. It is not safe for concurrent use.
type Responder struct {
	completer Completer
	preamble  string
	rand      RandSource
	logger    *zap.Logger
	now       func() time.Time

	history []Message
}

// Option configures a Responder.
type Option func(*Responder)

// WithRand pins the source used to pick fallback and welcome replies.
// Nil keeps the default source.
func WithRand(r RandSource) Option {
	return func(s *Responder) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithLogger sets the logger used for completion failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Responder) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Responder) {
		if now != nil {
			s.now = now
		}
	}
}

// WithProductName names the app inside the system preamble.
func WithProductName(name string) Option {
	return func(s *Responder) { s.preamble = SystemPrompt(name) }
}

// NewResponder starts a conversation. A nil completer answers every message
// with a fallback reply.
func NewResponder(completer Completer, opts ...Option) *Responder {
	r := &Responder{
		completer: completer,
		preamble:  SystemPrompt(DefaultProductName),
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.reset()
	return r
}

func (r *Responder) reset() {
	r.history = []Message{{Role: RoleSystem, Content: r.preamble, Timestamp: r.now()}}
}

// Clear drops the conversation, keeping only the system preamble.
func (r *Responder) Clear() {
	r.reset()
}

// History returns the displayed transcript without the system preamble.
func (r *Responder) History() []Message {
	out := make([]Message, 0, len(r.history))
	for _, m := range r.history {
		if m.Role != RoleSystem {
			out = append(out, m)
		}
	}
	return out
}

// Restore replaces the conversation with a saved transcript. System
// entries in msgs are ignored.
func (r *Responder) Restore(msgs []Message) {
	r.reset()
	for _, m := range msgs {
		if m.Role != RoleSystem {
			r.history = append(r.history, m)
		}
	}
}

// Respond sends message to the completer and derives suggestions and
// resources from the reply. When sc is set, the scorer output is attached
// to the outgoing copy of the message only. Completion failures are logged
// and answered with a fallback; Respond never fails.
func (r *Responder) Respond(ctx context.Context, message string, sc *sentiment.Result) Response {
	r.history = append(r.history, Message{Role: RoleUser, Content: message, Timestamp: r.now()})

	if r.completer == nil {
		return r.fallback()
	}

	reply, err := r.completer.Complete(ctx, r.buildRequest(sc))
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errEmptyCompletion
	}
	if err != nil {
		r.logger.Warn("chat completion failed, using fallback reply", zap.Error(err))
		return r.fallback()
	}

	r.history = append(r.history, Message{Role: RoleAssistant, Content: reply, Timestamp: r.now()})
	return Response{
		Message:     reply,
		Suggestions: ExtractSuggestions(reply),
		Resources:   MatchResources(message, reply),
	}
}

var errEmptyCompletion = errors.New("empty completion")

// buildRequest sends the preamble plus the most recent ContextWindow entries.
func (r *Responder) buildRequest(sc *sentiment.Result) Request {
	recent := r.History()
	if len(recent) > ContextWindow {
		recent = recent[len(recent)-ContextWindow:]
	}

	msgs := make([]Message, 0, len(recent)+1)
	msgs = append(msgs, r.history[0])
	msgs = append(msgs, recent...)

	if sc != nil {
		last := &msgs[len(msgs)-1]
		last.Content = annotate(last.Content, sc)
	}

	return Request{
		Messages:    msgs,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		TopP:        TopP,
	}
}

func annotate(message string, sc *sentiment.Result) string {
	b, err := json.Marshal(sc)
	if err != nil {
		return message
	}
	return message + "\n\n[Context: User's recent mood/sentiment - " + string(b) + "]"
}
