package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/runnerr0/mindwell/internal/chat"
	"github.com/runnerr0/mindwell/internal/sentiment"
	"github.com/runnerr0/mindwell/internal/storage"
)

// Execute implements the go-flags Commander interface for ChatCommand.
// Trailing arguments are sent as a single message, like --message.
func (c *ChatCommand) Execute(args []string) error {
	msg := strings.TrimSpace(c.Message)
	if msg == "" && len(args) > 0 {
		msg = strings.TrimSpace(strings.Join(args, " "))
	}
	return withApp(c.app, c.globals, func(a *app) error {
		return c.execute(a, msg)
	})
}

// chatSession pairs a responder with the optional scorer for one command run.
type chatSession struct {
	app       *app
	responder *chat.Responder
	scorer    *sentiment.Scorer // nil unless --analyze
}

func (c *ChatCommand) execute(a *app, oneShot string) error {
	ctx := context.Background()

	s := &chatSession{app: a, responder: a.responder()}
	if c.Analyze {
		s.scorer = a.scorer()
	}
	if !c.New {
		var saved []chat.Message
		if _, err := a.records.Load(ctx, storage.KeyChatHistory, &saved); err != nil {
			return err
		}
		s.responder.Restore(saved)
	}

	if oneShot != "" {
		resp, err := s.turn(ctx, oneShot)
		if err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(resp)
		}
		printResponse(resp)
		return nil
	}

	return s.interactive(ctx)
}

// turn answers one message and saves the transcript.
func (s *chatSession) turn(ctx context.Context, msg string) (chat.Response, error) {
	var sc *sentiment.Result
	if s.scorer != nil {
		res := s.scorer.Score(ctx, msg)
		sc = &res
	}
	resp := s.responder.Respond(ctx, msg, sc)
	return resp, s.save(ctx)
}

func (s *chatSession) save(ctx context.Context) error {
	if err := s.app.records.Save(ctx, storage.KeyChatHistory, s.responder.History()); err != nil {
		return fmt.Errorf("save chat history: %w", err)
	}
	return nil
}

func (s *chatSession) interactive(ctx context.Context) error {
	if s.app.completer == nil {
		fmt.Println(warningStyle.Render("Companion service is not configured; replies come from a fixed set."))
	}
	if n := len(s.responder.History()); n == 0 {
		printResponse(s.responder.WelcomeMessage())
	} else {
		fmt.Printf("Continuing conversation (%d messages).\n", n)
	}
	fmt.Println(dateStyle.Render("Type /clear to start over, /quit to exit."))

	scanner := bufio.NewScanner(s.app.stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			s.responder.Clear()
			if err := s.save(ctx); err != nil {
				return err
			}
			printResponse(s.responder.WelcomeMessage())
			continue
		}

		resp, err := s.turn(ctx, line)
		if err != nil {
			return err
		}
		printResponse(resp)
	}
	return scanner.Err()
}

func printResponse(r chat.Response) {
	fmt.Printf("%s %s\n", titleStyle.Render(chat.DefaultProductName+":"), r.Message)
	if len(r.Suggestions) > 0 {
		fmt.Println(headerStyle.Render("Try:"))
		for _, s := range r.Suggestions {
			fmt.Printf("  • %s\n", s)
		}
	}
	if len(r.Resources) > 0 {
		fmt.Println(infoStyle.Render("Resources:"))
		for _, res := range r.Resources {
			fmt.Printf("  • %s\n", res)
		}
	}
}
