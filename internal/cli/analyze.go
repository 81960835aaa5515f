package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runnerr0/mindwell/internal/chat"
	"github.com/runnerr0/mindwell/internal/sentiment"
)

// analyzeJSON is the JSON output structure for the analyze command.
type analyzeJSON struct {
	Analysis sentiment.Result `json:"analysis"`
	Reply    *chat.Response   `json:"reply,omitempty"`
}

// Execute implements the go-flags Commander interface for AnalyzeCommand.
// The text is taken from the arguments, or stdin when none are given.
func (c *AnalyzeCommand) Execute(args []string) error {
	return withApp(c.app, c.globals, func(a *app) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			b, err := io.ReadAll(a.stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = strings.TrimSpace(string(b))
		}
		if text == "" {
			return fmt.Errorf("nothing to analyze: pass text as arguments or on stdin")
		}
		return c.execute(a, text)
	})
}

func (c *AnalyzeCommand) execute(a *app, text string) error {
	ctx := context.Background()
	res := a.scorer().Score(ctx, text)

	var reply *chat.Response
	if c.Chat {
		r := a.responder().Respond(ctx, text, &res)
		reply = &r
	}

	if isJSON(c.globals) {
		return printJSON(analyzeJSON{Analysis: res, Reply: reply})
	}

	fmt.Println(headerStyle.Render("Sentiment Analysis"))
	fmt.Printf("Sentiment:   %s (%.0f%% confidence)\n", sentimentStyle(res.Sentiment).Render(string(res.Sentiment)), res.Confidence*100)
	fmt.Printf("Intensity:   %s\n", res.Intensity)
	fmt.Println("Emotions:")
	for _, e := range res.Emotions {
		fmt.Printf("  %-10s %s\n", e.Label, countStyle.Render(fmt.Sprintf("%.0f%%", e.Score*100)))
	}
	fmt.Println()
	fmt.Println(headerStyle.Render("Suggestions"))
	for _, s := range res.Suggestions {
		fmt.Printf("  • %s\n", s)
	}

	if reply != nil {
		fmt.Println()
		printResponse(*reply)
	}
	return nil
}

func sentimentStyle(l sentiment.Label) lipgloss.Style {
	switch l {
	case sentiment.Positive:
		return successStyle
	case sentiment.Negative:
		return warningStyle
	default:
		return infoStyle
	}
}
