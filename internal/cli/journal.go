package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runnerr0/mindwell/internal/journal"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isJSON(g *GlobalFlags) bool {
	return g != nil && g.JSON
}

// Execute implements the go-flags Commander interface for JournalAddCommand.
func (c *JournalAddCommand) Execute(args []string) error {
	return withApp(c.app, c.globals, func(a *app) error {
		content := c.Content
		if strings.TrimSpace(content) == "" {
			b, err := io.ReadAll(a.stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			content = strings.TrimRight(string(b), "\n")
		}

		d := journal.Draft{Title: c.Title, Content: content, Mood: c.Mood}
		for _, t := range c.Tags {
			d.AddTag(t)
		}

		entry, err := a.journal().Save(context.Background(), d, "")
		if err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(entry)
		}
		fmt.Printf("%s Saved %q %s\n", successStyle.Render("✓"), entry.Title, idStyle.Render(entry.ID))
		return nil
	})
}

// Execute implements the go-flags Commander interface for JournalEditCommand.
func (c *JournalEditCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required")
	}
	return withApp(c.app, c.globals, func(a *app) error {
		ctx := context.Background()
		svc := a.journal()

		existing, err := svc.Get(ctx, c.ID)
		if err != nil {
			return err
		}
		d := journal.DraftFrom(existing)
		if c.Title != "" {
			d.Title = c.Title
		}
		if c.Content != "" {
			d.Content = c.Content
		}
		if c.Mood != "" {
			d.Mood = c.Mood
		}
		for _, t := range c.Tags {
			d.AddTag(t)
		}
		for _, t := range c.RemoveTags {
			d.RemoveTag(t)
		}

		entry, err := svc.Save(ctx, d, c.ID)
		if err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(entry)
		}
		fmt.Printf("%s Updated %q %s\n", successStyle.Render("✓"), entry.Title, idStyle.Render(entry.ID))
		return nil
	})
}

// Execute implements the go-flags Commander interface for JournalListCommand.
func (c *JournalListCommand) Execute(args []string) error {
	return withApp(c.app, c.globals, func(a *app) error {
		entries, err := a.journal().List(context.Background())
		if err != nil {
			return err
		}

		filtered := make([]journal.Entry, 0, len(entries))
		for _, e := range entries {
			if c.Tag != "" && !hasTag(e, c.Tag) {
				continue
			}
			filtered = append(filtered, e)
			if c.Limit > 0 && len(filtered) >= c.Limit {
				break
			}
		}

		if isJSON(c.globals) {
			return printJSON(filtered)
		}
		if len(filtered) == 0 {
			fmt.Println("No journal entries yet. Start with: mindwell journal add")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Journal (%d of %d)", len(filtered), len(entries))))
		for _, e := range filtered {
			fmt.Printf("%s %s %s  %s\n",
				moodEmoji(e.Mood),
				titleStyle.Render(e.Title),
				dateStyle.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
				idStyle.Render(e.ID))
			if len(e.Tags) > 0 {
				fmt.Printf("   #%s\n", strings.Join(e.Tags, " #"))
			}
		}
		return nil
	})
}

// Execute implements the go-flags Commander interface for JournalShowCommand.
func (c *JournalShowCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required")
	}
	return withApp(c.app, c.globals, func(a *app) error {
		e, err := a.journal().Get(context.Background(), c.ID)
		if err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(e)
		}

		fmt.Printf("%s %s\n", moodEmoji(e.Mood), titleStyle.Render(e.Title))
		fmt.Printf("%s  mood: %s\n", dateStyle.Render(e.Timestamp.Local().Format("Monday, Jan 2, 2006 15:04")), e.Mood)
		if len(e.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(e.Tags, ", "))
		}
		fmt.Println()
		fmt.Println(e.Content)
		return nil
	})
}

// Execute implements the go-flags Commander interface for JournalDeleteCommand.
func (c *JournalDeleteCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required")
	}
	return withApp(c.app, c.globals, func(a *app) error {
		if err := a.journal().Delete(context.Background(), c.ID); err != nil {
			return err
		}
		if isJSON(c.globals) {
			return printJSON(map[string]any{"deleted": true, "id": c.ID})
		}
		fmt.Printf("Deleted journal entry %s\n", c.ID)
		return nil
	})
}

func hasTag(e journal.Entry, tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func moodEmoji(mood string) string {
	if e, ok := journal.Moods[mood]; ok {
		return e
	}
	return journal.Moods[journal.DefaultMood]
}
