package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runnerr0/mindwell/internal/dashboard"
	"github.com/runnerr0/mindwell/internal/storage"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version   string            `json:"version"`
	Store     string            `json:"store"`
	Dashboard dashboard.Summary `json:"dashboard"`
	Storage   *storageJSON      `json:"storage,omitempty"`
}

type storageJSON struct {
	TotalKeys  int           `json:"total_keys"`
	TotalBytes int64         `json:"total_bytes"`
	Keys       []keySizeJSON `json:"keys"`
}

type keySizeJSON struct {
	Key       string `json:"key"`
	Bytes     int64  `json:"bytes"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	return withApp(c.app, c.globals, c.execute)
}

func (c *StatusCommand) execute(a *app) error {
	ctx := context.Background()

	summary, err := buildSummary(ctx, a)
	if err != nil {
		return err
	}

	var stats *storage.Stats
	if sp, ok := a.kv.(storage.StatsProvider); ok {
		stats, err = sp.Stats(ctx)
		if err != nil {
			return fmt.Errorf("get stats: %w", err)
		}
	}

	if isJSON(c.globals) {
		return printJSON(c.toJSON(a, summary, stats))
	}
	c.printHuman(a, summary, stats)
	return nil
}

func buildSummary(ctx context.Context, a *app) (dashboard.Summary, error) {
	moods := a.moods()
	streak, err := moods.Streak(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	history, err := moods.History(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	entries, err := a.journal().List(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	log, err := a.tracker().Load(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}

	return dashboard.Build(dashboard.Input{
		Now:          a.now(),
		Streak:       streak,
		Moods:        history,
		JournalCount: len(entries),
		Sessions:     log.Completed,
	}), nil
}

func (c *StatusCommand) printHuman(a *app, s dashboard.Summary, stats *storage.Stats) {
	fmt.Println(titleStyle.Render(s.Greeting))
	fmt.Println(boxStyle.Render(quoteStyle.Render(fmt.Sprintf("%q", s.Quote.Text)) + "\n" + dateStyle.Render("  - "+s.Quote.Author)))
	fmt.Println()

	fmt.Println(headerStyle.Render("Streak"))
	fmt.Printf("  Current:  %s\n", countStyle.Render(pluralDays(s.Streak.Current)))
	fmt.Printf("  Best:     %s\n", pluralDays(s.Streak.Best))
	if s.DaysUntilGoal > 0 {
		fmt.Printf("  %s until your %d-day goal\n", pluralDays(s.DaysUntilGoal), dashboard.GoalDays)
	} else {
		fmt.Printf("  %s\n", successStyle.Render(fmt.Sprintf("%d-day goal reached", dashboard.GoalDays)))
	}
	fmt.Println()

	fmt.Println(headerStyle.Render("Recent moods"))
	if len(s.RecentMoods) == 0 {
		fmt.Println("  No check-ins yet. Try: mindwell checkin --emotion Calm --intensity 5")
	}
	for _, m := range s.RecentMoods {
		fmt.Printf("  %s  %-10s %s\n",
			dateStyle.Render(m.Timestamp.Local().Format("Mon Jan 2 15:04")),
			m.Emotion,
			intensityBar(m.Intensity))
	}
	fmt.Println()

	fmt.Printf("Journal entries:       %s\n", countStyle.Render(fmt.Sprint(s.JournalCount)))
	fmt.Printf("Mindfulness sessions:  %s\n", countStyle.Render(fmt.Sprint(s.Sessions)))
	fmt.Println()

	fmt.Println(headerStyle.Render("Achievements"))
	for _, ach := range s.Achievements {
		mark := idStyle.Render("○")
		if ach.Earned {
			mark = successStyle.Render("●")
		}
		fmt.Printf("  %s %-18s %s\n", mark, ach.Title, dateStyle.Render(ach.Description))
	}
	fmt.Println()

	fmt.Printf("Version:  %s\n", c.version)
	fmt.Printf("Store:    %s\n", a.location)
	if stats != nil {
		fmt.Printf("Data:     %d keys, %s\n", stats.TotalKeys, formatBytes(stats.TotalBytes))
	}
}

func (c *StatusCommand) toJSON(a *app, s dashboard.Summary, stats *storage.Stats) statusJSON {
	out := statusJSON{
		Version:   c.version,
		Store:     a.location,
		Dashboard: s,
	}
	if stats != nil {
		sj := &storageJSON{
			TotalKeys:  stats.TotalKeys,
			TotalBytes: stats.TotalBytes,
			Keys:       make([]keySizeJSON, len(stats.Keys)),
		}
		for i, k := range stats.Keys {
			sj.Keys[i] = keySizeJSON{Key: k.Key, Bytes: k.Bytes}
			if !k.UpdatedAt.IsZero() {
				sj.Keys[i].UpdatedAt = k.UpdatedAt.UTC().Format(time.RFC3339)
			}
		}
		out.Storage = sj
	}
	return out
}

func intensityBar(n int) string {
	n = min(max(n, 0), 10)
	return strings.Repeat("●", n) + strings.Repeat("○", 10-n)
}
