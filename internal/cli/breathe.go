package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runnerr0/mindwell/internal/mindfulness"
)

type exerciseJSON struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Kind         string   `json:"kind"`
	Seconds      int      `json:"seconds"`
	Instructions []string `json:"instructions"`
}

type breatheJSON struct {
	Exercise  string `json:"exercise"`
	Completed bool   `json:"completed"`
	Sessions  int    `json:"sessions"`
}

// Execute implements the go-flags Commander interface for BreatheCommand.
func (c *BreatheCommand) Execute(args []string) error {
	if c.List {
		return c.list()
	}

	id := c.Exercise
	if id == "" {
		id = mindfulness.DefaultExerciseID
	}
	ex, ok := mindfulness.Find(id)
	if !ok {
		return fmt.Errorf("unknown exercise %q (see --list)", id)
	}

	return withApp(c.app, c.globals, func(a *app) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return c.run(ctx, a, ex)
	})
}

func (c *BreatheCommand) list() error {
	catalog := mindfulness.Catalog()
	if isJSON(c.globals) {
		out := make([]exerciseJSON, len(catalog))
		for i, e := range catalog {
			out[i] = exerciseJSON{
				ID:           e.ID,
				Title:        e.Title,
				Description:  e.Description,
				Kind:         string(e.Kind),
				Seconds:      int(e.Duration.Seconds()),
				Instructions: e.Instructions,
			}
		}
		return printJSON(out)
	}

	fmt.Println(headerStyle.Render("Mindfulness exercises"))
	for _, e := range catalog {
		fmt.Printf("%-16s %s %s\n", idStyle.Render(e.ID), titleStyle.Render(e.Title),
			dateStyle.Render(fmt.Sprintf("(%s, %s)", mindfulness.FormatClock(e.Duration), e.Kind)))
		fmt.Printf("%-16s %s\n", "", e.Description)
	}
	return nil
}

func (c *BreatheCommand) run(ctx context.Context, a *app, ex mindfulness.Exercise) error {
	quiet := isJSON(c.globals)

	s := mindfulness.NewSession(ex)
	s.Interval = a.tick

	if !quiet {
		fmt.Println(titleStyle.Render(ex.Title))
		fmt.Println(dateStyle.Render(ex.Description))
		fmt.Println(dateStyle.Render("Press Ctrl+C to stop."))
	}

	step := -1
	done, err := s.Run(ctx, func(t mindfulness.Tick) {
		if quiet {
			return
		}
		if t.Step != step {
			step = t.Step
			fmt.Printf("\n%s %s\n", infoStyle.Render(fmt.Sprintf("Step %d/%d", t.Step+1, len(ex.Instructions))), t.Instruction)
		}
		line := mindfulness.FormatClock(t.Remaining) + " remaining"
		if ex.Kind == mindfulness.Breathing {
			line = mindfulness.BreathingCue(t.Phase, t.PhaseLeft) + "   " + line
		}
		fmt.Printf("\r%-40s", line)
	})
	if !quiet {
		fmt.Println()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if !done {
		a.logger.Info("mindfulness session stopped early")
		if quiet {
			return printJSON(breatheJSON{Exercise: ex.ID})
		}
		fmt.Println(warningStyle.Render("Session stopped."))
		return nil
	}

	log, err := a.tracker().Complete(context.Background(), ex)
	if err != nil {
		return err
	}
	if quiet {
		return printJSON(breatheJSON{Exercise: ex.ID, Completed: true, Sessions: log.Completed})
	}
	fmt.Println(successStyle.Render(mindfulness.CompletionMessage))
	fmt.Printf("Sessions completed: %s\n", countStyle.Render(fmt.Sprint(log.Completed)))
	return nil
}
