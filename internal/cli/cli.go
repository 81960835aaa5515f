package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Checkin  *CheckinCommand
	Analyze  *AnalyzeCommand
	Chat     *ChatCommand
	Journal  *JournalCommand
	Breathe  *BreatheCommand
	Status   *StatusCommand
	Settings *SettingsCommand
	Export   *ExportCommand
	Purge    *PurgeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "mindwell"
	parser.LongDescription = "Private, local-first mood tracking, journaling, mindfulness and a supportive chat companion."

	cmds := &commands{
		Checkin:  &CheckinCommand{globals: &globals},
		Analyze:  &AnalyzeCommand{globals: &globals},
		Chat:     &ChatCommand{globals: &globals},
		Journal:  &JournalCommand{},
		Breathe:  &BreatheCommand{globals: &globals},
		Status:   &StatusCommand{globals: &globals, version: version},
		Settings: &SettingsCommand{},
		Export:   &ExportCommand{globals: &globals},
		Purge:    &PurgeCommand{globals: &globals},
	}
	cmds.Journal.Add.globals = &globals
	cmds.Journal.Edit.globals = &globals
	cmds.Journal.List.globals = &globals
	cmds.Journal.Show.globals = &globals
	cmds.Journal.Delete.globals = &globals
	cmds.Settings.Show.globals = &globals
	cmds.Settings.Set.globals = &globals

	parser.AddCommand("checkin", "Record how you feel", "Record a mood check-in and update your daily streak.", cmds.Checkin)
	parser.AddCommand("analyze", "Analyze the sentiment of text", "Score the sentiment, emotions and intensity of a piece of text and suggest coping steps.", cmds.Analyze)
	parser.AddCommand("chat", "Talk with the companion", "Talk with the supportive chat companion. Without --message, starts an interactive session.", cmds.Chat)
	parser.AddCommand("journal", "Manage journal entries", "Write, edit, list, show and delete journal entries.", cmds.Journal)
	parser.AddCommand("breathe", "Run a guided mindfulness exercise", "Run a timed, guided breathing, meditation or visualization exercise.", cmds.Breathe)
	parser.AddCommand("status", "Show your wellness dashboard", "Show greeting, daily quote, streak, recent moods, achievements and storage usage.", cmds.Status)
	parser.AddCommand("settings", "Show or change settings", "Show or change preferences.", cmds.Settings)
	parser.AddCommand("export", "Export all data", "Export journal entries, mood history and settings to a file.", cmds.Export)
	parser.AddCommand("purge", "Delete ALL personal data", "Delete ALL journal entries, moods, streak, chat history and session log. Destructive operation with safety prompt.", cmds.Purge)

	return parser, &globals, cmds
}

// Run is the main entry point for the mindwell CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("mindwell %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
