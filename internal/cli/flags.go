package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// CheckinCommand records a mood check-in.
type CheckinCommand struct {
	Emotion   string `long:"emotion" short:"e" description:"How you feel (Happy, Calm, Neutral, Worried, Sad, Frustrated, Tired, Grateful)"`
	Intensity int    `long:"intensity" short:"i" description:"Intensity from 1 to 10" default:"5"`

	globals *GlobalFlags
	app     *app // injectable for testing; nil means open from config
}

// AnalyzeCommand scores a piece of text.
type AnalyzeCommand struct {
	Chat bool `long:"chat" description:"Also ask the companion to respond, with the analysis as context"`

	globals *GlobalFlags
	app     *app
}

// ChatCommand talks to the companion.
type ChatCommand struct {
	Message string `long:"message" short:"m" description:"Send one message and exit (default: interactive)"`
	Analyze bool   `long:"analyze" description:"Attach a sentiment analysis of each message as context"`
	New     bool   `long:"new" description:"Start a new conversation instead of continuing the saved one"`

	globals *GlobalFlags
	app     *app
}

// JournalCommand groups the journal subcommands.
type JournalCommand struct {
	Add    JournalAddCommand    `command:"add" description:"Write a new journal entry"`
	Edit   JournalEditCommand   `command:"edit" description:"Rewrite an existing entry"`
	List   JournalListCommand   `command:"list" description:"List journal entries"`
	Show   JournalShowCommand   `command:"show" description:"Print one entry"`
	Delete JournalDeleteCommand `command:"delete" description:"Delete an entry"`
}

// JournalAddCommand writes a new entry.
type JournalAddCommand struct {
	Title   string   `long:"title" description:"Entry title (default: dated title)"`
	Content string   `long:"content" description:"Entry text (default: read from stdin)"`
	Mood    string   `long:"mood" description:"Mood label (default: neutral)"`
	Tags    []string `long:"tag" description:"Tag (repeatable)"`

	globals *GlobalFlags
	app     *app
}

// JournalEditCommand rewrites an entry. Unset fields keep their value.
type JournalEditCommand struct {
	ID         string   `long:"id" description:"Entry ID (required)"`
	Title      string   `long:"title" description:"New title"`
	Content    string   `long:"content" description:"New text"`
	Mood       string   `long:"mood" description:"New mood label"`
	Tags       []string `long:"tag" description:"Add tag (repeatable)"`
	RemoveTags []string `long:"remove-tag" description:"Remove tag (repeatable)"`

	globals *GlobalFlags
	app     *app
}

// JournalListCommand lists entries, newest first.
type JournalListCommand struct {
	Limit int    `long:"limit" description:"Maximum entries" default:"20"`
	Tag   string `long:"tag" description:"Only entries with this tag"`

	globals *GlobalFlags
	app     *app
}

// JournalShowCommand prints one entry.
type JournalShowCommand struct {
	ID string `long:"id" description:"Entry ID (required)"`

	globals *GlobalFlags
	app     *app
}

// JournalDeleteCommand removes one entry.
type JournalDeleteCommand struct {
	ID string `long:"id" description:"Entry ID (required)"`

	globals *GlobalFlags
	app     *app
}

// BreatheCommand runs a guided mindfulness session.
type BreatheCommand struct {
	Exercise string `long:"exercise" description:"Exercise ID" default:"box-breathing"`
	List     bool   `long:"list" description:"List available exercises"`

	globals *GlobalFlags
	app     *app
}

// StatusCommand shows the dashboard summary.
type StatusCommand struct {
	globals *GlobalFlags
	version string
	app     *app
}

// SettingsCommand groups the settings subcommands.
type SettingsCommand struct {
	Show SettingsShowCommand `command:"show" description:"Print current settings"`
	Set  SettingsSetCommand  `command:"set" description:"Change one setting"`
}

// SettingsShowCommand prints the settings.
type SettingsShowCommand struct {
	globals *GlobalFlags
	app     *app
}

// SettingsSetCommand changes one setting.
type SettingsSetCommand struct {
	Args struct {
		Key   string `positional-arg-name:"key" description:"language, theme, notifications, sound_enabled, auto_save or data_retention_days"`
		Value string `positional-arg-name:"value"`
	} `positional-args:"yes" required:"yes"`

	globals *GlobalFlags
	app     *app
}

// ExportCommand writes all data to a file.
type ExportCommand struct {
	Format string `long:"format" description:"Output format: json | yaml | md" default:"json"`
	Out    string `long:"out" description:"Output path, - for stdout (default: mindwell-data-<date>.<ext>)"`

	globals *GlobalFlags
	app     *app
}

// PurgeCommand deletes all personal data with safety confirmation.
type PurgeCommand struct {
	All   bool `long:"all" description:"Required flag to confirm purge intent"`
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	app     *app
}
