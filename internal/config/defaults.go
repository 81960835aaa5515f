package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.config/mindwell",
			Backend:    "sqlite",
			SQLiteFile: "mindwell.db",
			FilesDir:   "data",
		},
		Chat: ChatConfig{
			BaseURL:   "https://openrouter.ai/api/v1",
			Model:     "anthropic/claude-3.5-sonnet",
			APIKeyEnv: "OPENROUTER_API_KEY",
			Referer:   "https://mindwell.local",
			Title:     "mindwell - Mental Health Support",
		},
		Sentiment: SentimentConfig{
			ClassifierEnabled: false,
			BaseURL:           "https://api.openai.com/v1",
			Model:             "gpt-4o-mini",
			APIKeyEnv:         "OPENAI_API_KEY",
		},
		Mood: MoodConfig{
			HistoryLimit: 100,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "mindwell.log",
			MaxSize:    10,
			MaxBackups: 3,
		},
	}
}
