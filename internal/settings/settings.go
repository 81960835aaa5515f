// Package settings holds the user preferences record.
package settings

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/runnerr0/mindwell/internal/errs"
	"github.com/runnerr0/mindwell/internal/storage"
)

var (
	Languages = []string{"en", "hi", "es"}
	Themes    = []string{"light", "dark"}
)

// Settings are the user's preferences.
type Settings struct {
	Language          string `json:"language" yaml:"language"`
	Theme             string `json:"theme" yaml:"theme"`
	Notifications     bool   `json:"notifications" yaml:"notifications"`
	SoundEnabled      bool   `json:"soundEnabled" yaml:"sound_enabled"`
	AutoSave          bool   `json:"autoSave" yaml:"auto_save"`
	DataRetentionDays int    `json:"dataRetention" yaml:"data_retention_days"`
}

// Defaults returns the settings of a fresh install.
func Defaults() Settings {
	return Settings{
		Language:          "en",
		Theme:             "light",
		Notifications:     true,
		SoundEnabled:      true,
		AutoSave:          true,
		DataRetentionDays: 30,
	}
}

// Validate checks the closed-set fields.
func (s Settings) Validate() error {
	if !contains(Languages, s.Language) {
		return errs.Invalid("language", s.Language, "use one of "+strings.Join(Languages, ", "))
	}
	if !contains(Themes, s.Theme) {
		return errs.Invalid("theme", s.Theme, "use one of "+strings.Join(Themes, ", "))
	}
	if s.DataRetentionDays <= 0 {
		return errs.Invalid("data_retention_days", s.DataRetentionDays, "must be > 0")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// setters maps the names accepted by Set to a parser for that field.
var setters = map[string]func(*Settings, string) error{
	"language": func(s *Settings, v string) error { s.Language = v; return nil },
	"theme":    func(s *Settings, v string) error { s.Theme = v; return nil },
	"notifications": func(s *Settings, v string) error {
		return parseBool("notifications", v, &s.Notifications)
	},
	"sound_enabled": func(s *Settings, v string) error {
		return parseBool("sound_enabled", v, &s.SoundEnabled)
	},
	"auto_save": func(s *Settings, v string) error {
		return parseBool("auto_save", v, &s.AutoSave)
	},
	"data_retention_days": func(s *Settings, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errs.Invalid("data_retention_days", v, "must be a number of days")
		}
		s.DataRetentionDays = n
		return nil
	},
}

func parseBool(field, v string, dst *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errs.Invalid(field, v, "must be true or false")
	}
	*dst = b
	return nil
}

// Fields lists the names accepted by Set.
func Fields() []string {
	out := make([]string, 0, len(setters))
	for k := range setters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Set parses value into the named field and validates the result.
func (s *Settings) Set(field, value string) error {
	set, ok := setters[strings.ToLower(strings.TrimSpace(field))]
	if !ok {
		return errs.Invalid("setting", field, "use one of "+strings.Join(Fields(), ", "))
	}
	next := *s
	if err := set(&next, strings.TrimSpace(value)); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// Service loads and stores the settings record.
type Service struct {
	records *storage.Records
}

func NewService(records *storage.Records) *Service {
	return &Service{records: records}
}

// Load returns the stored settings merged over Defaults.
func (s *Service) Load(ctx context.Context) (Settings, error) {
	st := Defaults()
	if _, err := s.records.Load(ctx, storage.KeySettings, &st); err != nil {
		return Settings{}, err
	}
	if st.Validate() != nil {
		return Defaults(), nil
	}
	return st, nil
}

// Save validates and stores st.
func (s *Service) Save(ctx context.Context, st Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	return s.records.Save(ctx, storage.KeySettings, st)
}

// Update applies one field change and stores the result.
func (s *Service) Update(ctx context.Context, field, value string) (Settings, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return Settings{}, err
	}
	if err := st.Set(field, value); err != nil {
		return Settings{}, err
	}
	if err := s.Save(ctx, st); err != nil {
		return Settings{}, err
	}
	return st, nil
}
