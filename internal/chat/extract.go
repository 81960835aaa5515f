package chat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxSuggestions = 3
	maxResources   = 3
)

// Lead-in phrases, each running to the end of the sentence.
var suggestionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btry\s+[^.!?]*`),
	regexp.MustCompile(`(?i)\bconsider\s+[^.!?]*`),
	regexp.MustCompile(`(?i)\byou\s+might\s+[^.!?]*`),
	regexp.MustCompile(`(?i)\bperhaps\s+[^.!?]*`),
}

// ExtractSuggestions collects lead-in phrases ("try ...", "consider ...",
// "you might ...", "perhaps ...") from reply. A phrase is kept when its
// trimmed length is between 11 and 99 characters. At most three are returned,
// pattern by pattern.
func ExtractSuggestions(reply string) []string {
	var out []string
	for _, re := range suggestionPatterns {
		for _, m := range re.FindAllString(reply, -1) {
			s := strings.TrimSpace(m)
			if n := utf8.RuneCountInString(s); n > 10 && n < 100 {
				out = append(out, s)
			}
		}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

type resourceTheme struct {
	userWords  []string
	replyWords []string
	resources  [2]string
}

var resourceThemes = []resourceTheme{
	{
		userWords:  []string{"anxious", "anxiety"},
		replyWords: []string{"anxiety"},
		resources:  [2]string{"🧘 Guided breathing exercises", "📱 Anxiety management techniques"},
	},
	{
		userWords:  []string{"sleep", "tired"},
		replyWords: []string{"sleep"},
		resources:  [2]string{"😴 Sleep hygiene tips", "🌙 Bedtime relaxation routine"},
	},
	{
		userWords:  []string{"stress"},
		replyWords: []string{"stress"},
		resources:  [2]string{"💆 Stress relief techniques", "🎯 Time management strategies"},
	},
	{
		userWords:  []string{"sad", "depressed"},
		replyWords: []string{"depression"},
		resources:  [2]string{"🌱 Mood boosting activities", "👥 Professional support options"},
	},
}

var defaultResources = [2]string{"🧘 Daily mindfulness practice", "📝 Mood journaling guide"}

// MatchResources scans the user message and the reply for themes. Each
// matched theme adds its two resources; with no match the default pair is
// used. At most three are returned.
func MatchResources(message, reply string) []string {
	user := strings.ToLower(message)
	assistant := strings.ToLower(reply)

	var out []string
	for _, th := range resourceThemes {
		if containsAny(user, th.userWords) || containsAny(assistant, th.replyWords) {
			out = append(out, th.resources[:]...)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultResources[:]...)
	}
	if len(out) > maxResources {
		out = out[:maxResources]
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
