package sentiment

const maxSuggestions = 3

var (
	negativeSuggestions = map[Intensity][]string{
		Severe: {
			"It sounds like you're going through a really tough time. Consider reaching out to a mental health professional.",
			"Try the 4-7-8 breathing technique: breathe in for 4, hold for 7, exhale for 8.",
			"Remember: this feeling is temporary and you don't have to face it alone.",
		},
		Moderate: {
			"Take a few deep breaths and try to ground yourself in the present moment.",
			"Consider going for a short walk or doing some light stretching.",
			"Write down three things you're grateful for today.",
		},
		Mild: {
			"Practice mindfulness for a few minutes to center yourself.",
			"Try listening to some calming music or nature sounds.",
			"Remember to be kind to yourself during difficult moments.",
		},
	}

	positiveSuggestions = []string{
		"It's wonderful that you're feeling good! Take a moment to savor this feeling.",
		"Consider sharing your positive energy with someone you care about.",
		"Keep a note of what's making you feel good to remember for later.",
	}

	neutralSuggestions = []string{
		"Sometimes feeling neutral is perfectly okay. You're doing well.",
		"Try a short meditation to connect with your inner self.",
		"Consider doing something small that usually brings you joy.",
	}

	emotionSuggestions = map[string]string{
		"fear":    "Try the 5-4-3-2-1 grounding technique: notice 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste.",
		"anger":   "Channel this energy into physical activity or creative expression.",
		"sadness": "It's okay to feel sad. Allow yourself to experience this emotion without judgment.",
	}
)

// suggestionsFor picks the templates for (label, intensity), appends the
// addendum for the top emotion and keeps the first three.
func suggestionsFor(label Label, intensity Intensity, emotions []EmotionScore) []string {
	var base []string
	switch label {
	case Negative:
		base = negativeSuggestions[intensity]
	case Positive:
		base = positiveSuggestions
	default:
		base = neutralSuggestions
	}

	out := make([]string, 0, len(base)+1)
	out = append(out, base...)
	if len(emotions) > 0 {
		if extra, ok := emotionSuggestions[emotions[0].Label]; ok {
			out = append(out, extra)
		}
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
