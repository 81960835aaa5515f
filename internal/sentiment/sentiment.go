// Package sentiment scores free text into a sentiment label, emotion tags,
// an intensity level and coping suggestions.
package sentiment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Label is the coarse sentiment of a text.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Intensity is the severity bucket derived from keywords and confidence.
// It is unrelated to the 1-10 mood intensity.
type Intensity string

const (
	Mild     Intensity = "mild"
	Moderate Intensity = "moderate"
	Severe   Intensity = "severe"
)

// EmotionScore tags a text with one emotion.
type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Result is the output of Score. Emotions holds at most three entries
// sorted by descending score; Suggestions holds at most three strings.
type Result struct {
	Sentiment   Label          `json:"sentiment"`
	Confidence  float64        `json:"confidence"`
	Emotions    []EmotionScore `json:"emotions"`
	Intensity   Intensity      `json:"intensity"`
	Suggestions []string       `json:"suggestions"`
}

// TopEmotion returns the highest scoring emotion label, or "" when none.
func (r Result) TopEmotion() string {
	if len(r.Emotions) == 0 {
		return ""
	}
	return r.Emotions[0].Label
}

// Classification is the raw answer of a Classifier.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier is an external text classification capability.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Initializer is implemented by classifiers that need a one-time setup.
// Init must be idempotent and safe to retry after a failure.
type Initializer interface {
	Init(ctx context.Context) error
}

// Scorer runs the two-tier analysis.
type Scorer struct {
	classifier Classifier
	logger     *zap.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClassifier sets the primary classifier. Without one every text is
// scored by keyword matching.
func WithClassifier(c Classifier) Option {
	return func(s *Scorer) { s.classifier = c }
}

// WithLogger sets the logger used for recovered classifier failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScorer builds a Scorer.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Warmup initializes the classifier ahead of the first Score. It reports
// whether the classifier is ready; failures are logged and may be retried.
func (s *Scorer) Warmup(ctx context.Context) bool {
	if s.classifier == nil {
		return false
	}
	in, ok := s.classifier.(Initializer)
	if !ok {
		return true
	}
	if err := in.Init(ctx); err != nil {
		s.logger.Warn("classifier warmup failed", zap.Error(err))
		return false
	}
	return true
}

// Score classifies text. It never fails: any classifier error or panic is
// logged and the keyword result is returned instead.
func (s *Scorer) Score(ctx context.Context, text string) Result {
	if s.classifier == nil {
		return Fallback(text)
	}
	c, err := s.classify(ctx, text)
	if err != nil {
		s.logger.Warn("sentiment classifier failed, using keyword fallback", zap.Error(err))
		return Fallback(text)
	}
	return analyze(text, MapLabel(c.Label), c.Score)
}

func (s *Scorer) classify(ctx context.Context, text string) (c Classification, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()
	if in, ok := s.classifier.(Initializer); ok {
		if err := in.Init(ctx); err != nil {
			return Classification{}, err
		}
	}
	return s.classifier.Classify(ctx, text)
}

// MapLabel folds a classifier label onto Positive, Negative or Neutral.
func MapLabel(label string) Label {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "positive"):
		return Positive
	case strings.Contains(l, "negative"):
		return Negative
	default:
		return Neutral
	}
}

var (
	positiveWords = []string{"good", "great", "happy", "love", "amazing", "wonderful", "excellent"}
	negativeWords = []string{"bad", "sad", "hate", "awful", "terrible", "worried", "anxious", "depressed"}
)

// Fallback scores text by counting positive and negative keywords.
func Fallback(text string) Result {
	lower := strings.ToLower(text)
	pos := countMatches(lower, positiveWords)
	neg := countMatches(lower, negativeWords)

	label, confidence := Neutral, 0.5
	switch {
	case pos > neg:
		label, confidence = Positive, keywordConfidence(pos)
	case neg > pos:
		label, confidence = Negative, keywordConfidence(neg)
	}
	return analyze(text, label, confidence)
}

func keywordConfidence(n int) float64 {
	return min(0.8, 0.5+0.1*float64(n))
}

func analyze(text string, label Label, confidence float64) Result {
	lower := strings.ToLower(text)
	emotions := detectEmotions(lower, label, confidence)
	intensity := determineIntensity(lower, confidence)
	return Result{
		Sentiment:   label,
		Confidence:  confidence,
		Emotions:    emotions,
		Intensity:   intensity,
		Suggestions: suggestionsFor(label, intensity, emotions),
	}
}

// countMatches counts distinct keywords present as substrings of lower.
func countMatches(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func containsAny(lower string, words []string) bool {
	return countMatches(lower, words) > 0
}

var emotionKeywords = []struct {
	label string
	words []string
}{
	{"joy", []string{"happy", "excited", "joy", "cheerful", "delighted", "thrilled", "glad"}},
	{"sadness", []string{"sad", "depressed", "down", "blue", "miserable", "unhappy", "grief"}},
	{"anger", []string{"angry", "mad", "furious", "irritated", "annoyed", "rage", "frustrated"}},
	{"fear", []string{"scared", "afraid", "worried", "anxious", "nervous", "panic", "fearful"}},
	{"surprise", []string{"surprised", "shocked", "amazed", "astonished", "stunned"}},
	{"calm", []string{"calm", "peaceful", "relaxed", "serene", "tranquil", "zen"}},
}

const maxEmotions = 3

func detectEmotions(lower string, label Label, confidence float64) []EmotionScore {
	var emotions []EmotionScore
	for _, set := range emotionKeywords {
		if n := countMatches(lower, set.words); n > 0 {
			emotions = append(emotions, EmotionScore{
				Label: set.label,
				Score: min(0.9, 0.3*float64(n)+0.4*confidence),
			})
		}
	}

	if len(emotions) == 0 {
		switch label {
		case Positive:
			emotions = append(emotions, EmotionScore{Label: "joy", Score: confidence})
		case Negative:
			emotions = append(emotions, EmotionScore{Label: "sadness", Score: confidence})
		default:
			emotions = append(emotions, EmotionScore{Label: "calm", Score: 0.5})
		}
	}

	sort.SliceStable(emotions, func(i, j int) bool {
		return emotions[i].Score > emotions[j].Score
	})
	if len(emotions) > maxEmotions {
		emotions = emotions[:maxEmotions]
	}
	return emotions
}

var (
	amplifierWords = []string{"extremely", "very", "really", "so", "incredibly", "absolutely", "completely"}
	urgentWords    = []string{"help", "can't", "unbearable", "overwhelming", "desperate", "crisis"}
)

func determineIntensity(lower string, confidence float64) Intensity {
	amplified := containsAny(lower, amplifierWords)
	switch {
	case containsAny(lower, urgentWords) || (confidence > 0.9 && amplified):
		return Severe
	case confidence > 0.7 || amplified:
		return Moderate
	default:
		return Mild
	}
}
