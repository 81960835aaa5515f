package chat

import "strings"

// DefaultProductName appears in the system preamble.
const DefaultProductName = "MindWell"

const systemPromptTemplate = `You are a compassionate AI companion for {{product}}, a mental health support application. Your role is to provide emotional support, active listening, and gentle guidance.

Guidelines:
- Be empathetic, warm, and non-judgmental
- Use gentle, caring language that feels human-like
- Acknowledge the user's feelings and validate their experiences
- Offer practical coping strategies and mindfulness techniques
- Suggest professional help when appropriate, but don't diagnose
- Keep responses concise but meaningful (2-4 sentences usually)
- Use "I" statements to show you care personally
- Ask follow-up questions to encourage deeper reflection
- Remember this is supportive conversation, not therapy

Avoid:
- Clinical jargon or medical diagnoses
- Being overly formal or robotic
- Dismissing or minimizing feelings
- Giving medical advice
- Being preachy or prescriptive

Focus on:
- Active listening and reflection
- Emotional validation
- Gentle guidance
- Hope and encouragement
- Present-moment awareness
- Self-compassion

Remember: You're a caring friend who happens to know about mental wellness, not a therapist.`

// SystemPrompt returns the preamble naming product.
func SystemPrompt(product string) string {
	return strings.ReplaceAll(systemPromptTemplate, "{{product}}", product)
}

var fallbackResources = []string{"🧘 Mindfulness exercises", "📱 Mental health resources"}

var fallbacks = []Response{
	{
		Message:     "I hear you, and I want you to know that your feelings are valid. Sometimes just acknowledging what we're going through is the first step toward feeling better.",
		Suggestions: []string{"Take three deep breaths", "Write down your thoughts", "Do something kind for yourself"},
	},
	{
		Message:     "Thank you for sharing with me. It takes courage to express our feelings. Remember that you're not alone in this journey.",
		Suggestions: []string{"Practice self-compassion", "Connect with a friend", "Take a mindful walk"},
	},
	{
		Message:     "I can sense you're dealing with something important. While I process that, know that every feeling you have matters and deserves attention.",
		Suggestions: []string{"Try gentle stretching", "Listen to calming music", "Focus on the present moment"},
	},
}

var welcomes = []string{
	"Hello! I'm here to listen and support you. How are you feeling today?",
	"Hi there! I'm glad you're here. What's on your mind right now?",
	"Welcome to our safe space. I'm here to chat about whatever you'd like to share.",
	"Hello! Take a moment to breathe. I'm here and ready to listen to you.",
}

var (
	welcomeSuggestions = []string{"Tell me about your day", "Share what you're feeling", "Ask for coping strategies"}
	welcomeResources   = []string{"🧘 Start with mindfulness", "📝 Try mood journaling"}
)

// fallback picks one fixed reply. It does not touch the transcript.
func (r *Responder) fallback() Response {
	f := fallbacks[r.rand.Intn(len(fallbacks))]
	return Response{
		Message:     f.Message,
		Suggestions: append([]string(nil), f.Suggestions...),
		Resources:   append([]string(nil), fallbackResources...),
	}
}

// WelcomeMessage returns an opening greeting. It does not touch the transcript.
func (r *Responder) WelcomeMessage() Response {
	return Response{
		Message:     welcomes[r.rand.Intn(len(welcomes))],
		Suggestions: append([]string(nil), welcomeSuggestions...),
		Resources:   append([]string(nil), welcomeResources...),
	}
}
