package answer

// Export internal functions for testing
var (
	BuildSystemPrompt = buildSystemPrompt
	BuildUserPrompt   = buildUserPrompt
)

const TestDefaultAnswerPrompt = defaultAnswerPrompt
