package groq

import "time"

const (
	// DefaultModel is the default Groq model, tuned for function calling
	DefaultModel = "openai/gpt-oss-20b"

	// DefaultBaseURL is the Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 90 * time.Second
)
