package interfaces

import "context"

// CompletionRequest is one text-in / text-out model call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int32
	// JSONMode asks the provider for an application/json response.
	JSONMode bool
}

// ILanguageModel abstracts the LLM provider (Gemini in production).
//
// Implementations must honour ctx cancellation; the returned text is not
// guaranteed to be valid JSON even in JSON mode.
type ILanguageModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
