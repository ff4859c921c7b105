package insight

import "context"

// Prompt is one completion exchange with the model.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
	// JSONMode asks the API to constrain output to a JSON object.
	JSONMode bool
}

// Provider sends a prompt to an LLM and returns the raw text reply.
// Used only by Service; not exported to the rest of the system.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}
