package types

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// SafetyGate screens raw input before any other processing.
// A disallowed verdict terminates the turn with the given reason.
type SafetyGate interface {
	Check(text string) (allowed bool, reason string)
	Mode() string
}

// TextResponder is the last-resort rule-based answer generator.
// ok=false means it has nothing to say and the orchestrator must
// produce a generic acknowledgment itself.
type TextResponder interface {
	TryRespond(text string, context []Message) (response string, ok bool)
}

// SearchCollaborator answers a query from the web. Implementations
// must never fail: every error degrades to an apologetic string.
type SearchCollaborator interface {
	Answer(ctx context.Context, query string) string
}

// ConversationalModel is the optional LLM-backed responder. Whether it
// is present is decided once at agent construction.
type ConversationalModel interface {
	Respond(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}
