// Package ai calls an OpenAI-compatible chat-completions service for note
// summarization, practice planning, task analysis, and mentoring.
//
// The service is an opaque collaborator: every operation builds a fixed
// system prompt plus a per-call context string, sends one request, and
// returns the trimmed response text. Only the task analysis parses the
// response further, and a malformed analysis degrades to fixed defaults
// instead of failing the user's action.
package ai

import "context"

// Client generates text given a system prompt and a user prompt. It is a
// constructor-injected capability so tests can substitute a fake.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

// Generate calls fn.
func (fn ClientFunc) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return fn(ctx, systemPrompt, userPrompt)
}
